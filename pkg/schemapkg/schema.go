// Package schemapkg validates use case inputs against their declared schema.
//
// Schemas are expressed as `validate` struct tags. Failures are collected
// into the field name to messages map carried by validation errors, keyed by
// the field's json name.
package schemapkg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/cpfpkg"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return cpfpkg.IsValid(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return v
}

// Validate checks input against its validate tags. It returns nil when the
// input is valid and a validation error carrying the field issue map
// otherwise.
func Validate(input any) *apperrors.Error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failures carry no field path.
		return apperrors.FieldValidation(apperrors.FormField, err.Error())
	}

	fields := make(map[string][]string, len(ve))

	for _, fe := range ve {
		field := fe.Field()
		if field == "" {
			field = apperrors.FormField
		}

		fields[field] = append(fields[field], messageFor(fe))
	}

	return apperrors.Validation(fields)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "uuid":
		return "must be a valid id"
	case "cpf":
		return "must be a valid CPF"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items or characters", fe.Param())
		}

		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items or characters", fe.Param())
		}

		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	}

	return fmt.Sprintf("failed on the %s rule", fe.Tag())
}
