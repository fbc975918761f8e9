// Package apperrors defines the closed taxonomy of domain failures.
package apperrors

import "fmt"

// Kind discriminates the failure variants carried by Error.
type Kind int

// The full set of failure kinds. Controllers dispatch on these values only.
const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAlreadyExists
	KindAuthFailed
	KindInvalidToken
	KindUnknown
)

// FormField keys validation issues that are not tied to a single field.
const FormField = "form"

// Error is a tagged failure value. It is constructed once by a use case or
// repository and never mutated.
type Error struct {
	kind    Kind
	slug    string
	message string
	fields  map[string][]string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.message
}

// Kind returns the failure variant tag.
func (e *Error) Kind() Kind {
	return e.kind
}

// Slug returns the stable identifier rendered in error envelopes.
func (e *Error) Slug() string {
	return e.slug
}

// Fields returns the field name to messages map of a validation error.
// It is nil for every other kind.
func (e *Error) Fields() map[string][]string {
	return e.fields
}

// Validation returns a validation failure carrying per-field issue messages.
func Validation(fields map[string][]string) *Error {
	return &Error{
		kind:    KindValidation,
		slug:    "InputValidationError",
		message: "one or more input fields are invalid",
		fields:  fields,
	}
}

// FieldValidation returns a validation failure with a single issue on field.
func FieldValidation(field, message string) *Error {
	return Validation(map[string][]string{field: {message}})
}

// NotFound reports that no entity has the given value in the given field.
func NotFound(entity, field string, value any) *Error {
	return &Error{
		kind:    KindNotFound,
		slug:    "NotFoundError",
		message: fmt.Sprintf("%s with %s %v not found", entity, field, value),
	}
}

// AlreadyExists reports a uniqueness violation. The field is optional.
func AlreadyExists(entity, field string) *Error {
	message := fmt.Sprintf("%s already exists", entity)
	if field != "" {
		message = fmt.Sprintf("%s already exists with this %s", entity, field)
	}

	return &Error{kind: KindAlreadyExists, slug: "AlreadyExistsError", message: message}
}

// AuthFailed reports a credential mismatch without revealing which
// credential was wrong.
func AuthFailed() *Error {
	return &Error{
		kind:    KindAuthFailed,
		slug:    "EmailOrPasswordWrongError",
		message: "wrong email or password",
	}
}

// InvalidToken reports a refresh token that failed verification.
func InvalidToken() *Error {
	return &Error{
		kind:    KindInvalidToken,
		slug:    "InvalidRefreshTokenError",
		message: "invalid refresh token",
	}
}

// Unknown wraps an unexpected failure, preserving its message when available.
func Unknown(err error) *Error {
	message := "unknown server error"
	if err != nil {
		message = err.Error()
	}

	return &Error{kind: KindUnknown, slug: "UnknownError", message: message}
}

// Convert returns err unchanged when it already belongs to the taxonomy and
// wraps it as Unknown otherwise.
func Convert(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}

	return Unknown(err)
}
