package schemapkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/randompkg"
)

type createUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	CPF      string `json:"cpf" validate:"required,cpf"`
}

func TestValidateOK(t *testing.T) {
	t.Parallel()

	input := createUserInput{
		Name:     randompkg.Name(),
		Email:    randompkg.Email(),
		Password: randompkg.Password(),
		CPF:      randompkg.CPF(),
	}

	if got := Validate(input); got != nil {
		t.Errorf("Validate(%+v) = %v, want nil", input, got)
	}
}

func TestValidateFieldMap(t *testing.T) {
	t.Parallel()

	input := createUserInput{
		Name:     randompkg.Name(),
		Email:    "not-an-email",
		Password: randompkg.Password(),
		CPF:      "123",
	}

	got := Validate(input)
	if got == nil {
		t.Fatalf("Validate(%+v) = nil, want validation error", input)
	}

	if got.Kind() != apperrors.KindValidation {
		t.Errorf("Kind() = %v, want %v", got.Kind(), apperrors.KindValidation)
	}

	want := map[string][]string{
		"email": {"must be a valid email"},
		"cpf":   {"must be a valid CPF"},
	}

	if diff := cmp.Diff(want, got.Fields()); diff != "" {
		t.Errorf("Fields() returned unexpected diff: %v", diff)
	}
}

func TestValidateDateFilter(t *testing.T) {
	t.Parallel()

	input := struct {
		CreatedAt string `json:"createdAt" validate:"omitempty,datetime=2006-01-02"`
	}{CreatedAt: "02-01-2024"}

	got := Validate(input)
	if got == nil {
		t.Fatal("Validate() = nil, want validation error")
	}

	want := map[string][]string{
		"createdAt": {"must be a date in 2006-01-02 format"},
	}

	if diff := cmp.Diff(want, got.Fields()); diff != "" {
		t.Errorf("Fields() returned unexpected diff: %v", diff)
	}
}

func TestValidateUsesJSONNames(t *testing.T) {
	t.Parallel()

	input := struct {
		AccountID string `json:"accountId" validate:"required,uuid"`
	}{AccountID: "nope"}

	got := Validate(input)
	if got == nil {
		t.Fatal("Validate() = nil, want validation error")
	}

	if _, ok := got.Fields()["accountId"]; !ok {
		t.Errorf("Fields() = %v, want accountId key", got.Fields())
	}
}
