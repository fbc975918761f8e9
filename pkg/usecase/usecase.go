// Package usecase sequences validation and business execution.
//
// Every application operation goes through Run: the input is validated
// against its schema first, business logic runs only on valid input, and a
// panic anywhere below is demoted to an unknown failure. Run never panics
// outward, so callers always receive an Either.
package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/pkg/apperrors"
	"github.com/go-finbook/finbook/pkg/either"
	"github.com/go-finbook/finbook/pkg/schemapkg"
)

// Run validates in and then applies execute to it.
func Run[In, Out any](
	ctx context.Context,
	in In,
	execute func(ctx context.Context, in In) either.Either[*apperrors.Error, Out],
) (result either.Either[*apperrors.Error, Out]) {
	defer func() {
		if r := recover(); r != nil {
			zerolog.Ctx(ctx).Error().Interface("panic", r).Send()
			result = Fail[Out](apperrors.Unknown(fmt.Errorf("%v", r)))
		}
	}()

	if appErr := schemapkg.Validate(in); appErr != nil {
		return Fail[Out](appErr)
	}

	return execute(ctx, in)
}

// OK wraps a success value.
func OK[Out any](v Out) either.Either[*apperrors.Error, Out] {
	return either.Right[*apperrors.Error](v)
}

// Fail wraps a domain failure.
func Fail[Out any](err *apperrors.Error) either.Either[*apperrors.Error, Out] {
	return either.Wrong[*apperrors.Error, Out](err)
}

// FailWith wraps any error, converting it into the taxonomy first.
func FailWith[Out any](err error) either.Either[*apperrors.Error, Out] {
	return Fail[Out](apperrors.Convert(err))
}
