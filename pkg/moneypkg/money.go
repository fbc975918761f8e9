// Package moneypkg implements fixed-point currency amounts.
//
// Amounts are stored as integers scaled by 10^4 so that values with up to
// four fraction digits are represented exactly.
package moneypkg

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// DecimalPlaces is the number of fraction digits an amount may carry.
const DecimalPlaces = 4

var (
	// ErrTooManyPlaces indicates an amount with more than DecimalPlaces fraction digits.
	ErrTooManyPlaces = errors.New("amount must have at most 4 decimal places")
	// ErrNotPositive indicates a zero or negative amount.
	ErrNotPositive = errors.New("amount must be positive")
	// ErrOutOfRange indicates an amount whose scaled value does not fit in int64.
	ErrOutOfRange = errors.New("amount is out of range")

	maxScaled = decimal.NewFromInt(math.MaxInt64)
	minScaled = decimal.NewFromInt(math.MinInt64)
)

// Parse converts a decimal amount to its scaled integer representation.
func Parse(d decimal.Decimal) (int64, error) {
	if !d.Equal(d.Round(DecimalPlaces)) {
		return 0, ErrTooManyPlaces
	}

	scaled := d.Shift(DecimalPlaces)
	if scaled.GreaterThan(maxScaled) || scaled.LessThan(minScaled) {
		return 0, ErrOutOfRange
	}

	return scaled.IntPart(), nil
}

// ParsePositive is Parse restricted to strictly positive amounts.
func ParsePositive(d decimal.Decimal) (int64, error) {
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, ErrNotPositive
	}

	return Parse(d)
}

// Format renders a scaled integer amount with exactly DecimalPlaces fraction digits.
func Format(v int64) string {
	return decimal.New(v, -DecimalPlaces).StringFixed(DecimalPlaces)
}
