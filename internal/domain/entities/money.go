package entities

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Amounts are carried as integer cents (BRL, 2 fraction digits) and cross
// the JSON, storage and provider boundaries as decimal.Decimal.
const centsPlaces = 2

var maxAmount = decimal.New(math.MaxInt64, -centsPlaces)

// CentsFromAmount converts an amount into cents. Amounts that are not a
// whole number of cents or do not fit in int64 cents are rejected.
func CentsFromAmount(d decimal.Decimal) (int64, error) {
	if !d.Equal(d.Truncate(centsPlaces)) || d.Abs().GreaterThan(maxAmount) {
		return 0, ErrInvalidAmount
	}
	return d.Shift(centsPlaces).IntPart(), nil
}

// ParseAmount reads a stored decimal string such as "10", "10.5" or "10.50".
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return CentsFromAmount(d)
}

func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -centsPlaces)
}

// AmountString renders cents with exactly two fraction digits.
func AmountString(cents int64) string {
	return AmountFromCents(cents).StringFixed(centsPlaces)
}
