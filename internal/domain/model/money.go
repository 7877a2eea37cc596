package model

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when configuration does not override it.
var DefaultCurrency = currency.INR

func scale(unit currency.Unit) int32 {
	s, _ := currency.Standard.Rounding(unit)
	return int32(s)
}

// ErrAmountOutOfRange is returned when an amount has no int64 minor-unit form.
var ErrAmountOutOfRange = errors.New("amount out of range")

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// MinorUnits converts amount into the currency's smallest unit, rounding to an integer.
func MinorUnits(amount decimal.Decimal, unit currency.Unit) (int64, error) {
	minor := amount.Shift(scale(unit)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return 0, ErrAmountOutOfRange
	}
	return minor.IntPart(), nil
}

// FromMinorUnits converts smallest-unit amount back into a decimal value.
func FromMinorUnits(minor int64, unit currency.Unit) decimal.Decimal {
	return decimal.New(minor, -scale(unit))
}

// FitsMinorUnits reports whether amount is representable in whole minor units.
func FitsMinorUnits(amount decimal.Decimal, unit currency.Unit) bool {
	return amount.Equal(amount.Round(scale(unit)))
}
