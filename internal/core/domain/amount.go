package domain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of fractional digits between the display unit and
// the chain's base unit.
const Decimals = 18

// Symbol is the display unit of the chain's native currency.
const Symbol = "ETH"

var errBadAmount = errors.New("malformed amount")

// ParseAmount converts a human-entered decimal amount into base units.
// Negative values and values with more than Decimals fractional digits are
// rejected.
func ParseAmount(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, errBadAmount
	}
	if d.IsNegative() {
		return nil, errBadAmount
	}
	scaled := d.Shift(Decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, errBadAmount
	}
	return scaled.BigInt(), nil
}

// FormatAmount renders base units as a decimal display amount. The result
// always carries a fractional part ("1.0", "0.25").
func FormatAmount(v *big.Int) string {
	if v == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(v, -Decimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FiatValue converts base units into a fiat amount with two decimals.
func FiatValue(v *big.Int, rate decimal.Decimal) string {
	if v == nil {
		return decimal.Zero.StringFixed(2)
	}
	return decimal.NewFromBigInt(v, -Decimals).Mul(rate).StringFixed(2)
}
