package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is one of the two currencies the menu is priced and displayed in.
type Currency string

const (
	USD Currency = "USD"
	LBP Currency = "LBP"
)

// IsValid reports whether c is a supported currency.
func (c Currency) IsValid() bool {
	return c == USD || c == LBP
}

// ParseCurrency normalizes a currency code. The boolean is false for unsupported codes.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	return c, c.IsValid()
}

// MaxPrice caps stored prices so every LBP rendering stays within int64 at any
// realistic exchange rate.
var MaxPrice = decimal.New(1, 12)

// ValidPrice reports whether p is between zero and MaxPrice inclusive.
func ValidPrice(p decimal.Decimal) bool {
	return !p.IsNegative() && p.LessThanOrEqual(MaxPrice)
}
