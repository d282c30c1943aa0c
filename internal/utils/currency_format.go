package utils

import (
	"fmt"
	"math"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thousand = decimal.NewFromInt(1000)
var half = decimal.NewFromFloat(0.5)

// ConvertPrice converts amount from its base currency into the display currency.
// rate is LBP units per 1 USD. The result is not rounded.
// Example: 5.5 USD -> LBP at 89500 returns 492250
// Example: 800000 LBP -> USD at 89500 returns 8.9385...
func ConvertPrice(amount decimal.Decimal, base, display domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if !base.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: unsupported base currency %q", apperrors.ErrValidation, base)
	}
	if !display.IsValid() {
		return decimal.Zero, fmt.Errorf("%w: unsupported display currency %q", apperrors.ErrValidation, display)
	}
	if base == display {
		return amount, nil
	}
	// A zero or negative rate is reported, never clamped.
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrInvalidExchangeRate, rate.String())
	}
	if base == domain.USD {
		return amount.Mul(rate), nil
	}
	return amount.Div(rate), nil
}

// RoundToNearestThousand rounds half toward positive infinity, so 492500 becomes 493000
// and -492500 becomes -492000.
func RoundToNearestThousand(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(thousand).Add(half).Floor().Mul(thousand)
}

// FormatPrice renders a stored price in the display currency.
// USD is rendered with two decimals and a "$" prefix; LBP is rounded to the nearest
// 1000 after conversion and rendered with thousands separators and an " LBP" suffix.
// Example: FormatPrice(5.5, USD, LBP, 89500) returns "492,000 LBP"
// Example: FormatPrice(800000, LBP, USD, 89500) returns "$8.94"
func FormatPrice(amount decimal.Decimal, base, display domain.Currency, rate decimal.Decimal) (string, error) {
	converted, err := ConvertPrice(amount, base, display, rate)
	if err != nil {
		return "", err
	}

	if display == domain.USD {
		return "$" + converted.StringFixed(2), nil
	}

	rounded := RoundToNearestThousand(converted)
	if !rounded.BigInt().IsInt64() {
		return "", fmt.Errorf("%w: %s LBP is out of range", apperrors.ErrInvalidAmount, rounded.String())
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", rounded.IntPart()) + " LBP", nil
}

// FormatPriceFloat is FormatPrice for callers holding a float64, such as the CLI.
// NaN and infinities are rejected with apperrors.ErrInvalidAmount.
func FormatPriceFloat(amount float64, base, display domain.Currency, rate decimal.Decimal) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", fmt.Errorf("%w: %v is not a finite number", apperrors.ErrInvalidAmount, amount)
	}
	return FormatPrice(decimal.NewFromFloat(amount), base, display, rate)
}
