package domain

import "github.com/shopspring/decimal"

const (
	DefaultRestaurantName = "Lava Resto"
	DefaultCurrencySymbol = "$"
)

// DefaultLBPRate is the reference LBP-per-USD rate used until an admin changes it.
var DefaultLBPRate = decimal.NewFromInt(89500)

// Settings is the singleton, process-wide settings record.
type Settings struct {
	RestaurantName string          `json:"restaurantName"`
	CurrencySymbol string          `json:"currencySymbol"`
	LBPRate        decimal.Decimal `json:"lbpRate"`
	AuditFields
}

// DefaultSettings returns the settings used when none have been persisted yet.
func DefaultSettings(rate decimal.Decimal) Settings {
	if !rate.IsPositive() {
		rate = DefaultLBPRate
	}
	return Settings{
		RestaurantName: DefaultRestaurantName,
		CurrencySymbol: DefaultCurrencySymbol,
		LBPRate:        rate,
	}
}
