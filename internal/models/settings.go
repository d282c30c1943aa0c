package models

import "github.com/shopspring/decimal"

// Settings is the single row of the settings table (settings_id is always 1).
type Settings struct {
	SettingsID     int             `db:"settings_id"`
	RestaurantName string          `db:"restaurant_name"`
	CurrencySymbol string          `db:"currency_symbol"`
	LBPRate        decimal.Decimal `db:"lbp_rate"`
	AuditFields
}
