package models

import (
	"github.com/shopspring/decimal"
)

// MenuItem is the row shape of the menu_items table.
type MenuItem struct {
	ItemID        string          `db:"item_id"`
	CategoryID    string          `db:"category_id"`
	Name          string          `db:"name"`
	NameAr        string          `db:"name_ar"`
	Description   string          `db:"description"`
	DescriptionAr string          `db:"description_ar"`
	Price         decimal.Decimal `db:"price"`
	PriceCurrency string          `db:"price_currency"`
	ImageURL      string          `db:"image_url"`
	IsAvailable   bool            `db:"is_available"`
	SortOrder     int             `db:"sort_order"`
	AuditFields
}
