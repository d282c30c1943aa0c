package domain

import "github.com/shopspring/decimal"

// MenuItem is a single dish or drink. Price is stored in PriceCurrency.
type MenuItem struct {
	ItemID        string          `json:"id"`
	CategoryID    string          `json:"categoryId"`
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Price         decimal.Decimal `json:"price"`
	PriceCurrency Currency        `json:"priceCurrency"`
	ImageURL      string          `json:"imageUrl"`
	IsAvailable   bool            `json:"isAvailable"`
	Order         int             `json:"order"`
	AuditFields
}
