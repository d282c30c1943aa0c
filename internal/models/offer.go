package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Offer is the row shape of the offers table. Price and ExpiresAt are nullable.
type Offer struct {
	OfferID       string              `db:"offer_id"`
	Title         string              `db:"title"`
	TitleAr       string              `db:"title_ar"`
	Description   string              `db:"description"`
	DescriptionAr string              `db:"description_ar"`
	Price         decimal.NullDecimal `db:"price"`
	ImageURL      string              `db:"image_url"`
	ExpiresAt     *time.Time          `db:"expires_at"`
	IsActive      bool                `db:"is_active"`
	AuditFields
}
