package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferPriceCurrency is the base currency of every offer price.
const OfferPriceCurrency = USD

// Offer is a promotion shown in the public menu popup.
type Offer struct {
	OfferID       string           `json:"id"`
	Title         string           `json:"title"`
	TitleAr       string           `json:"titleAr"`
	Description   string           `json:"description"`
	DescriptionAr string           `json:"descriptionAr"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	ImageURL      string           `json:"imageUrl"`
	ExpiresAt     *time.Time       `json:"expiresAt,omitempty"`
	IsActive      bool             `json:"isActive"`
	AuditFields
}

// IsLive reports whether the offer should be shown to the public at the given instant.
func (o Offer) IsLive(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	return o.ExpiresAt == nil || o.ExpiresAt.After(now)
}
