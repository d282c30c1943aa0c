package dto

import (
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOfferRequest defines the data needed to create an offer. Prices are in USD.
type CreateOfferRequest struct {
	Title         string           `json:"title" binding:"required"`
	TitleAr       string           `json:"titleAr" binding:"required"`
	Description   string           `json:"description"`
	DescriptionAr string           `json:"descriptionAr"`
	Price         *decimal.Decimal `json:"price"`
	ImageURL      string           `json:"imageUrl"`
	ExpiresAt     *time.Time       `json:"expiresAt"`
	IsActive      *bool            `json:"isActive"` // Defaults to true
}

// UpdateOfferRequest defines a partial offer update. Nil fields are left unchanged;
// ClearPrice and ClearExpiresAt remove the optional values.
type UpdateOfferRequest struct {
	Title          *string          `json:"title" binding:"omitempty,min=1"`
	TitleAr        *string          `json:"titleAr" binding:"omitempty,min=1"`
	Description    *string          `json:"description"`
	DescriptionAr  *string          `json:"descriptionAr"`
	Price          *decimal.Decimal `json:"price"`
	ClearPrice     bool             `json:"clearPrice"`
	ImageURL       *string          `json:"imageUrl"`
	ExpiresAt      *time.Time       `json:"expiresAt"`
	ClearExpiresAt bool             `json:"clearExpiresAt"`
	IsActive       *bool            `json:"isActive"`
}

// OfferResponse defines the data returned for an offer.
type OfferResponse struct {
	OfferID       string           `json:"id"`
	Title         string           `json:"title"`
	TitleAr       string           `json:"titleAr"`
	Description   string           `json:"description"`
	DescriptionAr string           `json:"descriptionAr"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	DisplayPrice  string           `json:"displayPrice,omitempty"`
	ImageURL      string           `json:"imageUrl"`
	ExpiresAt     *time.Time       `json:"expiresAt,omitempty"`
	IsActive      bool             `json:"isActive"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// ToOfferResponse converts a domain.Offer to OfferResponse DTO
func ToOfferResponse(o *domain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:       o.OfferID,
		Title:         o.Title,
		TitleAr:       o.TitleAr,
		Description:   o.Description,
		DescriptionAr: o.DescriptionAr,
		Price:         o.Price,
		ImageURL:      o.ImageURL,
		ExpiresAt:     o.ExpiresAt,
		IsActive:      o.IsActive,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToListOfferResponse converts a slice of domain.Offer to OfferResponse DTOs
func ToListOfferResponse(offers []domain.Offer) []OfferResponse {
	res := make([]OfferResponse, len(offers))
	for i := range offers {
		res[i] = ToOfferResponse(&offers[i])
	}
	return res
}
