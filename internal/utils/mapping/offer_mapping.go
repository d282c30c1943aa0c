package mapping

import (
	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelOffer converts a domain Offer to a model Offer
func ToModelOffer(d domain.Offer) models.Offer {
	m := models.Offer{
		OfferID:       d.OfferID,
		Title:         d.Title,
		TitleAr:       d.TitleAr,
		Description:   d.Description,
		DescriptionAr: d.DescriptionAr,
		ImageURL:      d.ImageURL,
		ExpiresAt:     d.ExpiresAt,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.Price != nil {
		m.Price = decimal.NewNullDecimal(*d.Price)
	}
	return m
}

// ToDomainOffer converts a model Offer to a domain Offer
func ToDomainOffer(m models.Offer) domain.Offer {
	d := domain.Offer{
		OfferID:       m.OfferID,
		Title:         m.Title,
		TitleAr:       m.TitleAr,
		Description:   m.Description,
		DescriptionAr: m.DescriptionAr,
		ImageURL:      m.ImageURL,
		ExpiresAt:     m.ExpiresAt,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.Price.Valid {
		price := m.Price.Decimal
		d.Price = &price
	}
	return d
}

// ToDomainOfferSlice converts a slice of model Offers to domain Offers
func ToDomainOfferSlice(ms []models.Offer) []domain.Offer {
	ds := make([]domain.Offer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOffer(m)
	}
	return ds
}
