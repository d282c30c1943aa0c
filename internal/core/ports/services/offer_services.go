package services

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// OfferReaderSvc defines read operations for offers
type OfferReaderSvc interface {
	// ListLiveOffers returns active offers that have not expired.
	ListLiveOffers(ctx context.Context) ([]domain.Offer, error)

	// ListAllOffers returns every offer, for the admin screen.
	ListAllOffers(ctx context.Context) ([]domain.Offer, error)
}

// OfferWriterSvc defines write operations for offers
type OfferWriterSvc interface {
	CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, offerID string) error
}

// OfferSvcFacade combines all offer-related service interfaces
type OfferSvcFacade interface {
	OfferReaderSvc
	OfferWriterSvc
}
