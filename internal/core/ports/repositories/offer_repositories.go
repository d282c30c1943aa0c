package repositories

import (
	"context"
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// OfferReader defines read operations for offer data
type OfferReader interface {
	FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error)

	// ListOffers retrieves every offer regardless of state.
	ListOffers(ctx context.Context) ([]domain.Offer, error)

	// ListLiveOffers retrieves active offers that have no expiry or expire after now.
	ListLiveOffers(ctx context.Context, now time.Time) ([]domain.Offer, error)
}

// OfferWriter defines write operations for offer data
type OfferWriter interface {
	SaveOffer(ctx context.Context, offer domain.Offer) error
	UpdateOffer(ctx context.Context, offer domain.Offer) error
	DeleteOffer(ctx context.Context, offerID string) error
}

// OfferLifecycleManager defines operations for managing offer lifecycle
type OfferLifecycleManager interface {
	// DeactivateExpiredOffers marks active offers whose expiry is at or before now as inactive.
	// It returns the number of offers changed.
	DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error)
}

// OfferRepositoryFacade combines all offer-related repository interfaces
type OfferRepositoryFacade interface {
	OfferReader
	OfferWriter
	OfferLifecycleManager
}
