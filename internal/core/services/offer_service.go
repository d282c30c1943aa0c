package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// offerService implements portssvc.OfferSvcFacade
type offerService struct {
	BaseService
	offerRepo portsrepo.OfferRepositoryFacade
}

// NewOfferService creates a new offer service
func NewOfferService(repo portsrepo.OfferRepositoryFacade, options ...ServiceOption) portssvc.OfferSvcFacade {
	svc := &offerService{offerRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.OfferSvcFacade = (*offerService)(nil)

func (s *offerService) ListLiveOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListLiveOffers(ctx, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to list live offers")
		return nil, fmt.Errorf("failed to list live offers: %w", err)
	}
	if offers == nil {
		return []domain.Offer{}, nil
	}
	return offers, nil
}

func (s *offerService) ListAllOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListOffers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offers")
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	if offers == nil {
		return []domain.Offer{}, nil
	}
	return offers, nil
}

func (s *offerService) CreateOffer(ctx context.Context, req dto.CreateOfferRequest) (*domain.Offer, error) {
	title := strings.TrimSpace(req.Title)
	titleAr := strings.TrimSpace(req.TitleAr)
	if title == "" || titleAr == "" {
		return nil, fmt.Errorf("%w: offer title and arabic title are required", apperrors.ErrValidation)
	}
	if req.Price != nil && !domain.ValidPrice(*req.Price) {
		return nil, fmt.Errorf("%w: offer price must be between 0 and %s", apperrors.ErrValidation, domain.MaxPrice)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.Now()
	offer := domain.Offer{
		OfferID:       uuid.NewString(),
		Title:         title,
		TitleAr:       titleAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		ExpiresAt:     req.ExpiresAt,
		IsActive:      isActive,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.offerRepo.SaveOffer(ctx, offer); err != nil {
		s.LogError(ctx, err, "Failed to save offer", slog.String("title", title))
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.LogInfo(ctx, "Offer created", slog.String("offer_id", offer.OfferID))
	return &offer, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, offerID string, req dto.UpdateOfferRequest) (*domain.Offer, error) {
	offer, err := s.offerRepo.FindOfferByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find offer %s: %w", offerID, err)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: offer title cannot be empty", apperrors.ErrValidation)
		}
		offer.Title = title
	}
	if req.TitleAr != nil {
		titleAr := strings.TrimSpace(*req.TitleAr)
		if titleAr == "" {
			return nil, fmt.Errorf("%w: offer arabic title cannot be empty", apperrors.ErrValidation)
		}
		offer.TitleAr = titleAr
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.DescriptionAr != nil {
		offer.DescriptionAr = *req.DescriptionAr
	}
	switch {
	case req.ClearPrice:
		offer.Price = nil
	case req.Price != nil:
		if !domain.ValidPrice(*req.Price) {
			return nil, fmt.Errorf("%w: offer price must be between 0 and %s", apperrors.ErrValidation, domain.MaxPrice)
		}
		offer.Price = req.Price
	}
	if req.ImageURL != nil {
		offer.ImageURL = *req.ImageURL
	}
	switch {
	case req.ClearExpiresAt:
		offer.ExpiresAt = nil
	case req.ExpiresAt != nil:
		offer.ExpiresAt = req.ExpiresAt
	}
	if req.IsActive != nil {
		offer.IsActive = *req.IsActive
	}
	offer.UpdatedAt = s.Now()

	if err := s.offerRepo.UpdateOffer(ctx, *offer); err != nil {
		s.LogError(ctx, err, "Failed to update offer", slog.String("offer_id", offerID))
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, offerID string) error {
	if err := s.offerRepo.DeleteOffer(ctx, offerID); err != nil {
		return fmt.Errorf("failed to delete offer %s: %w", offerID, err)
	}
	s.LogInfo(ctx, "Offer deleted", slog.String("offer_id", offerID))
	return nil
}
