package services

import (
	"context"
	"errors"
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

// menuItemService implements portssvc.MenuItemSvcFacade
type menuItemService struct {
	BaseService
	itemRepo     portsrepo.MenuItemRepositoryFacade
	categoryRepo portsrepo.CategoryReader
}

// NewMenuItemService creates a new menu item service
func NewMenuItemService(itemRepo portsrepo.MenuItemRepositoryFacade, categoryRepo portsrepo.CategoryReader, options ...ServiceOption) portssvc.MenuItemSvcFacade {
	svc := &menuItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.MenuItemSvcFacade = (*menuItemService)(nil)

func (s *menuItemService) ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItem, error) {
	items, err := s.itemRepo.ListMenuItems(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list menu items", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	if items == nil {
		return []domain.MenuItem{}, nil
	}
	return items, nil
}

// ensureCategory maps a missing category to a validation error; an item cannot point nowhere.
func (s *menuItemService) ensureCategory(ctx context.Context, categoryID string) error {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: category %s does not exist", apperrors.ErrValidation, categoryID)
		}
		return fmt.Errorf("failed to check category %s: %w", categoryID, err)
	}
	return nil
}

func (s *menuItemService) CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*domain.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	nameAr := strings.TrimSpace(req.NameAr)
	if name == "" || nameAr == "" {
		return nil, fmt.Errorf("%w: item name and arabic name are required", apperrors.ErrValidation)
	}
	if req.Price == nil || !domain.ValidPrice(*req.Price) {
		return nil, fmt.Errorf("%w: price must be between 0 and %s", apperrors.ErrValidation, domain.MaxPrice)
	}

	priceCurrency := domain.USD
	if req.PriceCurrency != "" {
		c, ok := domain.ParseCurrency(req.PriceCurrency)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported price currency %q", apperrors.ErrValidation, req.PriceCurrency)
		}
		priceCurrency = c
	}

	if err := s.ensureCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := s.Now()
	item := domain.MenuItem{
		ItemID:        uuid.NewString(),
		CategoryID:    req.CategoryID,
		Name:          name,
		NameAr:        nameAr,
		Description:   req.Description,
		DescriptionAr: req.DescriptionAr,
		Price:         *req.Price,
		PriceCurrency: priceCurrency,
		ImageURL:      req.ImageURL,
		IsAvailable:   isAvailable,
		Order:         req.Order,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.itemRepo.SaveMenuItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save menu item", slog.String("name", name))
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.LogInfo(ctx, "Menu item created", slog.String("item_id", item.ItemID), slog.String("category_id", item.CategoryID))
	return &item, nil
}

func (s *menuItemService) UpdateMenuItem(ctx context.Context, itemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error) {
	item, err := s.itemRepo.FindMenuItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find menu item %s: %w", itemID, err)
	}

	if req.CategoryID != nil && *req.CategoryID != item.CategoryID {
		if err := s.ensureCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty", apperrors.ErrValidation)
		}
		item.Name = name
	}
	if req.NameAr != nil {
		nameAr := strings.TrimSpace(*req.NameAr)
		if nameAr == "" {
			return nil, fmt.Errorf("%w: item arabic name cannot be empty", apperrors.ErrValidation)
		}
		item.NameAr = nameAr
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.DescriptionAr != nil {
		item.DescriptionAr = *req.DescriptionAr
	}
	if req.Price != nil {
		if !domain.ValidPrice(*req.Price) {
			return nil, fmt.Errorf("%w: price must be between 0 and %s", apperrors.ErrValidation, domain.MaxPrice)
		}
		item.Price = *req.Price
	}
	if req.PriceCurrency != nil {
		c, ok := domain.ParseCurrency(*req.PriceCurrency)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported price currency %q", apperrors.ErrValidation, *req.PriceCurrency)
		}
		item.PriceCurrency = c
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	item.UpdatedAt = s.Now()

	if err := s.itemRepo.UpdateMenuItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update menu item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

func (s *menuItemService) DeleteMenuItem(ctx context.Context, itemID string) error {
	if err := s.itemRepo.DeleteMenuItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete menu item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "Menu item deleted", slog.String("item_id", itemID))
	return nil
}
