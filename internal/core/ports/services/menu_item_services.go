package services

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// MenuItemReaderSvc defines read operations for menu items
type MenuItemReaderSvc interface {
	// ListMenuItems lists items, optionally restricted to one category.
	ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItem, error)
}

// MenuItemWriterSvc defines write operations for menu items
type MenuItemWriterSvc interface {
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, itemID string, req dto.UpdateMenuItemRequest) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, itemID string) error
}

// MenuItemSvcFacade combines all menu item-related service interfaces
type MenuItemSvcFacade interface {
	MenuItemReaderSvc
	MenuItemWriterSvc
}
