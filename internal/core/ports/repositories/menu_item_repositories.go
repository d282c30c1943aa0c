package repositories

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// MenuItemReader defines read operations for menu item data
type MenuItemReader interface {
	// FindMenuItemByID retrieves a specific item by its ID.
	FindMenuItemByID(ctx context.Context, itemID string) (*domain.MenuItem, error)

	// ListMenuItems retrieves items ordered by display order then creation time.
	// An empty categoryID returns items of all categories.
	ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItem, error)
}

// MenuItemWriter defines write operations for menu item data
type MenuItemWriter interface {
	SaveMenuItem(ctx context.Context, item domain.MenuItem) error
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, itemID string) error
}

// MenuItemRepositoryFacade combines all menu item-related repository interfaces
type MenuItemRepositoryFacade interface {
	MenuItemReader
	MenuItemWriter
}
