package repositories

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// MenuSnapshot is a complete menu to load into an empty or existing database.
type MenuSnapshot struct {
	Settings   domain.Settings
	Admins     []domain.Admin
	Categories []domain.Category
	Items      []domain.MenuItem
}

// MenuSeeder replaces categories, items and admins and upserts settings atomically.
type MenuSeeder interface {
	ReplaceMenu(ctx context.Context, snapshot MenuSnapshot) error
}

// MenuSeederWithTx extends MenuSeeder with transaction capabilities
type MenuSeederWithTx interface {
	MenuSeeder
	TransactionManager
}
