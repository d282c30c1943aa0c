package pgsql

import (
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo: newPgxCategoryRepository(dbPool),
		MenuItemRepo: newPgxMenuItemRepository(dbPool),
		OfferRepo:    newPgxOfferRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		AdminRepo:    newPgxAdminRepository(dbPool),
	}
}
