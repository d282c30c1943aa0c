package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/lavaresto/menu_backend/internal/models"
	"github.com/lavaresto/menu_backend/internal/utils/mapping"
)

const menuItemColumns = `item_id, category_id, name, name_ar, description, description_ar,
	price, price_currency, image_url, is_available, sort_order, created_at, updated_at`

type PgxMenuItemRepository struct {
	BaseRepository
}

func newPgxMenuItemRepository(pool *pgxpool.Pool) *PgxMenuItemRepository {
	return &PgxMenuItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MenuItemRepositoryFacade = (*PgxMenuItemRepository)(nil)

func scanMenuItem(row pgx.Row) (models.MenuItem, error) {
	var i models.MenuItem
	err := row.Scan(
		&i.ItemID,
		&i.CategoryID,
		&i.Name,
		&i.NameAr,
		&i.Description,
		&i.DescriptionAr,
		&i.Price,
		&i.PriceCurrency,
		&i.ImageURL,
		&i.IsAvailable,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// FindMenuItemByID retrieves a menu item by its ID.
func (r *PgxMenuItemRepository) FindMenuItemByID(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE item_id = $1;`

	modelItem, err := scanMenuItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find menu item %s: %w", itemID, mapPgError(err))
	}

	item := mapping.ToDomainMenuItem(modelItem)
	return &item, nil
}

// ListMenuItems retrieves items ordered by sort order then creation time.
// An empty categoryID lists every category.
func (r *PgxMenuItemRepository) ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1 = '' OR category_id::text = $1)
		ORDER BY sort_order ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	modelItems, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.MenuItem, error) {
		return scanMenuItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan menu items: %w", err)
	}

	return mapping.ToDomainMenuItemSlice(modelItems), nil
}

// SaveMenuItem inserts a new menu item.
func (r *PgxMenuItemRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	return saveMenuItem(ctx, r.Pool, item)
}

func saveMenuItem(ctx context.Context, db dbtx, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		INSERT INTO menu_items (` + menuItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := db.Exec(ctx, query,
		m.ItemID,
		m.CategoryID,
		m.Name,
		m.NameAr,
		m.Description,
		m.DescriptionAr,
		m.Price,
		m.PriceCurrency,
		m.ImageURL,
		m.IsAvailable,
		m.SortOrder,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save menu item %s: %w", m.ItemID, mapPgError(err))
	}
	return nil
}

// UpdateMenuItem replaces every mutable column of an existing item.
func (r *PgxMenuItemRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	m := mapping.ToModelMenuItem(item)
	query := `
		UPDATE menu_items
		SET category_id = $2, name = $3, name_ar = $4, description = $5, description_ar = $6,
			price = $7, price_currency = $8, image_url = $9, is_available = $10, sort_order = $11,
			updated_at = $12
		WHERE item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.CategoryID,
		m.Name,
		m.NameAr,
		m.Description,
		m.DescriptionAr,
		m.Price,
		m.PriceCurrency,
		m.ImageURL,
		m.IsAvailable,
		m.SortOrder,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item %s: %w", m.ItemID, mapPgError(err))
	}
	return expectAffected(tag)
}

// DeleteMenuItem removes a menu item.
func (r *PgxMenuItemRepository) DeleteMenuItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM menu_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete menu item %s: %w", itemID, mapPgError(err))
	}
	return expectAffected(tag)
}
