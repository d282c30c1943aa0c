package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
)

// PgxMenuSeeder loads a complete menu in one transaction.
type PgxMenuSeeder struct {
	BaseRepository
}

func NewMenuSeeder(pool *pgxpool.Pool) *PgxMenuSeeder {
	return &PgxMenuSeeder{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MenuSeederWithTx = (*PgxMenuSeeder)(nil)

// ReplaceMenu deletes all categories (cascading to items), upserts settings and admins,
// then inserts the snapshot's categories and items. Offers are left untouched.
func (r *PgxMenuSeeder) ReplaceMenu(ctx context.Context, snapshot portsrepo.MenuSnapshot) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM categories;`); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}
	if err = saveSettings(ctx, tx, snapshot.Settings); err != nil {
		return err
	}
	for _, admin := range snapshot.Admins {
		if err = saveAdmin(ctx, tx, admin); err != nil {
			return err
		}
	}
	for _, category := range snapshot.Categories {
		if err = saveCategory(ctx, tx, category); err != nil {
			return err
		}
	}
	for _, item := range snapshot.Items {
		if err = saveMenuItem(ctx, tx, item); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}
