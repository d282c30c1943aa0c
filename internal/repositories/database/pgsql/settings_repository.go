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

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetSettings retrieves the singleton settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT settings_id, restaurant_name, currency_symbol, lbp_rate, created_at, updated_at
		FROM settings
		WHERE settings_id = $1;
	`
	var m models.Settings
	err := r.Pool.QueryRow(ctx, query, mapping.SettingsRowID).Scan(
		&m.SettingsID,
		&m.RestaurantName,
		&m.CurrencySymbol,
		&m.LBPRate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the singleton settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return saveSettings(ctx, r.Pool, settings)
}

func saveSettings(ctx context.Context, db dbtx, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		INSERT INTO settings (settings_id, restaurant_name, currency_symbol, lbp_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (settings_id) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			currency_symbol = EXCLUDED.currency_symbol,
			lbp_rate = EXCLUDED.lbp_rate,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := db.Exec(ctx, query, m.SettingsID, m.RestaurantName, m.CurrencySymbol, m.LBPRate, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
