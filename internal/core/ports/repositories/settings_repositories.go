package repositories

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// SettingsRepositoryFacade persists the singleton settings record.
type SettingsRepositoryFacade interface {
	// GetSettings returns apperrors.ErrNotFound if settings were never saved.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings inserts or replaces the singleton record.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
