package services

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateProvider exposes the current LBP-per-USD rate.
type ExchangeRateProvider interface {
	GetExchangeRate(ctx context.Context) (decimal.Decimal, error)
}

// SettingsReaderSvc defines read operations for the settings record
type SettingsReaderSvc interface {
	ExchangeRateProvider

	// GetSettings returns the settings, creating the defaults on first use.
	GetSettings(ctx context.Context) (*domain.Settings, error)
}

// SettingsWriterSvc defines write operations for the settings record
type SettingsWriterSvc interface {
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
	SetExchangeRate(ctx context.Context, rate decimal.Decimal) error
}

// SettingsSvcFacade combines all settings-related service interfaces
type SettingsSvcFacade interface {
	SettingsReaderSvc
	SettingsWriterSvc
}
