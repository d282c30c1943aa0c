package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// settingsService implements portssvc.SettingsSvcFacade
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	defaultRate  decimal.Decimal
}

// NewSettingsService creates a settings service. defaultRate seeds the record the first
// time it is read; a non-positive value falls back to domain.DefaultLBPRate.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, defaultRate decimal.Decimal, options ...ServiceOption) portssvc.SettingsSvcFacade {
	svc := &settingsService{
		settingsRepo: repo,
		defaultRate:  defaultRate,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := domain.DefaultSettings(s.defaultRate)
	now := s.Now()
	defaults.CreatedAt = now
	defaults.UpdatedAt = now
	if err := s.settingsRepo.SaveSettings(ctx, defaults); err != nil {
		s.LogError(ctx, err, "Failed to create default settings")
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	s.LogInfo(ctx, "Created default settings", slog.String("lbp_rate", defaults.LBPRate.String()))
	return &defaults, nil
}

func (s *settingsService) GetExchangeRate(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return settings.LBPRate, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.RestaurantName != nil {
		name := strings.TrimSpace(*req.RestaurantName)
		if name == "" {
			return nil, fmt.Errorf("%w: restaurant name cannot be empty", apperrors.ErrValidation)
		}
		settings.RestaurantName = name
	}
	if req.CurrencySymbol != nil {
		symbol := strings.TrimSpace(*req.CurrencySymbol)
		if symbol == "" {
			return nil, fmt.Errorf("%w: currency symbol cannot be empty", apperrors.ErrValidation)
		}
		settings.CurrencySymbol = symbol
	}
	if req.LBPRate != nil {
		if !req.LBPRate.IsPositive() {
			return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		settings.LBPRate = *req.LBPRate
	}
	settings.UpdatedAt = s.Now()

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	s.LogInfo(ctx, "Settings updated", slog.String("lbp_rate", settings.LBPRate.String()))
	return settings, nil
}

func (s *settingsService) SetExchangeRate(ctx context.Context, rate decimal.Decimal) error {
	_, err := s.UpdateSettings(ctx, dto.UpdateSettingsRequest{LBPRate: &rate})
	return err
}
