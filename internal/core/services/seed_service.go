package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
)

// SeedService loads a complete menu snapshot into the database.
type SeedService struct {
	BaseService
	seeder portsrepo.MenuSeeder
}

func NewSeedService(seeder portsrepo.MenuSeeder, options ...ServiceOption) *SeedService {
	svc := &SeedService{seeder: seeder}
	svc.apply(options)
	return svc
}

// Seed validates the snapshot, stamps audit fields and replaces the stored menu.
func (s *SeedService) Seed(ctx context.Context, snapshot portsrepo.MenuSnapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	now := s.Now()
	snapshot.Settings.CreatedAt, snapshot.Settings.UpdatedAt = now, now
	for i := range snapshot.Admins {
		snapshot.Admins[i].CreatedAt, snapshot.Admins[i].UpdatedAt = now, now
	}
	for i := range snapshot.Categories {
		snapshot.Categories[i].CreatedAt, snapshot.Categories[i].UpdatedAt = now, now
	}
	for i := range snapshot.Items {
		snapshot.Items[i].CreatedAt, snapshot.Items[i].UpdatedAt = now, now
	}

	if err := s.seeder.ReplaceMenu(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}
	s.LogInfo(ctx, "Menu seeded",
		slog.Int("categories", len(snapshot.Categories)),
		slog.Int("items", len(snapshot.Items)),
		slog.Int("admins", len(snapshot.Admins)))
	return nil
}

func validateSnapshot(snapshot portsrepo.MenuSnapshot) error {
	if !snapshot.Settings.LBPRate.IsPositive() {
		return fmt.Errorf("%w: seed exchange rate must be positive", apperrors.ErrValidation)
	}

	usernames := make(map[string]bool, len(snapshot.Admins))
	for _, admin := range snapshot.Admins {
		if strings.TrimSpace(admin.Username) == "" || strings.TrimSpace(admin.Password) == "" {
			return fmt.Errorf("%w: seed admin needs a username and password", apperrors.ErrValidation)
		}
		if usernames[admin.Username] {
			return fmt.Errorf("%w: seed admin %s listed twice", apperrors.ErrDuplicate, admin.Username)
		}
		usernames[admin.Username] = true
	}

	categories := make(map[string]bool, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		categories[category.CategoryID] = true
	}
	for _, item := range snapshot.Items {
		if !categories[item.CategoryID] {
			return fmt.Errorf("%w: item %q references unknown category", apperrors.ErrValidation, item.Name)
		}
		if !item.PriceCurrency.IsValid() {
			return fmt.Errorf("%w: item %q has unsupported currency %q", apperrors.ErrValidation, item.Name, item.PriceCurrency)
		}
		if !domain.ValidPrice(item.Price) {
			return fmt.Errorf("%w: item %q has a price outside 0..%s", apperrors.ErrValidation, item.Name, domain.MaxPrice)
		}
	}
	return nil
}
