package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- Mock MenuItemRepository ---
type MockMenuItemRepository struct {
	mock.Mock
}

func (m *MockMenuItemRepository) FindMenuItemByID(ctx context.Context, itemID string) (*domain.MenuItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItem, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) SaveMenuItem(ctx context.Context, item domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) DeleteMenuItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

// --- Mock OfferRepository ---
type MockOfferRepository struct {
	mock.Mock
}

func (m *MockOfferRepository) FindOfferByID(ctx context.Context, offerID string) (*domain.Offer, error) {
	args := m.Called(ctx, offerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) ListLiveOffers(ctx context.Context, now time.Time) ([]domain.Offer, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferRepository) SaveOffer(ctx context.Context, offer domain.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockOfferRepository) UpdateOffer(ctx context.Context, offer domain.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *MockOfferRepository) DeleteOffer(ctx context.Context, offerID string) error {
	return m.Called(ctx, offerID).Error(0)
}

func (m *MockOfferRepository) DeactivateExpiredOffers(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindAdminByCredentials(ctx context.Context, username, password string) (*domain.Admin, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

func (m *MockAdminRepository) UpdateAdmin(ctx context.Context, admin domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}

// --- Mock MenuSeeder ---
type MockMenuSeeder struct {
	mock.Mock
}

func (m *MockMenuSeeder) ReplaceMenu(ctx context.Context, snapshot portsrepo.MenuSnapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
