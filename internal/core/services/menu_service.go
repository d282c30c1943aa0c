package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/utils"
)

// menuService builds the public menu from the other read services.
type menuService struct {
	BaseService
	settings   portssvc.SettingsReaderSvc
	categories portssvc.CategoryReaderSvc
	items      portssvc.MenuItemReaderSvc
	offers     portssvc.OfferReaderSvc
}

// NewMenuService creates the public menu service
func NewMenuService(
	settings portssvc.SettingsReaderSvc,
	categories portssvc.CategoryReaderSvc,
	items portssvc.MenuItemReaderSvc,
	offers portssvc.OfferReaderSvc,
	options ...ServiceOption,
) portssvc.MenuReaderSvc {
	svc := &menuService{
		settings:   settings,
		categories: categories,
		items:      items,
		offers:     offers,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.MenuReaderSvc = (*menuService)(nil)

// GetMenu returns categories in display order, each with its available items, and the live
// offers. Every price is rendered in display using the current exchange rate.
func (s *menuService) GetMenu(ctx context.Context, display domain.Currency) (*dto.MenuResponse, error) {
	if !display.IsValid() {
		return nil, fmt.Errorf("%w: unsupported display currency %q", apperrors.ErrValidation, display)
	}

	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListMenuItems(ctx, "")
	if err != nil {
		return nil, err
	}
	offers, err := s.offers.ListLiveOffers(ctx)
	if err != nil {
		return nil, err
	}

	rate := settings.LBPRate
	byCategory := make(map[string][]dto.MenuItemResponse, len(categories))
	for i := range items {
		item := &items[i]
		if !item.IsAvailable {
			continue
		}
		res := dto.ToMenuItemResponse(item)
		res.DisplayPrice, err = utils.FormatPrice(item.Price, item.PriceCurrency, display, rate)
		if err != nil {
			s.LogError(ctx, err, "Failed to format item price", slog.String("item_id", item.ItemID))
			return nil, fmt.Errorf("failed to format price of item %s: %w", item.ItemID, err)
		}
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], res)
	}

	menu := &dto.MenuResponse{
		RestaurantName: settings.RestaurantName,
		Currency:       string(display),
		ExchangeRate:   rate,
		Categories:     make([]dto.MenuCategoryResponse, 0, len(categories)),
		Offers:         make([]dto.OfferResponse, 0, len(offers)),
	}
	for i := range categories {
		categoryItems := byCategory[categories[i].CategoryID]
		if categoryItems == nil {
			categoryItems = []dto.MenuItemResponse{}
		}
		menu.Categories = append(menu.Categories, dto.MenuCategoryResponse{
			CategoryResponse: dto.ToCategoryResponse(&categories[i]),
			Items:            categoryItems,
		})
	}
	for i := range offers {
		offer := &offers[i]
		res := dto.ToOfferResponse(offer)
		if offer.Price != nil {
			res.DisplayPrice, err = utils.FormatPrice(*offer.Price, domain.OfferPriceCurrency, display, rate)
			if err != nil {
				return nil, fmt.Errorf("failed to format price of offer %s: %w", offer.OfferID, err)
			}
		}
		menu.Offers = append(menu.Offers, res)
	}

	return menu, nil
}
