package dto

import (
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest defines the data needed to create a menu item.
type CreateMenuItemRequest struct {
	CategoryID    string           `json:"categoryId" binding:"required,uuid"`
	Name          string           `json:"name" binding:"required"`
	NameAr        string           `json:"nameAr" binding:"required"`
	Description   string           `json:"description"`
	DescriptionAr string           `json:"descriptionAr"`
	Price         *decimal.Decimal `json:"price" binding:"required"`
	PriceCurrency string           `json:"priceCurrency" binding:"omitempty,currency"` // Defaults to USD
	ImageURL      string           `json:"imageUrl"`
	IsAvailable   *bool            `json:"isAvailable"` // Defaults to true
	Order         int              `json:"order"`
}

// UpdateMenuItemRequest defines a partial item update. Nil fields are left unchanged.
type UpdateMenuItemRequest struct {
	CategoryID    *string          `json:"categoryId" binding:"omitempty,uuid"`
	Name          *string          `json:"name" binding:"omitempty,min=1"`
	NameAr        *string          `json:"nameAr" binding:"omitempty,min=1"`
	Description   *string          `json:"description"`
	DescriptionAr *string          `json:"descriptionAr"`
	Price         *decimal.Decimal `json:"price"`
	PriceCurrency *string          `json:"priceCurrency" binding:"omitempty,currency"`
	ImageURL      *string          `json:"imageUrl"`
	IsAvailable   *bool            `json:"isAvailable"`
	Order         *int             `json:"order"`
}

// MenuItemResponse defines the data returned for a menu item.
// DisplayPrice is only set when the caller asked for a display currency.
type MenuItemResponse struct {
	ItemID        string          `json:"id"`
	CategoryID    string          `json:"categoryId"`
	Name          string          `json:"name"`
	NameAr        string          `json:"nameAr"`
	Description   string          `json:"description"`
	DescriptionAr string          `json:"descriptionAr"`
	Price         decimal.Decimal `json:"price"`
	PriceCurrency string          `json:"priceCurrency"`
	DisplayPrice  string          `json:"displayPrice,omitempty"`
	ImageURL      string          `json:"imageUrl"`
	IsAvailable   bool            `json:"isAvailable"`
	Order         int             `json:"order"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToMenuItemResponse converts a domain.MenuItem to MenuItemResponse DTO
func ToMenuItemResponse(item *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ItemID:        item.ItemID,
		CategoryID:    item.CategoryID,
		Name:          item.Name,
		NameAr:        item.NameAr,
		Description:   item.Description,
		DescriptionAr: item.DescriptionAr,
		Price:         item.Price,
		PriceCurrency: string(item.PriceCurrency),
		ImageURL:      item.ImageURL,
		IsAvailable:   item.IsAvailable,
		Order:         item.Order,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

// ToListMenuItemResponse converts a slice of domain.MenuItem to MenuItemResponse DTOs
func ToListMenuItemResponse(items []domain.MenuItem) []MenuItemResponse {
	res := make([]MenuItemResponse, len(items))
	for i := range items {
		res[i] = ToMenuItemResponse(&items[i])
	}
	return res
}
