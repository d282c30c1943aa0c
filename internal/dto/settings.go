package dto

import (
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest defines a partial settings update. Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	RestaurantName *string          `json:"restaurantName" binding:"omitempty,min=1"`
	CurrencySymbol *string          `json:"currencySymbol" binding:"omitempty,min=1"`
	LBPRate        *decimal.Decimal `json:"lbpRate"` // Must be positive
}

// SettingsResponse defines the data returned for the settings record.
type SettingsResponse struct {
	RestaurantName string          `json:"restaurantName"`
	CurrencySymbol string          `json:"currencySymbol"`
	LBPRate        decimal.Decimal `json:"lbpRate"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		RestaurantName: s.RestaurantName,
		CurrencySymbol: s.CurrencySymbol,
		LBPRate:        s.LBPRate,
		UpdatedAt:      s.UpdatedAt,
	}
}
