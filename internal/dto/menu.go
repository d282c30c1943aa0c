package dto

import "github.com/shopspring/decimal"

// MenuCategoryResponse is a category with its available items.
type MenuCategoryResponse struct {
	CategoryResponse
	Items []MenuItemResponse `json:"items"`
}

// MenuResponse is the complete public menu rendered in one display currency.
type MenuResponse struct {
	RestaurantName string                 `json:"restaurantName"`
	Currency       string                 `json:"currency"`
	ExchangeRate   decimal.Decimal        `json:"exchangeRate"`
	Categories     []MenuCategoryResponse `json:"categories"`
	Offers         []OfferResponse        `json:"offers"`
}
