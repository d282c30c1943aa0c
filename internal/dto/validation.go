package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// CurrencyTag is the binding tag accepting "USD" or "LBP".
const CurrencyTag = "currency"

// RegisterValidators adds the menu-specific validation tags to v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation(CurrencyTag, func(fl validator.FieldLevel) bool {
		return domain.Currency(fl.Field().String()).IsValid()
	})
}
