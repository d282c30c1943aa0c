package services

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// MenuReaderSvc assembles the public menu with prices rendered in one display currency.
type MenuReaderSvc interface {
	GetMenu(ctx context.Context, display domain.Currency) (*dto.MenuResponse, error)
}
