package repositories

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// AdminReader defines read operations for stored admin records
type AdminReader interface {
	// FindAdminByUsername retrieves the admin with the given username.
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)

	// FindAdminByCredentials retrieves the admin whose username and password both equal
	// the supplied values. Returns apperrors.ErrNotFound when there is no match.
	FindAdminByCredentials(ctx context.Context, username, password string) (*domain.Admin, error)
}

// AdminWriter defines write operations for stored admin records
type AdminWriter interface {
	// SaveAdmin inserts an admin, or replaces the password of an existing username.
	SaveAdmin(ctx context.Context, admin domain.Admin) error

	// UpdateAdmin updates username and password of an existing admin by ID.
	UpdateAdmin(ctx context.Context, admin domain.Admin) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}
