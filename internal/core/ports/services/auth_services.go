package services

import (
	"context"

	"github.com/lavaresto/menu_backend/internal/core/domain"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// CredentialVerifierSvc decides whether a credential pair authorizes an admin action.
type CredentialVerifierSvc interface {
	// Verify returns the accepted principal, or one of apperrors.ErrMissingCredentials,
	// apperrors.ErrInvalidCredentials or apperrors.ErrAuthServer.
	Verify(ctx context.Context, username, password string) (*domain.AdminPrincipal, error)
}

// CredentialRotatorSvc changes the stored admin login.
type CredentialRotatorSvc interface {
	// UpdateCredentials rotates the stored admin record identified by currentUsername.
	UpdateCredentials(ctx context.Context, currentUsername string, req dto.UpdateCredentialsRequest) error
}

// AuthSvcFacade combines all admin authentication service interfaces
type AuthSvcFacade interface {
	CredentialVerifierSvc
	CredentialRotatorSvc
}
