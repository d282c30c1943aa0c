package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// Credential source names reported in domain.AdminPrincipal.Source.
const (
	SourceBootstrap = "bootstrap"
	SourceStore     = "store"
)

// DefaultAuthLookupTimeout bounds a stored credential lookup when none is configured.
const DefaultAuthLookupTimeout = 5 * time.Second

// CredentialProvider is one source of admin credentials.
// Check returns an error only when the source could not answer.
type CredentialProvider interface {
	Name() string
	Check(ctx context.Context, username, password string) (bool, error)
}

// BootstrapCredentialProvider accepts the operator-configured pair. It is disabled
// unless both fields are set.
type BootstrapCredentialProvider struct {
	username string
	password string
}

func NewBootstrapCredentialProvider(username, password string) *BootstrapCredentialProvider {
	return &BootstrapCredentialProvider{username: username, password: password}
}

func (p *BootstrapCredentialProvider) Name() string { return SourceBootstrap }

func (p *BootstrapCredentialProvider) Check(_ context.Context, username, password string) (bool, error) {
	if p.username == "" || p.password == "" {
		return false, nil
	}
	return username == p.username && password == p.password, nil
}

// StoredCredentialProvider accepts any admin record whose username and password match exactly.
type StoredCredentialProvider struct {
	adminRepo portsrepo.AdminReader
}

func NewStoredCredentialProvider(adminRepo portsrepo.AdminReader) *StoredCredentialProvider {
	return &StoredCredentialProvider{adminRepo: adminRepo}
}

func (p *StoredCredentialProvider) Name() string { return SourceStore }

func (p *StoredCredentialProvider) Check(ctx context.Context, username, password string) (bool, error) {
	_, err := p.adminRepo.FindAdminByCredentials(ctx, username, password)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// authService verifies admin credentials against an ordered provider chain
// and rotates stored credentials.
type authService struct {
	BaseService
	providers     []CredentialProvider
	adminRepo     portsrepo.AdminRepositoryFacade
	lookupTimeout time.Duration
}

// NewAuthService creates the admin auth service. Providers are consulted in the given order
// and the first match wins. Each provider call is bounded by lookupTimeout.
func NewAuthService(adminRepo portsrepo.AdminRepositoryFacade, lookupTimeout time.Duration, providers []CredentialProvider, options ...ServiceOption) portssvc.AuthSvcFacade {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultAuthLookupTimeout
	}
	svc := &authService{
		providers:     providers,
		adminRepo:     adminRepo,
		lookupTimeout: lookupTimeout,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Verify never logs the supplied password.
func (s *authService) Verify(ctx context.Context, username, password string) (*domain.AdminPrincipal, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	s.LogDebug(ctx, "Admin authentication attempt", slog.String("username", username))
	if username == "" || password == "" {
		s.LogWarn(ctx, "Admin authentication rejected", slog.String("reason", "missing credentials"), slog.String("username", username))
		return nil, apperrors.ErrMissingCredentials
	}

	for _, provider := range s.providers {
		ok, err := s.check(ctx, provider, username, password)
		if err != nil {
			s.LogError(ctx, err, "Admin credential lookup failed",
				slog.String("source", provider.Name()),
				slog.String("username", username))
			return nil, fmt.Errorf("%w: %s lookup: %v", apperrors.ErrAuthServer, provider.Name(), err)
		}
		if ok {
			s.LogInfo(ctx, "Admin authenticated", slog.String("source", provider.Name()), slog.String("username", username))
			return &domain.AdminPrincipal{Username: username, Source: provider.Name()}, nil
		}
	}

	s.LogWarn(ctx, "Admin authentication rejected", slog.String("reason", "invalid credentials"), slog.String("username", username))
	return nil, apperrors.ErrInvalidCredentials
}

func (s *authService) check(ctx context.Context, provider CredentialProvider, username, password string) (bool, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	ok, err := provider.Check(lookupCtx, username, password)
	if err == nil && lookupCtx.Err() != nil {
		// A provider that ignored its context still ran past the deadline.
		err = lookupCtx.Err()
	}
	return ok, err
}

func (s *authService) UpdateCredentials(ctx context.Context, currentUsername string, req dto.UpdateCredentialsRequest) error {
	newUsername := strings.TrimSpace(req.NewUsername)
	newPassword := strings.TrimSpace(req.NewPassword)
	if newUsername == "" && newPassword == "" {
		return fmt.Errorf("%w: newUsername or newPassword is required", apperrors.ErrValidation)
	}

	currentUsername = strings.TrimSpace(currentUsername)
	admin, err := s.adminRepo.FindAdminByUsername(ctx, currentUsername)
	if err != nil {
		return fmt.Errorf("failed to find admin %s: %w", currentUsername, err)
	}

	if newUsername != "" && newUsername != admin.Username {
		existing, err := s.adminRepo.FindAdminByUsername(ctx, newUsername)
		switch {
		case err == nil && existing != nil:
			return fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, newUsername)
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			return fmt.Errorf("failed to check username %s: %w", newUsername, err)
		}
		admin.Username = newUsername
	}
	if newPassword != "" {
		admin.Password = newPassword
	}
	admin.UpdatedAt = s.Now()

	if err := s.adminRepo.UpdateAdmin(ctx, *admin); err != nil {
		s.LogError(ctx, err, "Failed to update admin credentials", slog.String("admin_id", admin.AdminID))
		return fmt.Errorf("failed to update admin credentials: %w", err)
	}
	s.LogInfo(ctx, "Admin credentials updated",
		slog.String("admin_id", admin.AdminID),
		slog.String("previous_username", currentUsername),
		slog.String("username", admin.Username))
	return nil
}
