package services

import (
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Settings = NewSettingsService(repos.SettingsRepo, cfg.DefaultExchangeRate)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.MenuItem = NewMenuItemService(repos.MenuItemRepo, repos.CategoryRepo)
	container.Offer = NewOfferService(repos.OfferRepo)
	container.Menu = NewMenuService(container.Settings, container.Category, container.MenuItem, container.Offer)

	// Bootstrap credentials take precedence over stored admins.
	container.Auth = NewAuthService(repos.AdminRepo, cfg.AuthLookupTimeout, []CredentialProvider{
		NewBootstrapCredentialProvider(cfg.AdminUsername, cfg.AdminPassword),
		NewStoredCredentialProvider(repos.AdminRepo),
	})

	return container
}
