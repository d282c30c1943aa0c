package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lavaresto/menu_backend/cmd/docs"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/platform/config"
	"github.com/lavaresto/menu_backend/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the optional cross-cutting collaborators of the admin routes.
// A nil RateLimiter disables rate limiting; a nil or unconfigured AuditClient disables auditing.
type RouteDeps struct {
	RateLimiter *limiter.Limiter
	AuditClient *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	r.Use(corsMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerValidators adds the custom binding tags to gin's validator engine.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected gin validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.AdminUsernameHeader, middleware.AdminPasswordHeader},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return cors.New(corsCfg)
}

// setupAPIV1Routes configures the /api/v1 group. Reads are public; every mutation,
// the full offer list and the auth routes go through the admin gate.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1")

	adminChain := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		adminChain = append(adminChain, middleware.RateLimit(deps.RateLimiter, "admin"))
	}
	adminChain = append(adminChain,
		middleware.RequireAdmin(services.Auth),
		middleware.AdminAuditMiddleware(deps.AuditClient),
	)
	admin := v1.Group("", adminChain...)

	registerHomeRoutes(v1)
	registerMenuRoutes(v1, services.Menu)
	registerCategoryRoutes(v1, admin, services.Category)
	registerItemRoutes(v1, admin, services.MenuItem, services.Settings)
	registerOfferRoutes(v1, admin, services.Offer, services.Settings)
	registerSettingsRoutes(v1, admin, services.Settings)
	registerAuthRoutes(admin, services.Auth)

	slog.Debug("API v1 routes registered", slog.Bool("rate_limited", deps.RateLimiter != nil))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
