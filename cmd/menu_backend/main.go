package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lavaresto/menu_backend/internal/core/services"
	"github.com/lavaresto/menu_backend/internal/handlers"
	"github.com/lavaresto/menu_backend/internal/middleware"
	"github.com/lavaresto/menu_backend/internal/platform/config"
	"github.com/lavaresto/menu_backend/internal/repositories/database/pgsql"
	"github.com/lavaresto/menu_backend/internal/utils"
	"github.com/lavaresto/menu_backend/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Lava Resto Menu API
// @version 1.0
// @description Public menu reads and admin-gated menu management for Lava Resto.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey AdminUsername
// @in header
// @name X-Admin-Username
// @description Admin username, sent with every admin request.

// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password
// @description Admin password, sent with every admin request.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Prices go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos)

	sweeper := services.NewOfferSweeper(repos.OfferRepo, logger)
	if err := sweeper.Start(cfg.OfferSweepSchedule); err != nil {
		return err
	}
	defer sweeper.Stop()

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return err
	}
	auditClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer auditClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	deps := handlers.RouteDeps{
		RateLimiter: limiter.New(memory.NewStore(), rate),
		AuditClient: auditClient,
	}
	if err := handlers.RegisterRoutes(r, cfg, container, deps); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
