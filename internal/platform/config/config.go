package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Bootstrap admin credentials, checked before the admins table.
	AdminUsername     string
	AdminPassword     string
	AuthLookupTimeout time.Duration

	DefaultExchangeRate decimal.Decimal
	RateLimit           string
	CORSAllowedOrigins  []string
	OfferSweepSchedule  string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// HasBootstrapAdmin reports whether both bootstrap credentials are configured.
func (c *Config) HasBootstrapAdmin() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("ADMIN_USERNAME", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("AUTH_LOOKUP_TIMEOUT", "5s")
	viper.SetDefault("DEFAULT_EXCHANGE_RATE", "89500")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("OFFER_SWEEP_SCHEDULE", "@hourly")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	// Empty values are meaningful: an empty OFFER_SWEEP_SCHEDULE disables the sweep.
	viper.AllowEmptyEnv(true)
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = stringOr(viper.GetString("MIGRATIONS_PATH"), "file://migrations")

	// Bootstrap credentials are compared byte for byte, so they are kept unmodified.
	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	if !cfg.HasBootstrapAdmin() {
		log.Println("Warning: ADMIN_USERNAME/ADMIN_PASSWORD not set. Only stored admins can authenticate.")
	}

	lookupTimeoutStr := viper.GetString("AUTH_LOOKUP_TIMEOUT")
	lookupTimeout, err := time.ParseDuration(lookupTimeoutStr)
	if err != nil || lookupTimeout <= 0 {
		lookupTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for AUTH_LOOKUP_TIMEOUT ('%s'). Defaulting to %s.\n", lookupTimeoutStr, lookupTimeout)
	}
	cfg.AuthLookupTimeout = lookupTimeout

	rateStr := viper.GetString("DEFAULT_EXCHANGE_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || !rate.IsPositive() {
		rate = decimal.NewFromInt(89500)
		log.Printf("Warning: Invalid value for DEFAULT_EXCHANGE_RATE ('%s'). Defaulting to %s.\n", rateStr, rate)
	}
	cfg.DefaultExchangeRate = rate

	cfg.RateLimit = stringOr(viper.GetString("RATE_LIMIT"), "100-M")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	cfg.OfferSweepSchedule = strings.TrimSpace(viper.GetString("OFFER_SWEEP_SCHEDULE"))

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = stringOr(viper.GetString("POSTHOG_ENDPOINT"), "https://eu.i.posthog.com")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func stringOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
