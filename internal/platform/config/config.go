package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InactivePolicy says, per operation, whether deactivated payables and
// receivables still count. Alerts and upcoming-obligation figures always
// exclude them.
type InactivePolicy struct {
	CashFlow bool
	Summary  bool
	DRE      bool
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // ulule/limiter formatted rate, e.g. "100-M"
	MaxRangeDays       int    // longest explicit startDate..endDate window, inclusive
	CORSAllowedOrigins []string
	PosthogAPIKey      string

	IncludeInactive InactivePolicy

	// BusinessTimezone decides which calendar day "today" is.
	BusinessTimezone *time.Location
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultTimezone  = "America/Sao_Paulo"

	// DefaultMaxRangeDays is two years plus a leap day.
	DefaultMaxRangeDays = 731
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()
	return loadFrom(viper.New())
}

func loadFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "cashflow-ledger")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("MAX_RANGE_DAYS", DefaultMaxRangeDays)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("CASHFLOW_INCLUDE_INACTIVE", false)
	v.SetDefault("SUMMARY_INCLUDE_INACTIVE", false)
	v.SetDefault("DRE_INCLUDE_INACTIVE", true)
	v.SetDefault("BUSINESS_TIMEZONE", defaultTimezone)

	// Environment variables override defaults and .env values.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.MaxRangeDays = v.GetInt("MAX_RANGE_DAYS")
	if cfg.MaxRangeDays <= 0 {
		log.Printf("Warning: invalid MAX_RANGE_DAYS (%d). Defaulting to %d.\n", cfg.MaxRangeDays, DefaultMaxRangeDays)
		cfg.MaxRangeDays = DefaultMaxRangeDays
	}
	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IncludeInactive = InactivePolicy{
		CashFlow: v.GetBool("CASHFLOW_INCLUDE_INACTIVE"),
		Summary:  v.GetBool("SUMMARY_INCLUDE_INACTIVE"),
		DRE:      v.GetBool("DRE_INCLUDE_INACTIVE"),
	}

	tzName := v.GetString("BUSINESS_TIMEZONE")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Printf("Warning: invalid BUSINESS_TIMEZONE ('%s'). Defaulting to UTC.\n", tzName)
		loc = time.UTC
	}
	cfg.BusinessTimezone = loc

	return cfg, nil
}
