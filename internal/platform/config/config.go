package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/Alish-p/transport-rewrite-sub001/internal/apperrors"
	"github.com/Alish-p/transport-rewrite-sub001/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultPort            = "8080"
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultGSTRate         = "9"
	defaultCustomerTaxRate = "18"
	defaultRateLimit       = "100-M"
	defaultCORSOrigins     = "http://localhost:3000"
)

// Config holds application configuration.
type Config struct {
	Port               string
	IsProduction       bool
	JWTSecret          string
	JWTIssuer          string
	RateLimit          string // Formatted as <limit>-<period>, e.g. "100-M"
	CORSAllowedOrigins []string

	TaxRules domain.TaxRuleConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("DEFAULT_GST_RATE", defaultGSTRate)
	v.SetDefault("HOME_STATE", "")
	v.SetDefault("CUSTOMER_TAX_RATE", defaultCustomerTaxRate)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTIssuer:    v.GetString("JWT_ISSUER"),
		RateLimit:    v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("%w: JWT_SECRET must be set in production", apperrors.ErrInvalidConfig)
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	gstRate, err := parseRate("DEFAULT_GST_RATE", v.GetString("DEFAULT_GST_RATE"))
	if err != nil {
		return nil, err
	}
	customerRate, err := parseRate("CUSTOMER_TAX_RATE", v.GetString("CUSTOMER_TAX_RATE"))
	if err != nil {
		return nil, err
	}

	cfg.TaxRules = domain.TaxRuleConfig{
		DefaultGSTRate:  gstRate,
		HomeState:       strings.TrimSpace(v.GetString("HOME_STATE")),
		CustomerTaxRate: customerRate,
	}
	if cfg.TaxRules.HomeState == "" {
		log.Println("Warning: HOME_STATE not set. GST-registered transporters with a home state will be billed IGST.")
	}
	if err := cfg.TaxRules.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseRate(key, raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q is not a number", apperrors.ErrInvalidConfig, key, raw)
	}
	return rate, nil
}
