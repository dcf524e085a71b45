package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultTaxRate = 0.08
	defaultJWTTTL  = 24 * time.Hour
	defaultAddr    = ":8080"
)

type Config struct {
	DatabaseURL string
	ListenAddr  string
	JWTSecret   string
	JWTTTL      time.Duration

	// TaxRate is applied to every booking subtotal.
	TaxRate float64
}

// Load reads configuration from the environment, with an optional .env file
// for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		ListenAddr:  envOr("LISTEN_ADDR", defaultAddr),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      defaultJWTTTL,
		TaxRate:     defaultTaxRate,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	if v := os.Getenv("JWT_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse JWT_TTL: %w", err)
		}
		cfg.JWTTTL = ttl
	}

	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("TAX_RATE must be a non-negative number, got %q", v)
		}
		cfg.TaxRate = rate
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
