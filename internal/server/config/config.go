// Package config loads server settings from the process environment.
// Required values abort startup when absent; there is no flag surface.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the registry server.
type Config struct {
	// EndpointAddrGRPC is the bind address for the public gRPC endpoint.
	EndpointAddrGRPC string
	// DatabaseDSN is the PostgreSQL DSN (pgx).
	DatabaseDSN string
	// SecretKey is the HMAC secret for signing JWTs (HS256).
	SecretKey string
	// APIKey is the public API key every client must present.
	APIKey string

	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
}

const (
	envDatabaseDSN     = "VAXREG_DATABASE_DSN"
	envSecretKey       = "VAXREG_SECRET_KEY"
	envAPIKey          = "VAXREG_API_KEY"
	envGRPCAddr        = "VAXREG_GRPC_ADDR"
	envAccessTokenTTL  = "VAXREG_ACCESS_TOKEN_TTL"
	envRefreshTokenTTL = "VAXREG_REFRESH_TOKEN_TTL"
)

// LoadConfig reads the environment (optionally seeded from a .env file) and
// returns the server configuration. Missing or empty required variables are
// an error: the caller is expected to abort initialization.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; the real environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		EndpointAddrGRPC:             ":50051",
		AccessTokenValidityDuration:  15 * time.Minute,
		RefreshTokenValidityDuration: 720 * time.Hour,
	}

	for _, req := range []struct {
		key string
		dst *string
	}{
		{envDatabaseDSN, &cfg.DatabaseDSN},
		{envSecretKey, &cfg.SecretKey},
		{envAPIKey, &cfg.APIKey},
	} {
		v := os.Getenv(req.key)
		if v == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", req.key)
		}
		*req.dst = v
	}

	if v := os.Getenv(envGRPCAddr); v != "" {
		cfg.EndpointAddrGRPC = v
	}
	if v := os.Getenv(envAccessTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envAccessTokenTTL, err)
		}
		cfg.AccessTokenValidityDuration = d
	}
	if v := os.Getenv(envRefreshTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", envRefreshTokenTTL, err)
		}
		cfg.RefreshTokenValidityDuration = d
	}

	return cfg, nil
}
