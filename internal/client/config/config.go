// Package config loads runtime settings for the registry CLI from the
// environment. Both values are mandatory; the process refuses to start
// without them.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the registry CLI.
type Config struct {
	// EndpointAddr is host:port of the backend gRPC endpoint.
	EndpointAddr string
	// APIKey is the public API key sent with every request.
	APIKey string
}

const (
	envEndpoint = "VAXREG_ENDPOINT"
	envAPIKey   = "VAXREG_API_KEY"
)

// LoadConfig reads the configuration from the environment, consulting a
// .env file first if one exists. Missing values are a hard error: the
// client cannot operate without an endpoint and an API key.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	for _, v := range []struct {
		env    string
		target *string
	}{
		{envEndpoint, &cfg.EndpointAddr},
		{envAPIKey, &cfg.APIKey},
	} {
		val, ok := os.LookupEnv(v.env)
		if !ok || val == "" {
			return nil, fmt.Errorf("required environment variable %s is not set", v.env)
		}
		*v.target = val
	}

	return cfg, nil
}
