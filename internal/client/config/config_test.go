package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("VAXREG_ENDPOINT", "127.0.0.1:50051")
	t.Setenv("VAXREG_API_KEY", "public-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:50051", cfg.EndpointAddr)
	assert.Equal(t, "public-key", cfg.APIKey)
}

func TestLoadConfigMissingEndpoint(t *testing.T) {
	t.Setenv("VAXREG_ENDPOINT", "")
	t.Setenv("VAXREG_API_KEY", "public-key")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VAXREG_ENDPOINT")
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("VAXREG_ENDPOINT", "127.0.0.1:50051")
	t.Setenv("VAXREG_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VAXREG_API_KEY")
}
