package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://localhost:5432/wordmemo",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:      strings.Repeat("s", 32),
			JWTIssuer:      "wordmemo",
			AccessTokenTTL: 168 * time.Hour,
			BcryptCost:     10,
		},
		Enrichment: EnrichmentConfig{
			BaseURL: "https://api.deepseek.com/v1/chat/completions",
			Model:   "deepseek-chat",
			Timeout: 15 * time.Second,
		},
		PublicLookup: PublicLookupConfig{
			IdentityUsername: "public",
			IdentityEmail:    "public@wordmemo.local",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()
	require.NoError(t, validConfig().Validate())
}

func TestValidate_ShortJWTSecret(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_BcryptCostOutOfRange(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Auth.BcryptCost = 99

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bcrypt_cost")
}

func TestValidate_NonPositiveEnrichmentTimeout(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Enrichment.Timeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enrichment.timeout")
}

func TestValidate_EmptyPublicIdentity(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.PublicLookup.IdentityUsername = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identity_username")
}

func TestValidate_MinConnsAboveMax(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	cfg.Database.MinConns = 50

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_conns")
}

func TestEnrichmentEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, EnrichmentConfig{}.EnrichmentEnabled())
	assert.True(t, EnrichmentConfig{APIKey: "sk-test"}.EnrichmentEnabled())
}
