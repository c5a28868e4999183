package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setComposerEndpoint(t *testing.T) {
	t.Helper()
	os.Setenv("COMPOSER_ENDPOINT", "http://composer.internal:4000")
	t.Cleanup(func() { os.Unsetenv("COMPOSER_ENDPOINT") })
}

func TestLoad_Defaults(t *testing.T) {
	setComposerEndpoint(t)

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3001, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "repliq", cfg.Database.DBName)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, "http://composer.internal:4000", cfg.Composer.Endpoint)
}

func TestLoad_MissingComposerEndpoint(t *testing.T) {
	os.Unsetenv("COMPOSER_ENDPOINT")

	_, err := LoadWithOptions(LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMPOSER_ENDPOINT")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	setComposerEndpoint(t)
	os.Setenv("PORT", "8085")
	os.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/repliq?sslmode=disable")
	os.Setenv("ENVIRONMENT", "development")
	os.Setenv("LOG_LEVEL", "debug")
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DATABASE_URL")
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.Port)
	assert.Equal(t, "postgres://user:pass@db:5432/repliq?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_TrimsComposerEndpointSlash(t *testing.T) {
	os.Setenv("COMPOSER_ENDPOINT", "http://composer.internal:4000/")
	t.Cleanup(func() { os.Unsetenv("COMPOSER_ENDPOINT") })

	cfg, err := LoadWithOptions(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "http://composer.internal:4000", cfg.Composer.Endpoint)
}
