package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "edge-lab", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 20, cfg.Analytics.PollMaxRetries)
	assert.NotEmpty(t, cfg.Auth.TokenFile)

	require.NoError(t, Validate(cfg))
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_EDGE_LAB_URL", "https://lab.example.com")
	path := writeConfig(t, `
app:
  name: edge-lab
  environment: staging
  log_level: debug
api:
  base_url: ${TEST_EDGE_LAB_URL}
  timeout_seconds: 10
  max_retries: 2
  rate_limit: 5
analytics:
  poll_max_retries: 10
  poll_interval_seconds: 2
dashboard:
  refresh_spec: "@every 1m"
  label_cache_ttl_seconds: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://lab.example.com", cfg.API.BaseURL)
	assert.Equal(t, "staging", cfg.App.Environment)
}

func TestValidateRejectsBadEnvironment(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.App.Environment = "qa"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "development, staging, production")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.App.LogLevel = "verbose"
	require.Error(t, Validate(cfg))
}

func TestValidateCrossFieldSecretsPairing(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Auth.SecretsName = "edge-lab/ci"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secrets_region")

	cfg.Auth.SecretsRegion = "eu-west-1"
	require.NoError(t, Validate(cfg))
}

func TestValidateRetryWaitOrdering(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.API.RetryWaitMinMS = 10000
	cfg.API.RetryWaitMaxMS = 100
	require.Error(t, Validate(cfg))
}
