// Package config provides configuration management for the edge-lab console.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the configuration (${VAR} syntax)
	expanded := os.ExpandEnv(string(data))

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	v.SetEnvPrefix("EDGE_LAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	applyDerivedDefaults(cfg)
	return cfg, nil
}

// LoadWithDefaults loads configuration with default values for optional
// fields; a missing config file is not an error.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = "config/config.yaml"
	}

	v.SetConfigType("yaml")
	v.SetEnvPrefix("EDGE_LAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "edge-lab")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.retry_wait_min_ms", 100)
	v.SetDefault("api.retry_wait_max_ms", 5000)
	v.SetDefault("api.rate_limit", 10.0)
	v.SetDefault("analytics.poll_max_retries", 20)
	v.SetDefault("analytics.poll_interval_seconds", 3)
	v.SetDefault("analytics.ruin_threshold", 0.7)
	v.SetDefault("analytics.ruin_simulations", 5000)
	v.SetDefault("analytics.position_fraction", 0.02)
	v.SetDefault("dashboard.refresh_spec", "@every 30s")
	v.SetDefault("dashboard.label_cache_ttl_seconds", 300)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9180)
	v.SetDefault("metrics.path", "/metrics")

	if data, err := os.ReadFile(configPath); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := v.ReadConfig(bytes.NewBuffer([]byte(expanded))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// If file doesn't exist, continue with defaults and environment variables

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	applyDerivedDefaults(cfg)
	return cfg, nil
}

// applyDerivedDefaults fills values that depend on the environment, such
// as the persisted token location under the user config dir.
func applyDerivedDefaults(cfg *Config) {
	if cfg.Auth.TokenFile == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Auth.TokenFile = filepath.Join(dir, "edge-lab", "token")
		} else {
			cfg.Auth.TokenFile = filepath.Join(".", ".edge-lab-token")
		}
	}
}
