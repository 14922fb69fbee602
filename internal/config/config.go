// Package config provides configuration management for the edge-lab console.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	API       APIConfig       `mapstructure:"api" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Analytics AnalyticsConfig `mapstructure:"analytics" validate:"required"`
	Dashboard DashboardConfig `mapstructure:"dashboard" validate:"required"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// APIConfig represents the Edge Lab API connection configuration
type APIConfig struct {
	BaseURL        string  `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"gte=0"`
	RetryWaitMinMS int     `mapstructure:"retry_wait_min_ms" validate:"gte=0"`
	RetryWaitMaxMS int     `mapstructure:"retry_wait_max_ms" validate:"gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"gt=0"`
}

// AuthConfig represents login and session persistence configuration.
// Email/Password are only used for non-interactive login; the password
// normally arrives via environment expansion or the secrets overlay.
type AuthConfig struct {
	Email         string `mapstructure:"email" validate:"omitempty,email"`
	Password      string `mapstructure:"password"`
	TokenFile     string `mapstructure:"token_file"`
	SecretsRegion string `mapstructure:"secrets_region"`
	SecretsName   string `mapstructure:"secrets_name"`
}

// AnalyticsConfig tunes the snapshot poller and risk-of-ruin defaults
type AnalyticsConfig struct {
	PollMaxRetries      int     `mapstructure:"poll_max_retries" validate:"required,gt=0"`
	PollIntervalSeconds int     `mapstructure:"poll_interval_seconds" validate:"required,gt=0"`
	RuinThreshold       float64 `mapstructure:"ruin_threshold" validate:"gte=0,lte=1"`
	RuinSimulations     int     `mapstructure:"ruin_simulations" validate:"gte=0"`
	PositionFraction    float64 `mapstructure:"position_fraction" validate:"gte=0,lte=1"`
}

// DashboardConfig tunes the terminal dashboard
type DashboardConfig struct {
	RefreshSpec     string `mapstructure:"refresh_spec" validate:"required"`
	LabelCacheTTL   int    `mapstructure:"label_cache_ttl_seconds" validate:"required,gt=0"`
	LogScaleDefault bool   `mapstructure:"log_scale_default"`
}

// MetricsConfig represents the optional instrumentation endpoint
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// RequestTimeout returns the API request timeout as a duration
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// PollInterval returns the snapshot poll interval as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Analytics.PollIntervalSeconds) * time.Second
}

// MetricsAddr returns the listen address for the metrics endpoint
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.Metrics.Port)
}
