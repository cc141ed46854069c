// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ColorMeBooth/colorme-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
}

// WebhookConfig holds the reservation webhook credentials. Both values are
// server-held secrets and must never appear in a response body.
type WebhookConfig struct {
	// URL is the n8n reservations webhook endpoint.
	URL string `mapstructure:"URL"`
	// APIKey authenticates outbound calls to the webhook.
	APIKey string `mapstructure:"API_KEY"`
	// TimeoutSeconds bounds the outbound HTTP call.
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS"`
}

// ContentConfig points at the static event page catalog.
type ContentConfig struct {
	EventsFile string `mapstructure:"EVENTS_FILE"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER"`
	Webhook WebhookConfig `mapstructure:"WEBHOOK"`
	Content ContentConfig `mapstructure:"CONTENT"`
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// applies defaults, unmarshals into the Config struct, and validates it.
// Missing webhook credentials are a startup error so misconfiguration
// surfaces before the first request.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("WEBHOOK.TIMEOUT_SECONDS", 15)
	v.SetDefault("CONTENT.EVENTS_FILE", "content/events.yaml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"WEBHOOK.URL", "N8N_RESERVATIONS_WEBHOOK_URL"},
		{"WEBHOOK.API_KEY", "N8N_RESERVATIONS_API_KEY"},
		{"WEBHOOK.TIMEOUT_SECONDS", "WEBHOOK_TIMEOUT_SECONDS"},
		{"CONTENT.EVENTS_FILE", "EVENTS_FILE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"allowed_origins", cfg.Server.AllowedOrigins,
		"webhook_url_set", cfg.Webhook.URL != "",
		"webhook_api_key", logger.MaskSensitiveString(cfg.Webhook.APIKey, 2, 2),
		"webhook_timeout_seconds", cfg.Webhook.TimeoutSeconds,
	)

	return &cfg, nil
}

// validateConfig checks that required configuration values are present and
// well-formed.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if cfg.Webhook.URL == "" {
		return fmt.Errorf("N8N_RESERVATIONS_WEBHOOK_URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.Webhook.URL); err != nil {
		return fmt.Errorf("invalid webhook URL: %w", err)
	}
	if cfg.Webhook.APIKey == "" {
		return fmt.Errorf("N8N_RESERVATIONS_API_KEY is required")
	}
	if cfg.Webhook.TimeoutSeconds <= 0 {
		return fmt.Errorf("webhook timeout must be positive")
	}

	for _, origin := range cfg.Server.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if _, err := url.ParseRequestURI(origin); err != nil {
			return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
		}
	}

	return nil
}
