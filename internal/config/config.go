package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port          int           `envconfig:"PORT" default:"8080"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`
	Version       string        `envconfig:"VERSION" default:"dev"`
	Provider      string        `envconfig:"PROVIDER" default:"gemini"`
	GeminiAPIKey  string        `envconfig:"GEMINI_API_KEY"`
	APIKey        string        `envconfig:"API_KEY"`
	GeminiBaseURL string        `envconfig:"GEMINI_BASE_URL"`
	Model         string        `envconfig:"MODEL" default:"gemini-3-flash-preview"`
	Timeout       time.Duration `envconfig:"GENERATE_TIMEOUT" default:"60s"`
	DatabaseURL   string        `envconfig:"DATABASE_URL"`
	HistoryLimit  int           `envconfig:"HISTORY_LIMIT" default:"500"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1m"`
	RatePerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	RateBurst     int           `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

// Load reads configuration from environment variables into a Config struct
// and validates it.
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads environment variables without validating them. Commands that
// only touch the history database use it so no provider key is needed.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GeminiKey returns GEMINI_API_KEY, falling back to API_KEY.
func (c *Config) GeminiKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.APIKey
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error, got %q", c.LogLevel))
	}
	if c.Provider == "" {
		errs = append(errs, errors.New("PROVIDER must not be empty"))
	}
	if c.Provider == "gemini" && c.GeminiKey() == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY (or API_KEY) is required when PROVIDER is gemini"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("GENERATE_TIMEOUT must be positive, got %s", c.Timeout))
	}
	if c.HistoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("SWEEP_INTERVAL must be positive, got %s", c.SweepInterval))
	}
	if c.RatePerMinute <= 0 || c.RateBurst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive"))
	}
	return errors.Join(errs...)
}
