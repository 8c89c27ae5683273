package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env          string        `envconfig:"APP_ENV" default:"development"`
	GatewayURL   string        `envconfig:"GATEWAY_URL" default:"http://localhost:8000"`
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	Autocomplete AutocompleteConfig
	Connection   ConnectionConfig
	DevGateway   DevGatewayConfig
}

// autocomplete defaults, overridable per controller
type AutocompleteConfig struct {
	MinLength      int           `envconfig:"AUTOCOMPLETE_MIN_LENGTH" default:"1"`
	Debounce       time.Duration `envconfig:"AUTOCOMPLETE_DEBOUNCE" default:"250ms"`
	MaxSuggestions int           `envconfig:"AUTOCOMPLETE_MAX_SUGGESTIONS" default:"10"`
}

// connection sync configuration
type ConnectionConfig struct {
	StorageKey         string        `envconfig:"CONNECTION_STORAGE_KEY" default:"recruiter_last_connection"`
	RevalidateInterval time.Duration `envconfig:"CONNECTION_REVALIDATE_INTERVAL" default:"1h"`
}

// dev gateway configuration
type DevGatewayConfig struct {
	Port           int           `envconfig:"DEVGATEWAY_PORT" default:"8000"`
	JWTSecret      string        `envconfig:"DEVGATEWAY_JWT_SECRET" default:"dev-only-secret-do-not-use-in-prod"`
	JWTTTL         time.Duration `envconfig:"DEVGATEWAY_JWT_TTL" default:"24h"`
	Heartbeat      time.Duration `envconfig:"DEVGATEWAY_SSE_HEARTBEAT" default:"15s"`
	TrustedOrigins []string      `envconfig:"DEVGATEWAY_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if !strings.HasPrefix(c.GatewayURL, "http://") && !strings.HasPrefix(c.GatewayURL, "https://") {
		return fmt.Errorf("invalid GATEWAY_URL: %s", c.GatewayURL)
	}
	if c.Autocomplete.MinLength < 1 {
		return fmt.Errorf("AUTOCOMPLETE_MIN_LENGTH must be at least 1")
	}
	if c.Autocomplete.Debounce <= 0 {
		return fmt.Errorf("AUTOCOMPLETE_DEBOUNCE must be positive")
	}
	if c.Autocomplete.MaxSuggestions < 1 {
		return fmt.Errorf("AUTOCOMPLETE_MAX_SUGGESTIONS must be at least 1")
	}
	if c.Connection.StorageKey == "" {
		return fmt.Errorf("CONNECTION_STORAGE_KEY must not be empty")
	}
	if c.Connection.RevalidateInterval < time.Minute {
		return fmt.Errorf("CONNECTION_REVALIDATE_INTERVAL must be at least 1m")
	}
	if c.DevGateway.Port < 1 || c.DevGateway.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.DevGateway.Port)
	}
	if len(c.DevGateway.JWTSecret) < 16 {
		return fmt.Errorf("DEVGATEWAY_JWT_SECRET must be at least 16 characters")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) DevGatewayAddr() string {
	return fmt.Sprintf(":%d", c.DevGateway.Port)
}

// TrustedOrigins returns the CORS origin list with blanks removed.
func (c *Config) TrustedOrigins() []string {
	origins := make([]string, 0, len(c.DevGateway.TrustedOrigins))
	for _, origin := range c.DevGateway.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, GatewayURL=%s, Autocomplete.MinLength=%d, "+
		"Autocomplete.Debounce=%s, Autocomplete.MaxSuggestions=%d, "+
		"Connection.RevalidateInterval=%s, DevGateway.Port=%d}",
		c.Env, c.GatewayURL, c.Autocomplete.MinLength,
		c.Autocomplete.Debounce, c.Autocomplete.MaxSuggestions,
		c.Connection.RevalidateInterval, c.DevGateway.Port)
}
