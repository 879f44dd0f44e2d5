package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Matching  MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds product catalog API configuration
type CatalogConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type string        `mapstructure:"type"` // "memory" is the only supported backend
	TTL  time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
	Burst int `mapstructure:"burst"`
}

// MatchingConfig holds configuration for the tagging/matching engine
type MatchingConfig struct {
	Threshold          float64 `mapstructure:"threshold"`
	EnableDebugLogging bool    `mapstructure:"debug"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrylens/")

	v.SetEnvPrefix("PANTRYLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("catalog.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("catalog.user_agent", "PantryLens/1.0")

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "720h") // 30 days

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("matching.threshold", 0.7)
	v.SetDefault("matching.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog base URL is required (set PANTRYLENS_CATALOG_BASE_URL)")
	}

	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.Matching.Threshold < 0 || config.Matching.Threshold > 1 {
		return fmt.Errorf("matching threshold must be in [0,1], got: %g", config.Matching.Threshold)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
