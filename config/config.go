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
	Catalogue CatalogueConfig
	Matching  MatchingConfig
	Query     QueryConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogueConfig describes where the static catalogue is loaded from
type CatalogueConfig struct {
	Source      string        `mapstructure:"source"` // "file" or "postgres"
	Path        string        `mapstructure:"path"`
	DatabaseURL string        `mapstructure:"database_url"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

// MatchingConfig holds product matching and grouping configuration
type MatchingConfig struct {
	MinSharedKeywords  int    `mapstructure:"min_shared_keywords"`
	RequireKeyword     bool   `mapstructure:"require_keyword"`
	Representative     string `mapstructure:"representative"` // "first" or "smallest-name"
	EnableDebugLogging bool   `mapstructure:"enable_debug_logging"`
}

// QueryConfig holds search and browse configuration
type QueryConfig struct {
	PageSize        int `mapstructure:"page_size"`
	SuggestionLimit int `mapstructure:"suggestion_limit"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricecheck/")

	// Environment variable settings
	v.SetEnvPrefix("PRICECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
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
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Catalogue defaults
	v.SetDefault("catalogue.source", "file")
	v.SetDefault("catalogue.path", "./data/products.json")
	v.SetDefault("catalogue.database_url", "")
	v.SetDefault("catalogue.load_timeout", "30s")

	// Matching defaults
	v.SetDefault("matching.min_shared_keywords", 3)
	v.SetDefault("matching.require_keyword", false)
	v.SetDefault("matching.representative", "first")
	v.SetDefault("matching.enable_debug_logging", false)

	// Query defaults
	v.SetDefault("query.page_size", 12)
	v.SetDefault("query.suggestion_limit", 20)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Catalogue.Source {
	case "file":
		if config.Catalogue.Path == "" {
			return fmt.Errorf("catalogue path is required when source is 'file' (set PRICECHECK_CATALOGUE_PATH)")
		}
	case "postgres":
		if config.Catalogue.DatabaseURL == "" {
			return fmt.Errorf("database URL is required when source is 'postgres' (set PRICECHECK_CATALOGUE_DATABASE_URL)")
		}
	default:
		return fmt.Errorf("catalogue source must be 'file' or 'postgres', got: %s", config.Catalogue.Source)
	}

	if config.Catalogue.LoadTimeout <= 0 {
		return fmt.Errorf("catalogue load timeout must be positive, got: %s", config.Catalogue.LoadTimeout)
	}

	if config.Matching.MinSharedKeywords <= 0 {
		return fmt.Errorf("matching min_shared_keywords must be positive, got: %d", config.Matching.MinSharedKeywords)
	}

	if config.Matching.Representative != "first" && config.Matching.Representative != "smallest-name" {
		return fmt.Errorf("matching representative must be 'first' or 'smallest-name', got: %s", config.Matching.Representative)
	}

	if config.Query.PageSize <= 0 {
		return fmt.Errorf("query page size must be positive, got: %d", config.Query.PageSize)
	}

	if config.RateLimit.PerIP <= 0 || config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit per_ip and burst must be positive, got: %d/%d", config.RateLimit.PerIP, config.RateLimit.Burst)
	}

	return nil
}
