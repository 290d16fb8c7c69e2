package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Scoring   ScoringConfig
	Quiz      QuizConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	TrustedProxies []string `mapstructure:"trusted_proxies"` // empty: client IP is the socket peer
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// ScoringConfig selects the soft scoring policy
type ScoringConfig struct {
	Policy string `mapstructure:"policy"` // "accumulate" or "disqualify"
	MaxGap int    `mapstructure:"max_gap"`
	Sort   string `mapstructure:"sort"` // "asc" or "desc"
}

// QuizConfig holds narrowing quiz configuration
type QuizConfig struct {
	NormalizeInput bool `mapstructure:"normalize_input"` // fold case and whitespace of typed labels
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/dishdecider/")

	// Environment variable settings
	v.SetEnvPrefix("DISHDECIDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
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

// loadEnvFile loads ./.env if present. Variables already set win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return gotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.trusted_proxies", []string{})

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)

	// Scoring defaults
	v.SetDefault("scoring.policy", "accumulate")
	v.SetDefault("scoring.max_gap", 1)
	v.SetDefault("scoring.sort", "asc")

	// Quiz defaults
	v.SetDefault("quiz.normalize_input", true)

	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	for _, proxy := range config.Server.TrustedProxies {
		if net.ParseIP(proxy) == nil {
			if _, _, err := net.ParseCIDR(proxy); err != nil {
				return fmt.Errorf("trusted proxy must be an IP or CIDR, got: %s", proxy)
			}
		}
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	switch config.Scoring.Policy {
	case "accumulate", "disqualify":
	default:
		return fmt.Errorf("scoring policy must be 'accumulate' or 'disqualify', got: %s", config.Scoring.Policy)
	}

	switch config.Scoring.Sort {
	case "asc", "desc":
	default:
		return fmt.Errorf("scoring sort must be 'asc' or 'desc', got: %s", config.Scoring.Sort)
	}

	if config.Scoring.MaxGap < 0 {
		return fmt.Errorf("scoring max gap must not be negative, got: %d", config.Scoring.MaxGap)
	}

	return nil
}
