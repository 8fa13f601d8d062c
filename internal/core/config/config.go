package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	ServiceName    = "cervejaria"
	ServiceVersion = "1.0.0"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

const (
	DecrementPolicyLegacy = "legacy"
	DecrementPolicyStrict = "strict"
)

const (
	defaultAppHost         = ":8080"
	defaultMigrationsDir   = "./migrations"
	defaultRateLimit       = 100
	defaultRateLimitWindow = time.Minute
)

type Config struct {
	DatabaseURL     string
	AppHost         string
	StoreDriver     string
	MigrationsDir   string
	AutoMigrate     bool
	DecrementPolicy string
	RateLimit       int
	RateLimitWindow time.Duration
	RequestTimeout  time.Duration
	OtelEndpoint    string
	Version         string
}

// Load reads the configuration from the environment. The .env file, if any,
// is expected to be loaded by the caller beforehand.
func Load() (*Config, error) {
	config := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		AppHost:         getEnv("APP_HOST", defaultAppHost),
		StoreDriver:     getEnv("STORE_DRIVER", StoreDriverPostgres),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", defaultMigrationsDir),
		DecrementPolicy: getEnv("STOCK_DECREMENT_POLICY", DecrementPolicyLegacy),
		OtelEndpoint:    os.Getenv("OTEL_ENDPOINT"),
		Version:         getEnv("APP_VERSION", ServiceVersion),
	}

	var err error
	if config.AutoMigrate, err = getBool("AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	if config.RateLimit, err = getInt("RATE_LIMIT_REQUESTS", defaultRateLimit); err != nil {
		return nil, err
	}
	if config.RateLimitWindow, err = getDuration("RATE_LIMIT_WINDOW", defaultRateLimitWindow); err != nil {
		return nil, err
	}
	if config.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 0); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for the %s store", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("STORE_DRIVER must be one of %s, %s, got %q", StoreDriverPostgres, StoreDriverMemory, c.StoreDriver)
	}

	switch c.DecrementPolicy {
	case DecrementPolicyLegacy, DecrementPolicyStrict:
	default:
		return fmt.Errorf("STOCK_DECREMENT_POLICY must be one of %s, %s, got %q", DecrementPolicyLegacy, DecrementPolicyStrict, c.DecrementPolicy)
	}

	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must not be negative, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must not be negative, got %s", c.RequestTimeout)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return parsed, nil
}
