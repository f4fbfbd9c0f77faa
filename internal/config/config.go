package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the runtime settings shared by the server and dbtool.
type Config struct {
	Port              string
	DBDriver          string
	DBPath            string
	DatabaseURL       string
	SeedPath          string
	SeedOnStart       bool
	RedisURL          string
	InventoryCacheTTL time.Duration
	LogLevel          string
	LogFormat         string
}

// LoadDotEnv loads a .env file when one is present. A missing file is not an error.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	seedOnStart, err := strconv.ParseBool(Get("SEED_ON_START", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: SEED_ON_START: %w", err)
	}

	ttl, err := time.ParseDuration(Get("INVENTORY_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("load config: INVENTORY_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return Config{}, errors.New("load config: INVENTORY_CACHE_TTL must be positive")
	}

	cfg := Config{
		Port:              Get("PORT", "8080"),
		DBDriver:          strings.ToLower(Get("DB_DRIVER", DriverSqlite)),
		DBPath:            Get("DB_PATH", "data/app.db"),
		DatabaseURL:       Get("DATABASE_URL", ""),
		SeedPath:          Get("SEED_PATH", "data/seeds/inventory.json"),
		SeedOnStart:       seedOnStart,
		RedisURL:          Get("REDIS_URL", ""),
		InventoryCacheTTL: ttl,
		LogLevel:          strings.ToLower(Get("LOG_LEVEL", "info")),
		LogFormat:         strings.ToLower(Get("LOG_FORMAT", "text")),
	}

	switch cfg.DBDriver {
	case DriverSqlite:
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("load config: DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}
