package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	StorageDriverJSON   = "json"
	StorageDriverSQLite = "sqlite"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Storage
	StorageDriver string
	DataDir       string
	DatabasePath  string

	// Bootstrap admin account. The defaults are insecure and exist only so
	// a fresh deployment is reachable; rotate the password immediately.
	AdminUsername string
	AdminPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvInt("JWT_EXPIRATION_HOURS", 24),
		StorageDriver:      getEnv("STORAGE_DRIVER", StorageDriverJSON),
		DataDir:            getEnv("DATA_DIR", "./data"),
		DatabasePath:       getEnv("DATABASE_PATH", "./keya.db"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "password"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	switch cfg.StorageDriver {
	case StorageDriverJSON, StorageDriverSQLite:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
