package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DataFile    string
	DatabaseURL string
	JWTSecret   string

	AdminUsername string
	AdminPassword string

	// CoerceInvalidPrices selects the forgiving catalog-edit behavior:
	// unparseable or negative prices become 0 instead of rejecting the write.
	CoerceInvalidPrices bool
}

func Load() *Config {
	return &Config{
		Port:                getEnv("PORT", "4000"),
		DataFile:            getEnv("DATA_FILE", "data/db.json"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		JWTSecret:           getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", "admin"),
		CoerceInvalidPrices: getEnvBool("COERCE_INVALID_PRICES", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
