package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string

	// Restaurant locale, prefilled into the checkout form.
	City  string
	State string

	// Simulated settlement delay between a validated submit and the
	// confirmation handoff.
	SettleDelay time.Duration

	LogLevel string
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "littlelemon.db"),
		City:        getEnv("RESTAURANT_CITY", "Chicago"),
		State:       getEnv("RESTAURANT_STATE", "Illinois"),
		SettleDelay: time.Duration(getEnvInt("SETTLE_DELAY_MS", 1500)) * time.Millisecond,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
