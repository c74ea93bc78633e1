package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the non-database runtime settings.
type Config struct {
	ListenAddr string
	JWTSecret  string
	JWTExpiry  time.Duration
}

// Load reads .env (if present) and assembles the config with defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "1h"))
	if err != nil {
		log.Printf("invalid JWT_EXPIRY, falling back to 1h: %v", err)
		expiry = time.Hour
	}

	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		JWTExpiry:  expiry,
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
