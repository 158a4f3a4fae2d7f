package config

import (
	"fmt"
	"os"
)

// Config holds everything the API reads from the environment.
// godotenv loads a local .env first; real deployments set these directly.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ListenAddr   string
	GinMode      string
	SeedDemoData bool
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "rolecall"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

// DSN renders the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
