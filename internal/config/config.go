package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Finnhub  FinnhubConfig
	Security SecurityConfig
	Refresh  RefreshConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// FinnhubConfig holds configuration for the Finnhub market-data API.
// APIKey may be empty; the affected endpoints then return an explicit
// error response instead of crashing. DemoFallback enables the static
// demo quote for the single whitelisted Nordic symbol when Yahoo fails.
type FinnhubConfig struct {
	APIKey       string
	BaseURL      string
	DemoFallback bool
}

// SecurityConfig holds the fernet key used to encrypt stored settings.
type SecurityConfig struct {
	SecretKey string
}

// RefreshConfig holds the background quote refresh schedule.
type RefreshConfig struct {
	Enabled  bool
	Schedule string // cron spec, e.g. "@every 5m"
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/insider_pocket.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Finnhub: FinnhubConfig{
			APIKey:       getEnv("FINNHUB_API_KEY", ""),
			BaseURL:      getEnv("FINNHUB_BASE_URL", "https://finnhub.io/api/v1"),
			DemoFallback: getEnv("DEMO_FALLBACK", "true") == "true",
		},
		Security: SecurityConfig{
			SecretKey: getEnv("SECRET_KEY", ""),
		},
		Refresh: RefreshConfig{
			Enabled:  getEnv("REFRESH_ENABLED", "true") == "true",
			Schedule: getEnv("REFRESH_SCHEDULE", "@every 5m"),
		},
	}

	if origins := getEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		config.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
