package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	ServerPort      string
	StaticFilesPath string
	TemplatesPath   string

	GeminiAPIKey    string
	SessionSecret   string
	SessionDuration time.Duration

	// Requests per minute allowed per client on the AI gateway endpoints.
	GatewayRateLimit int
}

// Load reads configuration from the environment, with .env support for
// local development. GEMINI_API_KEY and SESSION_SECRET are required.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:       getEnv("PORT", "8080"),
		StaticFilesPath:  getEnv("STATIC_PATH", "./static"),
		TemplatesPath:    getEnv("TEMPLATES_PATH", "./internal/templates"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		SessionDuration:  24 * time.Hour,
		GatewayRateLimit: getEnvInt("GATEWAY_RATE_LIMIT", 30),
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}
	return cfg, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}
