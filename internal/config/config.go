package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port     string
	LogLevel string

	// External makeup catalog API
	CatalogAPIURL  string
	CatalogTimeout time.Duration

	// Generative backend (empty API key disables it and routes every
	// description/answer through the deterministic fallbacks)
	GeminiAPIKey      string
	GeminiModel       string
	GeminiTemperature float32
	DescribeMaxTokens int
	ConsultMaxTokens  int

	// Session store; empty REDIS_URL keeps sessions in process memory
	RedisURL   string
	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CatalogAPIURL:  getEnv("CATALOG_API_URL", "http://makeup-api.herokuapp.com/api/v1/products.json"),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 5*time.Second),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTemperature: getEnvFloat32("GEMINI_TEMPERATURE", 0.7),
		DescribeMaxTokens: getEnvInt("DESCRIBE_MAX_TOKENS", 150),
		ConsultMaxTokens:  getEnvInt("CONSULT_MAX_TOKENS", 200),

		RedisURL:   getEnv("REDIS_URL", ""),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat32(key string, fallback float32) float32 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
