package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Groq AI
	GroqAPIKey  string
	GroqBaseURL string
	GroqTimeout time.Duration

	// Sessions
	SessionTTL time.Duration

	// Rate limiting (JSON chat endpoint)
	ChatRequestsPerMin int

	// Logging
	LogFile string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("ENV", "development"),
		// A missing key is deliberately not fatal: every inference call
		// fails with a credential error surfaced to the user instead.
		GroqAPIKey:         os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:        getEnvOrDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqTimeout:        time.Duration(getEnvAsIntOrDefault("GROQ_TIMEOUT_SECONDS", 120)) * time.Second,
		SessionTTL:         time.Duration(getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 30)) * time.Minute,
		ChatRequestsPerMin: getEnvAsIntOrDefault("CHAT_RATE_LIMIT_PER_MINUTE", 20),
		LogFile:            getEnvOrDefault("LOG_FILE", ""),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
