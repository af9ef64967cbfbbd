package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	// Question banks
	BankURL         string
	BankDir         string
	QuestionsPerDay int
	FetchTimeout    time.Duration

	// Storage
	DBPath string

	// Logging
	LogFile  string
	LogLevel string

	// Bank server
	ServeAddr string
}

// Load reads a .env file if one exists, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BankURL:         getEnvOrDefault("QUIZDAY_BANK_URL", ""),
		BankDir:         getEnvOrDefault("QUIZDAY_BANK_DIR", "."),
		QuestionsPerDay: getEnvAsIntOrDefault("QUIZDAY_QUESTIONS_PER_DAY", 5),
		FetchTimeout:    time.Duration(getEnvAsIntOrDefault("QUIZDAY_FETCH_TIMEOUT_SECONDS", 0)) * time.Second,
		DBPath:          getEnvOrDefault("QUIZDAY_DB", ""),
		LogFile:         getEnvOrDefault("QUIZDAY_LOG_FILE", ""),
		LogLevel:        getEnvOrDefault("QUIZDAY_LOG_LEVEL", "info"),
		ServeAddr:       getEnvOrDefault("QUIZDAY_SERVE_ADDR", ":8080"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
