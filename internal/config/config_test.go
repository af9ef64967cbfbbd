package config

import (
	"testing"
	"time"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		value      string
		defaultVal string
		want       string
	}{
		{"returns env value", "QUIZDAY_TEST_A", "set", "fallback", "set"},
		{"returns default when empty", "QUIZDAY_TEST_B", "", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if got := getEnvOrDefault(tt.key, tt.defaultVal); got != tt.want {
				t.Errorf("getEnvOrDefault() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		defaultVal int
		want       int
	}{
		{"valid int", "7", 5, 7},
		{"empty", "", 5, 5},
		{"not a number", "seven", 5, 5},
		{"negative", "-3", 5, 5},
		{"zero", "0", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("QUIZDAY_TEST_INT", tt.value)
			if got := getEnvAsIntOrDefault("QUIZDAY_TEST_INT", tt.defaultVal); got != tt.want {
				t.Errorf("getEnvAsIntOrDefault() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("QUIZDAY_BANK_URL", "http://localhost:9000")
	t.Setenv("QUIZDAY_QUESTIONS_PER_DAY", "10")
	t.Setenv("QUIZDAY_FETCH_TIMEOUT_SECONDS", "15")
	t.Setenv("QUIZDAY_BANK_DIR", "")
	t.Setenv("QUIZDAY_SERVE_ADDR", "")

	cfg := Load()

	if cfg.BankURL != "http://localhost:9000" {
		t.Errorf("BankURL = %q", cfg.BankURL)
	}
	if cfg.QuestionsPerDay != 10 {
		t.Errorf("QuestionsPerDay = %d, want 10", cfg.QuestionsPerDay)
	}
	if cfg.FetchTimeout != 15*time.Second {
		t.Errorf("FetchTimeout = %v, want 15s", cfg.FetchTimeout)
	}
	if cfg.BankDir != "." {
		t.Errorf("BankDir = %q, want .", cfg.BankDir)
	}
	if cfg.ServeAddr != ":8080" {
		t.Errorf("ServeAddr = %q, want :8080", cfg.ServeAddr)
	}
}
