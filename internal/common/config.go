package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Ledger  LedgerConfig
	PDFText PDFTextConfig
	Profile ProfileConfig
}

// LedgerConfig holds ledger-database configuration
type LedgerConfig struct {
	DSN         string
	DialTimeout time.Duration
}

// PDFTextConfig holds document-text-extraction configuration
type PDFTextConfig struct {
	Pdftotext string
	Timeout   time.Duration
	MaxBytes  int
}

// ProfileConfig holds the invoice-profile source
type ProfileConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Ledger: LedgerConfig{
			DSN:         getEnv("LEDGER_DSN", "file:invoice-archiver.db"),
			DialTimeout: getEnvAsDuration("LEDGER_DIAL_TIMEOUT", 3*time.Second),
		},
		PDFText: PDFTextConfig{
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Timeout:   getEnvAsDuration("PDFTOTEXT_TIMEOUT", 30*time.Second),
			MaxBytes:  getEnvAsInt("PDFTEXT_MAX_BYTES", 1<<20),
		},
		Profile: ProfileConfig{
			Path: getEnv("PROFILE_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Ledger.DSN == "" {
		return NewAppError("CONFIG_ERROR", "LEDGER_DSN is required", ErrInvalidInput)
	}
	if c.PDFText.Pdftotext == "" {
		return NewAppError("CONFIG_ERROR", "PDFTOTEXT_BIN is required", ErrInvalidInput)
	}
	return nil
}
