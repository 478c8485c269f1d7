package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Extract ExtractConfig
	Output  OutputConfig
	Store   StoreConfig
}

// ExtractConfig bounds how much of each document is scanned.
type ExtractConfig struct {
	Pdftotext    string // binary name or absolute path; if empty -> "pdftotext"
	HeaderWindow int    // lines of page 1 scanned for event metadata
	MaxPages     int    // 0 = no limit
	PageStart    int    // 1-based inclusive; 0 = from first page
	PageEnd      int    // 1-based inclusive; 0 = to last page
}

// OutputConfig holds artifact destinations and writer tuning.
type OutputConfig struct {
	CSVPath   string
	XLSXPath  string // "" = skip workbook
	BatchSize int    // CSV writer buffer, rows
}

// StoreConfig holds the audit store path and the optional row sink DSN.
type StoreConfig struct {
	SQLitePath  string
	PostgresDSN string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Pdftotext:    getEnv("PDFTOTEXT_BIN", "pdftotext"),
			HeaderWindow: getEnvAsInt("HEADER_WINDOW", 15),
			MaxPages:     getEnvAsInt("MAX_PAGES", 0),
			PageStart:    getEnvAsInt("PAGE_START", 0),
			PageEnd:      getEnvAsInt("PAGE_END", 0),
		},
		Output: OutputConfig{
			CSVPath:   getEnv("OUTPUT_CSV", "output/Election_Results.csv"),
			XLSXPath:  getEnv("OUTPUT_XLSX", ""),
			BatchSize: getEnvAsInt("BATCH_SIZE", 300),
		},
		Store: StoreConfig{
			SQLitePath:  getEnv("AUDIT_DB_PATH", "output/extraction_audit.db"),
			PostgresDSN: getEnv("DB_URL", ""),
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

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Output.CSVPath == "" {
		return NewAppError("CONFIG_ERROR", "OUTPUT_CSV is required", ErrInvalidInput)
	}
	if c.Output.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_SIZE must be positive", ErrInvalidInput)
	}
	if c.Extract.PageStart > 0 && c.Extract.PageEnd > 0 && c.Extract.PageEnd < c.Extract.PageStart {
		return NewAppError("CONFIG_ERROR", "PAGE_END before PAGE_START", ErrInvalidInput)
	}
	return nil
}
