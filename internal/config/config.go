// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string
	SessionTTL  time.Duration
	MaxBody     int64

	Sarvam  SarvamConfig
	Weather WeatherConfig
	Search  SearchConfig
	TurnLog TurnLogConfig

	// HappyDelay is the pause between the excited and happy mascot states
	// after a successful turn. Purely cosmetic pacing.
	HappyDelay time.Duration
}

// SarvamConfig holds Sarvam AI client settings.
type SarvamConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
}

// WeatherConfig holds the weather side-feature settings.
type WeatherConfig struct {
	APIKey  string
	BaseURL string
}

// SearchConfig holds the web-search side-feature settings.
type SearchConfig struct {
	APIKey     string
	BaseURL    string
	MaxResults int
}

// TurnLogConfig controls NDJSON turn logging.
type TurnLogConfig struct {
	Enabled bool
	Dir     string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	maxResults := getEnvInt("SEARCH_MAX_RESULTS", 5)
	if maxResults <= 0 {
		maxResults = 5
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/mufasa.db"),
		SessionTTL:  time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		MaxBody:     int64(getEnvInt("MAX_REQUEST_BODY_BYTES", 1<<20)),
		Sarvam: SarvamConfig{
			APIKey:      os.Getenv("SARVAM_API_KEY"),
			BaseURL:     getEnv("SARVAM_BASE_URL", "https://api.sarvam.ai/v1"),
			Model:       getEnv("SARVAM_MODEL", "sarvam-m"),
			Temperature: getEnvFloat("SARVAM_TEMPERATURE", 0.8),
		},
		Weather: WeatherConfig{
			APIKey:  os.Getenv("WEATHER_API_KEY"),
			BaseURL: getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		},
		Search: SearchConfig{
			APIKey:     os.Getenv("SEARCH_API_KEY"),
			BaseURL:    getEnv("SEARCH_BASE_URL", "https://google.serper.dev"),
			MaxResults: maxResults,
		},
		TurnLog: TurnLogConfig{
			Enabled: getEnvBool("TURN_LOG_ENABLED", false),
			Dir:     getEnv("TURN_LOG_DIR", "./data/logs/turns"),
		},
		HappyDelay: time.Duration(getEnvInt("HAPPY_DELAY_MS", 500)) * time.Millisecond,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
// The Sarvam key is deliberately not required: a missing key degrades
// chat turns to provider errors instead of preventing startup, matching
// how the weather and search features degrade.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Sarvam.BaseURL == "" {
		return fmt.Errorf("SARVAM_BASE_URL cannot be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be > 0")
	}
	if c.MaxBody <= 0 {
		return fmt.Errorf("MAX_REQUEST_BODY_BYTES must be > 0")
	}
	if c.TurnLog.Enabled && c.TurnLog.Dir == "" {
		return fmt.Errorf("TURN_LOG_DIR cannot be empty when turn logging is enabled")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

// HasSarvamKey reports whether a Sarvam subscription key is configured.
func (c *Config) HasSarvamKey() bool {
	return c.Sarvam.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}
