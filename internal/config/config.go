package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	TelegramToken    string
	DatabaseDriver   string
	DatabaseDSN      string
	EnableScheduler  bool
	ReminderHour     int
	ReminderLocation *time.Location
	Debug            bool
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		DatabaseDriver: getEnv("DB_DRIVER", "sqlite3"),
		DatabaseDSN:    getEnv("DB_DSN", "data/legame.db"),
	}

	var err error
	if cfg.EnableScheduler, err = getBool("ENABLE_SCHEDULER", true); err != nil {
		return nil, err
	}
	if cfg.Debug, err = getBool("BOT_DEBUG", false); err != nil {
		return nil, err
	}

	hour := getEnv("REMINDER_HOUR", "18")
	cfg.ReminderHour, err = strconv.Atoi(hour)
	if err != nil || cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return nil, fmt.Errorf("REMINDER_HOUR must be between 0 and 23, got %q", hour)
	}

	tz := getEnv("REMINDER_TIMEZONE", "UTC")
	cfg.ReminderLocation, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid REMINDER_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, value)
	}
	return b, nil
}
