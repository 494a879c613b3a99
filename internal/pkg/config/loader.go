package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// LoadEnvString loads a string from the environment, validating it when a
// validator is given. Returns the value and whether the default was applied
// because the variable was set but invalid.
func LoadEnvString(key, defaultValue string, validate func(string) error) (string, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, false
	}
	if validate != nil {
		if err := validate(raw); err != nil {
			warnFallback(key, raw, defaultValue, err)
			return defaultValue, true
		}
	}
	return raw, false
}

// LoadEnvInt loads an integer from the environment with optional validation.
func LoadEnvInt(key string, defaultValue int, validate func(int) error) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		warnFallback(key, raw, defaultValue, err)
		return defaultValue, true
	}
	if validate != nil {
		if err := validate(value); err != nil {
			warnFallback(key, raw, defaultValue, err)
			return defaultValue, true
		}
	}
	return value, false
}

// LoadEnvDuration loads a time.Duration from the environment with optional
// validation.
func LoadEnvDuration(key string, defaultValue time.Duration, validate func(time.Duration) error) (time.Duration, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, false
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		warnFallback(key, raw, defaultValue, err)
		return defaultValue, true
	}
	if validate != nil {
		if err := validate(value); err != nil {
			warnFallback(key, raw, defaultValue, err)
			return defaultValue, true
		}
	}
	return value, false
}

func warnFallback(key, raw string, defaultValue any, err error) {
	slog.Warn("configuration fallback applied",
		slog.String("env_key", key),
		slog.String("invalid_value", raw),
		slog.Any("default_value", defaultValue),
		slog.Any("error", err))
}
