// internal/config/env.go
package config

import (
	"os"
	"strconv"
)

// GetEnv возвращает значение переменной окружения или fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetEnvInt — GetEnv для целых чисел; нечисловое значение даёт fallback.
func GetEnvInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
