package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port            string
	DatabaseURL     string // MongoDB or PostgreSQL connection string; empty means in-memory
	RosterFile      string
	AllowedOrigins  []string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout int // seconds
}

func Load() Config {
	cfg := Config{
		Port:            getEnv("PORT", "3000"),
		DatabaseURL:     getEnv("MONGODB_URI", os.Getenv("DATABASE_URL")),
		RosterFile:      os.Getenv("ROSTER_FILE"),
		AllowedOrigins:  getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout: getEnvInt("SHUTDOWN_TIMEOUT", 10),
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
