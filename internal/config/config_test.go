package config

import (
	"reflect"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "3000")
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "")
	}
	if cfg.RosterFile != "" {
		t.Errorf("RosterFile = %q, want %q", cfg.RosterFile, "")
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.AllowedOrigins)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.ShutdownTimeout != 10 {
		t.Errorf("ShutdownTimeout = %d, want %d", cfg.ShutdownTimeout, 10)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/darts")
	t.Setenv("ROSTER_FILE", "/etc/darts/roster.json")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://darts.example.com")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SHUTDOWN_TIMEOUT", "3")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017/darts" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "mongodb://localhost:27017/darts")
	}
	if cfg.RosterFile != "/etc/darts/roster.json" {
		t.Errorf("RosterFile = %q, want %q", cfg.RosterFile, "/etc/darts/roster.json")
	}
	want := []string{"http://localhost:5173", "https://darts.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, want) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "console")
	}
	if cfg.ShutdownTimeout != 3 {
		t.Errorf("ShutdownTimeout = %d, want %d", cfg.ShutdownTimeout, 3)
	}
}

func TestLoad_DatabaseURLFallback(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/darts")

	cfg := Load()

	if cfg.DatabaseURL != "postgres://localhost/darts" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "postgres://localhost/darts")
	}
}

func TestLoad_MongoTakesPrecedence(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost/darts")
	t.Setenv("DATABASE_URL", "postgres://localhost/darts")

	cfg := Load()

	if cfg.DatabaseURL != "mongodb://localhost/darts" {
		t.Errorf("DatabaseURL = %q, want %q", cfg.DatabaseURL, "mongodb://localhost/darts")
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "abc")

	cfg := Load()

	if cfg.ShutdownTimeout != 10 {
		t.Errorf("ShutdownTimeout = %d, want %d (fallback)", cfg.ShutdownTimeout, 10)
	}
}

func TestLoad_BlankOriginList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " , ,")

	cfg := Load()

	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("AllowedOrigins = %v, want [*] (fallback)", cfg.AllowedOrigins)
	}
}
