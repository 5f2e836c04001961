package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears keys for the duration of the test; envconfig treats a
// set-but-empty variable as an explicit value.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "APP_ENV", "LOG_LEVEL", "LOG_ENCODING", "GEMINI_MODEL", "GEMINI_TEMPERATURE",
		"CORS_ALLOWED_ORIGINS", "ACCESS_KEY", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Addr())
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %s", cfg.GeminiModel)
	}
	if cfg.GeminiTemperature != nil {
		t.Fatalf("expected nil temperature, got %v", *cfg.GeminiTemperature)
	}
	if cfg.Production() {
		t.Fatalf("expected development by default")
	}
	if !cfg.Diagnostics() {
		t.Fatalf("expected diagnostics outside production")
	}
	if cfg.LogEncoding != "console" {
		t.Fatalf("expected console encoding in development, got %s", cfg.LogEncoding)
	}
	if cfg.HTTPWriteTimeout != 120*time.Second {
		t.Fatalf("expected 120s write timeout, got %v", cfg.HTTPWriteTimeout)
	}
}

func TestFromEnvProduction(t *testing.T) {
	unsetEnv(t, "LOG_ENCODING", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT")
	t.Setenv("APP_ENV", " Production ")
	t.Setenv("PORT", ":9090")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv error: %v", err)
	}
	if !cfg.Production() || cfg.Diagnostics() {
		t.Fatalf("expected production without diagnostics")
	}
	if cfg.LogEncoding != "json" {
		t.Fatalf("expected json encoding in production, got %s", cfg.LogEncoding)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("expected :9090, got %s", cfg.Addr())
	}
	if cfg.GeminiTemperature == nil || *cfg.GeminiTemperature != 0.7 {
		t.Fatalf("expected temperature 0.7, got %v", cfg.GeminiTemperature)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("AI_STUDIO_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	if got := APIKey(); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}

	t.Setenv("GEMINI_API_KEY", "fallback")
	if got := APIKey(); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("AI_STUDIO_API_KEY", " studio ")
	if got := APIKey(); got != "studio" {
		t.Fatalf("expected studio, got %q", got)
	}
}
