package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const productionEnv = "production"

// Config is the non-secret runtime configuration. Secrets are read through
// their own accessors and never land in this struct.
type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING"`

	GeminiModel       string   `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	GeminiTemperature *float32 `envconfig:"GEMINI_TEMPERATURE"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`
	AccessKey          string   `envconfig:"ACCESS_KEY"`

	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	HTTPWriteTimeout time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// FromEnv builds a Config from the process environment.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	if cfg.LogEncoding == "" {
		if cfg.Production() {
			cfg.LogEncoding = "json"
		} else {
			cfg.LogEncoding = "console"
		}
	}
	return &cfg, nil
}

// Production reports whether APP_ENV is "production".
func (c *Config) Production() bool {
	return c.AppEnv == productionEnv
}

// Diagnostics reports whether error responses may carry raw model output
// and error chains. Always false in production.
func (c *Config) Diagnostics() bool {
	return !c.Production()
}

// Addr returns the listen address derived from PORT.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// APIKey returns the Google AI Studio key. AI_STUDIO_API_KEY wins over
// GEMINI_API_KEY when both are set.
func APIKey() string {
	if v := strings.TrimSpace(os.Getenv("AI_STUDIO_API_KEY")); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
}
