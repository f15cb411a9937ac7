package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"` // 10MB in bytes

	// Completion endpoint. The credential has no default: an empty key disables the AI modes.
	APIKey     string `env:"GROQ_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"llama-3.1-8b-instant"`

	// Sessions
	SessionProvider string `env:"SESSION_PROVIDER" envDefault:"memory"` // "memory" or "redis"
	RedisAddr       string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	SessionTTL      int    `env:"SESSION_TTL" envDefault:"86400"` // seconds

	// OCR
	OCRLanguages []string `env:"OCR_LANGUAGES" envDefault:"eng" envSeparator:","`
}

// SessionLifetime returns SessionTTL as a duration.
func (c Config) SessionLifetime() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
