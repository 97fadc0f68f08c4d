package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for tandem-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (connection strings, API keys) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"4000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	BaseURL  string `yaml:"base_url" env:"BASE_URL" env-default:""` // Auto-derived from Port if empty
	Version  string `yaml:"-"`                                      // Set at load time, not from config

	// PublicBaseURL is the externally visible API base the embeddable
	// widget should call (optional; same-origin when empty).
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_API_URL" env-default:""`

	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Restaurant store configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Optional Redis-backed conversation session store
	Redis RedisConfig `yaml:"redis"`

	// Chat completion endpoint configuration
	LLM LLMConfig `yaml:"llm"`

	// Chat pipeline tuning
	Chat ChatConfig `yaml:"chat"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// Debug forces debug-level request logging regardless of Level.
	Debug bool `yaml:"debug" env:"DEBUG_LOGGING" env-default:"false"`
}

// DatabaseConfig holds restaurant-store connection configuration.
// URL is the anonymous/read connection string. WriteURL is an optional
// privileged connection used only for writes (reservations); reads never
// go through it. When URL is empty the store is considered unconfigured
// and the embedded demo dataset serves reads.
type DatabaseConfig struct {
	URL            string `yaml:"-" env:"DATABASE_URL"`       // Secret - not in YAML
	WriteURL       string `yaml:"-" env:"DATABASE_WRITE_URL"` // Secret - not in YAML
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"10"`
}

// Configured reports whether a live store is available. Once true, demo
// fallback is disabled and store failures are fatal to the request.
func (c *DatabaseConfig) Configured() bool {
	return c.URL != ""
}

// RedisConfig holds optional Redis configuration for the session store.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:""`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// LLMConfig holds chat-completion endpoint configuration.
type LLMConfig struct {
	// Provider selects the completion client: "openai" or "anthropic".
	Provider string `yaml:"provider" env:"LLM_PROVIDER" env-default:"openai"`

	APIKey  string `yaml:"-" env:"OPENAI_API_KEY"` // Secret - not in YAML
	Model   string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-3.5-turbo"`
	BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:""`

	AnthropicAPIKey string `yaml:"-" env:"ANTHROPIC_API_KEY"` // Secret - not in YAML
	AnthropicModel  string `yaml:"anthropic_model" env:"ANTHROPIC_MODEL" env-default:"claude-3-5-haiku-latest"`
}

// Configured reports whether the selected provider has a credential.
// Without one, /chat degrades to a fixed placeholder reply.
func (c *LLMConfig) Configured() bool {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey != ""
	}
	return c.APIKey != ""
}

// ChatConfig holds pipeline tuning knobs.
type ChatConfig struct {
	// RequestTimeoutSeconds bounds each remote call (store lookup,
	// completion endpoint, stored procedure).
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" env:"CHAT_REQUEST_TIMEOUT_SECONDS" env-default:"30"`
	// SessionCacheSize bounds the in-memory per-conversation dedup cache.
	SessionCacheSize int `yaml:"session_cache_size" env:"CHAT_SESSION_CACHE_SIZE" env-default:"1024"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. When no config.yaml exists, configuration is environment-only.
// The version parameter is injected at build time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Auto-derive BaseURL from Port if not explicitly set
	if cfg.BaseURL == "" {
		cfg.BaseURL = (&url.URL{
			Scheme: "http",
			Host:   "localhost:" + cfg.Port,
		}).String()
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLM.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.Database.WriteURL != "" && c.Database.URL == "" {
		return fmt.Errorf("DATABASE_WRITE_URL requires DATABASE_URL")
	}
	return nil
}
