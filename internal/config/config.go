// Package config assembles the server configuration from an optional YAML
// file and environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	envcfg "inkwell/pkg/config"
)

// AppConfig is the complete server configuration.
type AppConfig struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Database      DatabaseConfig      `yaml:"database"`
	Suggestion    SuggestionConfig    `yaml:"suggestion"`
	CORS          CORSConfig          `yaml:"cors"`
	Observability ObservabilityConfig `yaml:"observability"`
	Version       string              `yaml:"version"`
}

// HTTPConfig configures the listener.
type HTTPConfig struct {
	Addr              string        `yaml:"addr" validate:"required"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig configures the post store. Zero pool values keep the
// driver defaults.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver" validate:"oneof=sqlite postgres"`
	URL             string        `yaml:"url" validate:"required"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" validate:"gte=0"`
}

// SuggestionConfig configures the language model provider.
type SuggestionConfig struct {
	Provider        string `yaml:"provider" validate:"oneof=gemini openai claude noop"`
	GeminiAPIKey    string `yaml:"gemini_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	Model           string `yaml:"model"`
	MaxTokens       int    `yaml:"max_tokens" validate:"gte=0"`
	BaseURL         string `yaml:"base_url" validate:"omitempty,url"`
	// Timeout bounds one provider call. Zero waits for as long as the client does.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// APIKey returns the key of the selected provider.
func (c SuggestionConfig) APIKey() string {
	switch c.Provider {
	case "gemini":
		return c.GeminiAPIKey
	case "openai":
		return c.OpenAIAPIKey
	case "claude":
		return c.AnthropicAPIKey
	default:
		return ""
	}
}

// CORSConfig lists the origins allowed to call the API. "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" validate:"min=1,dive,required"`
}

// ObservabilityConfig configures logging and tracing.
type ObservabilityConfig struct {
	LogLevel       string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat      string `yaml:"log_format" validate:"oneof=json text"`
	TracingEnabled bool   `yaml:"tracing_enabled"`
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		HTTP: HTTPConfig{
			Addr:              ":5000",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			URL:    "file:database.sqlite?_foreign_keys=on",
		},
		Suggestion: SuggestionConfig{Provider: "gemini"},
		CORS:       CORSConfig{AllowedOrigins: []string{"*"}},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
		Version: "dev",
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is non-empty), then environment variables. The result is validated.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		// #nosec G304 -- path comes from the operator, not from requests
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *AppConfig) {
	// PORT is honoured for platforms that only inject a port number.
	if port := envcfg.GetEnvString("PORT", ""); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.HTTP.Addr = envcfg.GetEnvString("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ReadHeaderTimeout = envcfg.GetEnvDuration("HTTP_READ_HEADER_TIMEOUT", cfg.HTTP.ReadHeaderTimeout)
	cfg.HTTP.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.HTTP.ShutdownTimeout)

	cfg.Database.Driver = strings.ToLower(envcfg.GetEnvString("DB_DRIVER", cfg.Database.Driver))
	cfg.Database.URL = envcfg.GetEnvString("DATABASE_URL", cfg.Database.URL)
	cfg.Database.MaxOpenConns = envcfg.GetEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = envcfg.GetEnvInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.ConnMaxLifetime = envcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.Database.ConnMaxLifetime)

	s := &cfg.Suggestion
	s.Provider = strings.ToLower(envcfg.GetEnvString("SUGGESTION_PROVIDER", s.Provider))
	s.GeminiAPIKey = envcfg.GetEnvString("GEMINI_API_KEY", s.GeminiAPIKey)
	s.OpenAIAPIKey = envcfg.GetEnvString("OPENAI_API_KEY", s.OpenAIAPIKey)
	s.AnthropicAPIKey = envcfg.GetEnvString("ANTHROPIC_API_KEY", s.AnthropicAPIKey)
	s.Model = envcfg.GetEnvString("SUGGESTION_MODEL", s.Model)
	s.MaxTokens = envcfg.GetEnvInt("SUGGESTION_MAX_TOKENS", s.MaxTokens)
	s.BaseURL = envcfg.GetEnvString("SUGGESTION_BASE_URL", s.BaseURL)
	s.Timeout = envcfg.GetEnvDuration("SUGGESTION_TIMEOUT", s.Timeout)

	cfg.CORS.AllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", cfg.CORS.AllowedOrigins)

	cfg.Observability.LogLevel = strings.ToLower(envcfg.GetEnvString("LOG_LEVEL", cfg.Observability.LogLevel))
	cfg.Observability.LogFormat = strings.ToLower(envcfg.GetEnvString("LOG_FORMAT", cfg.Observability.LogFormat))
	cfg.Observability.TracingEnabled = envcfg.GetEnvBool("TRACING_ENABLED", cfg.Observability.TracingEnabled)

	cfg.Version = envcfg.GetEnvString("VERSION", cfg.Version)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags. Each violation is reported
// as "<Struct.Field>: <tag>".
func Validate(cfg *AppConfig) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := strings.TrimPrefix(fe.Namespace(), "AppConfig.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s (got %q)", ns, fe.Tag(), fe.Param(), fmt.Sprint(fe.Value())))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", ns, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
