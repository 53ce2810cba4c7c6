// Package suggester provides generative-text providers for writing
// suggestions: Gemini (default), OpenAI, Claude and a credential-free noop
// provider. Every provider makes exactly one outbound call per request and
// sits behind its own circuit breaker.
package suggester

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
)

// Provider names accepted in SUGGESTION_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderNoop   = "noop"
)

// Default models per provider.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = openai.GPT4oMini
	DefaultClaudeModel = string(anthropic.ModelClaudeSonnet4_5_20250929)
)

// defaultMaxTokens bounds the provider response. Two topics and a paragraph
// fit comfortably.
const defaultMaxTokens = 1024

var (
	// ErrProviderUnavailable indicates the provider could not be reached or
	// its circuit breaker is open.
	ErrProviderUnavailable = errors.New("suggestion provider unavailable")

	// ErrEmptyResponse indicates the provider answered without any text.
	ErrEmptyResponse = errors.New("suggestion provider returned empty response")

	// ErrMissingAPIKey indicates the selected provider has no API key configured.
	ErrMissingAPIKey = errors.New("suggestion provider API key is not set")
)

// Config selects and configures one provider.
type Config struct {
	// Provider is one of gemini, openai, claude, noop.
	Provider string
	// APIKey for the selected provider. Ignored by noop.
	APIKey string
	// Model overrides the provider default when non-empty.
	Model string
	// MaxTokens caps the response length. Zero means defaultMaxTokens for
	// OpenAI and Claude and no cap for Gemini.
	MaxTokens int
	// BaseURL overrides the provider endpoint (OpenAI and Claude only).
	BaseURL string
}

// ResolvedModel returns Model, or the provider default when Model is blank.
func (c Config) ResolvedModel() string {
	if m := strings.TrimSpace(c.Model); m != "" {
		return m
	}
	switch c.Provider {
	case ProviderGemini:
		return DefaultGeminiModel
	case ProviderOpenAI:
		return DefaultOpenAIModel
	case ProviderClaude:
		return DefaultClaudeModel
	default:
		return ""
	}
}

func (c Config) maxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return defaultMaxTokens
}

// Validate checks that the provider is known and has credentials.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderNoop:
		return nil
	case ProviderGemini, ProviderOpenAI, ProviderClaude:
		if strings.TrimSpace(c.APIKey) == "" {
			return fmt.Errorf("%s: %w", c.Provider, ErrMissingAPIKey)
		}
		return nil
	default:
		return fmt.Errorf("unknown suggestion provider %q", c.Provider)
	}
}
