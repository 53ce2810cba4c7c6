package suggester

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"inkwell/internal/resilience/circuitbreaker"
)

// OpenAI generates suggestions with OpenAI chat completion models.
type OpenAI struct {
	client         *openai.Client
	model          string
	maxTokens      int
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOpenAI creates an OpenAI provider. cfg.BaseURL, when set, replaces the
// API endpoint (it must include the /v1 suffix).
func NewOpenAI(cfg Config) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAI{
		client:         openai.NewClientWithConfig(clientCfg),
		model:          cfg.ResolvedModel(),
		maxTokens:      cfg.maxTokens(),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SuggestionAPIConfig(ProviderOpenAI)),
	}
}

// Name implements Provider.
func (o *OpenAI) Name() string { return ProviderOpenAI }

// Close is a no-op; the HTTP client needs no teardown.
func (o *OpenAI) Close() error { return nil }

// Generate sends prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	return guarded(ctx, o.circuitBreaker, func() (string, error) {
		return o.doGenerate(ctx, prompt)
	})
}

func (o *OpenAI) doGenerate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "openai request failed",
			slog.String("model", o.model),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	// guard against panics on an empty choices array
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("openai: %w", ErrEmptyResponse)
	}

	slog.DebugContext(ctx, "openai request completed",
		slog.String("model", o.model),
		slog.Duration("duration", duration))
	return resp.Choices[0].Message.Content, nil
}
