package suggester

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"inkwell/internal/resilience/circuitbreaker"
)

// Claude generates suggestions with Anthropic's Claude models.
type Claude struct {
	client         anthropic.Client
	model          string
	maxTokens      int
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewClaude creates a Claude provider. SDK-level retries are disabled so
// that each request makes exactly one outbound call.
func NewClaude(cfg Config) *Claude {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Claude{
		client:         anthropic.NewClient(opts...),
		model:          cfg.ResolvedModel(),
		maxTokens:      cfg.maxTokens(),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SuggestionAPIConfig(ProviderClaude)),
	}
}

// Name implements Provider.
func (c *Claude) Name() string { return ProviderClaude }

// Close is a no-op.
func (c *Claude) Close() error { return nil }

// Generate sends prompt as a single user message.
func (c *Claude) Generate(ctx context.Context, prompt string) (string, error) {
	return guarded(ctx, c.circuitBreaker, func() (string, error) {
		return c.doGenerate(ctx, prompt)
	})
}

func (c *Claude) doGenerate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "claude request failed",
			slog.String("model", c.model),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("claude: %w", ErrEmptyResponse)
	}

	slog.DebugContext(ctx, "claude request completed",
		slog.String("model", c.model),
		slog.Duration("duration", duration))
	return b.String(), nil
}
