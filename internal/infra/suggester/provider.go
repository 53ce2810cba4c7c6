package suggester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sony/gobreaker"

	"inkwell/internal/resilience/circuitbreaker"
)

// Provider generates text for a single prompt.
type Provider interface {
	// Name returns the provider name used in logs and metric labels.
	Name() string
	// Generate sends prompt to the model and returns its raw text answer.
	Generate(ctx context.Context, prompt string) (string, error)
	// Close releases the underlying client.
	Close() error
}

// New builds the provider selected by cfg. A known provider without an API
// key yields an Unconfigured provider and a warning instead of an error.
func New(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, ErrMissingAPIKey) {
			slog.Warn("suggestion provider has no API key, suggestions will fail",
				slog.String("provider", cfg.Provider))
			return NewUnconfigured(cfg.Provider, err), nil
		}
		return nil, err
	}

	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case ProviderGemini:
		p, err = NewGemini(ctx, cfg)
	case ProviderOpenAI:
		p = NewOpenAI(cfg)
	case ProviderClaude:
		p = NewClaude(cfg)
	default:
		p = NewNoop()
	}
	if err != nil {
		return nil, err
	}

	slog.Info("suggestion provider initialized",
		slog.String("provider", p.Name()),
		slog.String("model", cfg.ResolvedModel()))
	return p, nil
}

// guarded runs call through cb. An open breaker is reported as
// ErrProviderUnavailable without reaching the provider.
func guarded(ctx context.Context, cb *circuitbreaker.CircuitBreaker, call func() (string, error)) (string, error) {
	out, err := circuitbreaker.Run(cb, call)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		slog.WarnContext(ctx, "suggestion circuit breaker open, request rejected",
			slog.String("circuit", cb.Name()),
			slog.String("state", cb.State().String()))
		return "", fmt.Errorf("%w: circuit breaker open", ErrProviderUnavailable)
	}
	return out, err
}
