// Package suggestion turns a draft post into writing suggestions by asking a
// generative-text model for two related topics and one intro paragraph.
package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"inkwell/internal/observability/logging"
	"inkwell/internal/observability/metrics"
	"inkwell/internal/observability/tracing"
)

// ErrSuggestionFailed is the only error Suggest returns. The underlying
// cause is logged and never surfaced to callers.
var ErrSuggestionFailed = errors.New("failed to generate suggestions")

// TextGenerator sends a prompt to a generative-text model and returns the
// raw answer.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service provides the suggestion use case.
type Service struct {
	Generator TextGenerator
	// Timeout bounds the outbound call. Zero waits for as long as the
	// request context allows.
	Timeout time.Duration
}

// Suggest builds the editor prompt for title and content, makes exactly one
// call to the generator and parses the answer as a JSON array of strings.
// Markdown code fences around the answer are tolerated.
func (s *Service) Suggest(ctx context.Context, title, content string) (suggestions []string, err error) {
	provider := s.Generator.Name()
	ctx, span := tracing.GetTracer().Start(ctx, "suggestion.Suggest")
	span.SetAttributes(attribute.String("suggestion.provider", provider))
	defer span.End()

	logger := logging.FromContext(ctx)
	start := time.Now()
	defer func() {
		metrics.RecordSuggestion(provider, time.Since(start), err == nil)
	}()

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	raw, err := s.Generator.Generate(ctx, BuildPrompt(title, content))
	if err != nil {
		return nil, fail(logger, span, provider, fmt.Errorf("generate: %w", err))
	}

	suggestions, err = ParseSuggestions(raw)
	if err != nil {
		logger.Debug("unparseable suggestion response", slog.String("response", raw))
		return nil, fail(logger, span, provider, err)
	}

	span.SetAttributes(attribute.Int("suggestion.count", len(suggestions)))
	logger.Info("suggestions generated",
		slog.String("provider", provider),
		slog.Int("count", len(suggestions)),
		slog.Duration("duration", time.Since(start)))
	return suggestions, nil
}

func fail(logger *slog.Logger, span trace.Span, provider string, cause error) error {
	logger.Error("suggestion generation failed",
		slog.String("provider", provider),
		slog.Any("error", cause))
	tracing.RecordError(span, cause)
	return ErrSuggestionFailed
}
