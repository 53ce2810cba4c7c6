package suggester

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"inkwell/internal/resilience/circuitbreaker"
)

var newGeminiClient = genai.NewClient

// contentGenerator is the part of *genai.GenerativeModel the provider uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini generates suggestions with Google's Gemini models.
type Gemini struct {
	generator      contentGenerator
	closeFn        func() error
	model          string
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewGemini connects to the Gemini API with cfg.APIKey.
// Extra client options (endpoint, HTTP client) may be appended for tests.
func NewGemini(ctx context.Context, cfg Config, extraOpts ...option.ClientOption) (*Gemini, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrMissingAPIKey)
	}

	opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, extraOpts...)
	client, err := newGeminiClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini: %w", ErrProviderUnavailable, err)
	}

	model := cfg.ResolvedModel()
	gm := client.GenerativeModel(model)
	configureGeminiModel(gm, cfg)

	return &Gemini{
		generator:      gm,
		closeFn:        client.Close,
		model:          model,
		circuitBreaker: circuitbreaker.New(circuitbreaker.SuggestionAPIConfig(ProviderGemini)),
	}, nil
}

// configureGeminiModel leaves the output budget uncapped unless MaxTokens is
// set. Gemini 2.5 models spend thinking tokens from the same budget, so a
// small default cap can end the answer before any text is produced.
func configureGeminiModel(gm *genai.GenerativeModel, cfg Config) {
	gm.SetCandidateCount(1)
	if cfg.MaxTokens > 0 {
		gm.SetMaxOutputTokens(int32(cfg.MaxTokens))
	}
}

// Name implements Provider.
func (g *Gemini) Name() string { return ProviderGemini }

// Close releases the Gemini client.
func (g *Gemini) Close() error {
	if g == nil || g.closeFn == nil {
		return nil
	}
	return g.closeFn()
}

// Generate sends prompt as a single text part and returns the joined text
// parts of the first candidate that has any text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	return guarded(ctx, g.circuitBreaker, func() (string, error) {
		return g.doGenerate(ctx, prompt)
	})
}

func (g *Gemini) doGenerate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	resp, err := g.generator.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		slog.ErrorContext(ctx, "gemini request failed",
			slog.String("model", g.model),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("gemini api error: %w", err)
	}

	text, err := firstGeminiText(resp)
	if err != nil {
		return "", err
	}

	slog.DebugContext(ctx, "gemini request completed",
		slog.String("model", g.model),
		slog.Int("response_length", len(text)),
		slog.Duration("duration", time.Since(start)))
	return text, nil
}

func firstGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		if strings.TrimSpace(b.String()) != "" {
			return b.String(), nil
		}
	}
	return "", fmt.Errorf("gemini: %w", ErrEmptyResponse)
}
