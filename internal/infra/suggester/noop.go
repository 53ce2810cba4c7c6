package suggester

import (
	"context"
)

// noopResponse mimics a fenced model answer so the full parsing path runs.
const noopResponse = "```json\n" + `[
  "Related topic: lessons learned while writing this post",
  "Related topic: what to explore next",
  "Intro paragraph: This post walks through the idea step by step and explains why it matters."
]` + "\n```"

// Noop returns a fixed, valid suggestion array without any network call.
// It is meant for local development without API credentials.
type Noop struct{}

// NewNoop creates a Noop provider.
func NewNoop() *Noop {
	return &Noop{}
}

// Name implements Provider.
func (n *Noop) Name() string { return ProviderNoop }

// Close implements Provider.
func (n *Noop) Close() error { return nil }

// Generate returns the canned answer unless ctx is already done.
func (n *Noop) Generate(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return noopResponse, nil
}

// Unconfigured stands in for a provider whose credentials are missing.
// Every Generate call fails with the configuration error, so only the
// suggestion route is affected.
type Unconfigured struct {
	provider string
	err      error
}

// NewUnconfigured creates a provider named provider that always fails with err.
func NewUnconfigured(provider string, err error) *Unconfigured {
	return &Unconfigured{provider: provider, err: err}
}

// Name implements Provider.
func (u *Unconfigured) Name() string { return u.provider }

// Close implements Provider.
func (u *Unconfigured) Close() error { return nil }

// Generate implements Provider.
func (u *Unconfigured) Generate(context.Context, string) (string, error) {
	return "", u.err
}
