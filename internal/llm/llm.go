// Package llm provides the hosted language model client behind the journal
// assistant. The service layer depends only on [Client]; the OpenAI-backed
// implementation and the unconfigured fallback both satisfy it.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by [Unavailable] when no API key is configured.
var ErrUnavailable = errors.New("assistant is not configured")

// Client generates a completion for a system prompt and a user prompt.
type Client interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Unavailable is the no-key fallback. Every call fails with [ErrUnavailable]
// so the handler can answer 503 without special-casing configuration.
type Unavailable struct{}

func (Unavailable) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", ErrUnavailable
}
