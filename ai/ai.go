// Package ai passes questions through to external model providers.
// Keys come from the environment; without one the feature stays off.
package ai

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/kestrelsec/cybuddy/config"
)

// ErrNotConfigured means no provider is selected or its key is missing
var ErrNotConfigured = errors.New("ai provider not configured")

// Provider answers a single free-form question
type Provider interface {
	Name() string
	Ask(ctx context.Context, question string) (string, error)
}

const systemPrompt = "You are a concise cybersecurity study assistant. " +
	"Answer for a learner practicing on authorized lab targets. " +
	"Keep answers short and practical."

// FromConfig builds the configured provider. Returns ErrNotConfigured
// when provider is "none" or the matching API key is absent.
func FromConfig(cfg config.Config) (Provider, error) {
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second

	switch cfg.AI.Provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, ErrNotConfigured
		}
		return newOpenAI(key, cfg.AI.Model, timeout), nil
	case "anthropic":
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, ErrNotConfigured
		}
		return newAnthropic(key, cfg.AI.Model, timeout), nil
	}
	return nil, ErrNotConfigured
}
