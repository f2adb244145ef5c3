// Package llm talks to hosted completion endpoints.
package llm

import (
	"context"
	"errors"
	"fmt"

	"ai-solutions-go/internal/config"
)

// Message roles understood by every client. "model" is the assistant role.
const (
	RoleSystem = "system"
	RoleUser   = "user"
	RoleModel  = "model"
)

// ErrEmptyResponse is returned when the endpoint answered without any text.
var ErrEmptyResponse = errors.New("llm returned an empty response")

// Message is one role-tagged prompt entry.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationParams overrides the configured generation settings for one call. Nil fields are not sent.
type GenerationParams struct {
	Temperature *float64
	TopP        *float64
	MaxTokens   *int
}

// Client performs one non-streaming completion over a role-tagged message list.
// Close releases the underlying connection and must be called once the client is no longer used.
type Client interface {
	Complete(ctx context.Context, messages []Message, gen *GenerationParams) (string, error)
	Close() error
}

// NewClient creates the client selected by cfg.Provider.
func NewClient(ctx context.Context, cfg config.LLMConfig) (Client, error) {
	switch cfg.Provider {
	case "openai", "deepseek":
		return NewOpenAIClient(cfg, nil), nil
	case "", "gemini":
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// ParamsFromConfig fills the generation parameters from config, skipping zero values.
func ParamsFromConfig(cfg config.LLMGenerationConfig) *GenerationParams {
	gen := &GenerationParams{}
	if cfg.Temperature != 0 {
		t := cfg.Temperature
		gen.Temperature = &t
	}
	if cfg.TopP != 0 {
		p := cfg.TopP
		gen.TopP = &p
	}
	if cfg.MaxTokens != 0 {
		m := cfg.MaxTokens
		gen.MaxTokens = &m
	}
	return gen
}
