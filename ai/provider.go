package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Request is one round trip to a chat/vision model.
type Request struct {
	Prompt      string
	Image       []byte // JPEG, optional
	MaxTokens   int
	Temperature float64
}

type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

type ProviderConfig struct {
	Name    string
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewProvider builds the provider named by cfg.Name.
func NewProvider(ctx context.Context, cfg ProviderConfig) (Provider, error) {
	switch cfg.Name {
	case "gemini", "":
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL)
	case "openai":
		return NewChatProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, &http.Client{Timeout: cfg.Timeout}), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider %q", cfg.Name)
	}
}
