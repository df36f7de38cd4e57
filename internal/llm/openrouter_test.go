package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	t.Run("quality tier", func(t *testing.T) {
		p, err := NewOpenRouterProvider(DefaultConfig().OpenRouter.withKey("sk-or-test"), TierQuality)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-3-pro-preview" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-3-pro-preview")
		}
	})

	t.Run("fast tier", func(t *testing.T) {
		p, err := NewOpenRouterProvider(DefaultConfig().OpenRouter.withKey("sk-or-test"), TierFast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "google/gemini-3-flash-preview" {
			t.Errorf("model = %q, want %q", p.ModelID(), "google/gemini-3-flash-preview")
		}
	})

	t.Run("empty API key", func(t *testing.T) {
		_, err := NewOpenRouterProvider(OpenRouterConfig{}, TierFast)
		if err == nil {
			t.Fatal("expected error for empty API key")
		}
	})

	t.Run("custom model pass-through", func(t *testing.T) {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:       "sk-or-test",
			QualityModel: "anthropic/claude-haiku-4-5",
			FastModel:    "meta-llama/llama-3-8b",
		}, TierQuality)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != "anthropic/claude-haiku-4-5" {
			t.Errorf("model = %q, want %q", p.ModelID(), "anthropic/claude-haiku-4-5")
		}
	})

	t.Run("custom base URL", func(t *testing.T) {
		cfg := DefaultConfig().OpenRouter.withKey("sk-or-test")
		cfg.BaseURL = "https://custom.openrouter.example/v1"
		p, err := NewOpenRouterProvider(cfg, TierFast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p == nil {
			t.Fatal("expected non-nil provider")
		}
	})
}

func (c OpenRouterConfig) withKey(key string) OpenRouterConfig {
	c.APIKey = key
	return c
}
