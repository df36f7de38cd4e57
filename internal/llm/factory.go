package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/mathpal/internal/store"
)

// Providers bundles the two model tiers a running app needs: a quality
// model for step-by-step solutions and a fast model for quiz generation
// and explanations.
type Providers struct {
	Quality Provider
	Fast    Provider
}

// NewProviders creates both tier providers from configuration.
// Each provider is wrapped with logging middleware. Requests are
// single-shot: a failed call surfaces its error to the caller rather
// than being retried internally.
func NewProviders(ctx context.Context, cfg Config, eventRepo store.EventRepo) (*Providers, error) {
	quality, err := newProvider(ctx, cfg, TierQuality)
	if err != nil {
		return nil, err
	}
	fast, err := newProvider(ctx, cfg, TierFast)
	if err != nil {
		return nil, err
	}

	return &Providers{
		Quality: WithLogging(quality, cfg.Provider, eventRepo),
		Fast:    WithLogging(fast, cfg.Provider, eventRepo),
	}, nil
}

// NewProvidersFromEnv builds providers from MATHPAL_* environment
// variables, falling back to probing standard API key variables
// (GEMINI_API_KEY and friends) when no provider is configured.
func NewProvidersFromEnv(ctx context.Context, eventRepo store.EventRepo) (*Providers, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProviders(ctx, cfg, eventRepo)
}

func newProvider(ctx context.Context, cfg Config, tier ModelTier) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic, tier)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI, tier)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini, tier)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter, tier)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return base, nil
}
