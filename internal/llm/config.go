package llm

import (
	"fmt"
	"os"
	"time"
)

// ModelTier selects between the two models every provider is configured
// with: a quality model for solving problems step by step, and a fast
// model for quiz generation and concept explanations.
type ModelTier string

const (
	TierQuality ModelTier = "quality"
	TierFast    ModelTier = "fast"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig

	// Timeout is the maximum duration for a single LLM request.
	// Default: 60s (solves with images can run long).
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey       string
	QualityModel string // Default: "quality" (gemini-3-pro-preview)
	FastModel    string // Default: "fast" (gemini-3-flash-preview)
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey       string
	QualityModel string // Default: "quality" (gpt-4o)
	FastModel    string // Default: "fast" (gpt-4o-mini)
	BaseURL      string // Optional. Override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey       string
	QualityModel string // Default: "quality" (claude-sonnet)
	FastModel    string // Default: "fast" (claude-haiku)
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey       string
	QualityModel string // Default: "google/gemini-3-pro-preview"
	FastModel    string // Default: "google/gemini-3-flash-preview"
	BaseURL      string // Default: "https://openrouter.ai/api/v1"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			QualityModel: "quality",
			FastModel:    "fast",
		},
		OpenAI: OpenAIConfig{
			QualityModel: "quality",
			FastModel:    "fast",
		},
		Anthropic: AnthropicConfig{
			QualityModel: "quality",
			FastModel:    "fast",
		},
		OpenRouter: OpenRouterConfig{
			QualityModel: "google/gemini-3-pro-preview",
			FastModel:    "google/gemini-3-flash-preview",
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("MATHPAL_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("MATHPAL_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("MATHPAL_GEMINI_QUALITY_MODEL"); m != "" {
		cfg.Gemini.QualityModel = m
	}
	if m := os.Getenv("MATHPAL_GEMINI_FAST_MODEL"); m != "" {
		cfg.Gemini.FastModel = m
	}

	if k := os.Getenv("MATHPAL_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("MATHPAL_OPENAI_QUALITY_MODEL"); m != "" {
		cfg.OpenAI.QualityModel = m
	}
	if m := os.Getenv("MATHPAL_OPENAI_FAST_MODEL"); m != "" {
		cfg.OpenAI.FastModel = m
	}
	if u := os.Getenv("MATHPAL_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("MATHPAL_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("MATHPAL_ANTHROPIC_QUALITY_MODEL"); m != "" {
		cfg.Anthropic.QualityModel = m
	}
	if m := os.Getenv("MATHPAL_ANTHROPIC_FAST_MODEL"); m != "" {
		cfg.Anthropic.FastModel = m
	}

	if k := os.Getenv("MATHPAL_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and returns a Config for the
// first provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider = "openrouter"
		cfg.OpenRouter.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("MATHPAL_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("MATHPAL_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("MATHPAL_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("MATHPAL_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// model returns the configured model name for the given tier.
func (c GeminiConfig) model(tier ModelTier) string {
	if tier == TierQuality {
		return c.QualityModel
	}
	return c.FastModel
}

func (c OpenAIConfig) model(tier ModelTier) string {
	if tier == TierQuality {
		return c.QualityModel
	}
	return c.FastModel
}

func (c AnthropicConfig) model(tier ModelTier) string {
	if tier == TierQuality {
		return c.QualityModel
	}
	return c.FastModel
}

func (c OpenRouterConfig) model(tier ModelTier) string {
	if tier == TierQuality {
		return c.QualityModel
	}
	return c.FastModel
}
