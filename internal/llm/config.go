package llm

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// primary provider; the original exam content was tuned against it.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
	}
}

// CleanAPIKey normalizes a credential read from the environment.
// Build shims sometimes inject the literal strings "undefined" or
// "null", surrounding quotes, or stray whitespace; all of those must
// read as "no key".
func CleanAPIKey(key string) string {
	key = strings.TrimSpace(key)
	key = strings.Trim(key, `"'`)
	key = strings.TrimSpace(key)
	if key == "undefined" || key == "null" {
		return ""
	}
	return key
}

// ConfigFromEnv builds a Config from DMVPREP_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("DMVPREP_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := CleanAPIKey(os.Getenv("DMVPREP_GEMINI_API_KEY")); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("DMVPREP_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := CleanAPIKey(os.Getenv("DMVPREP_OPENAI_API_KEY")); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("DMVPREP_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("DMVPREP_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := CleanAPIKey(os.Getenv("DMVPREP_ANTHROPIC_API_KEY")); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("DMVPREP_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and returns a Config for the first
// provider whose key is found. Returns (Config{}, false) if none found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := CleanAPIKey(os.Getenv("GEMINI_API_KEY")); k != "" {
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := CleanAPIKey(os.Getenv("API_KEY")); k != "" {
		// The hosted authoring environment exposes the selected Google
		// key under the bare API_KEY name.
		cfg.Provider = "gemini"
		cfg.Gemini.APIKey = k
		return cfg, true
	}
	if k := CleanAPIKey(os.Getenv("OPENAI_API_KEY")); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := CleanAPIKey(os.Getenv("ANTHROPIC_API_KEY")); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("DMVPREP_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("DMVPREP_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("DMVPREP_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
