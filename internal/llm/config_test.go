package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAPIKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain key", "abc123", "abc123"},
		{"surrounding double quotes", `"abc123"`, "abc123"},
		{"surrounding single quotes", "'abc123'", "abc123"},
		{"leading and trailing whitespace", "  abc123\n", "abc123"},
		{"quotes inside whitespace", ` "abc123" `, "abc123"},
		{"literal undefined", "undefined", ""},
		{"literal null", "null", ""},
		{"quoted undefined", `"undefined"`, ""},
		{"empty", "", ""},
		{"whitespace only", "  \n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAPIKey(tt.input))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "default config has no key")

	cfg.Gemini.APIKey = "k"
	assert.NoError(t, cfg.Validate())

	cfg.Provider = "mock"
	assert.NoError(t, cfg.Validate(), "mock provider needs no key")

	cfg.Provider = "something-else"
	assert.Error(t, cfg.Validate())
}

func TestConfigFromEnv_CleansInjectedKeys(t *testing.T) {
	t.Setenv("DMVPREP_LLM_PROVIDER", "gemini")
	t.Setenv("DMVPREP_GEMINI_API_KEY", `"undefined"`)

	cfg := ConfigFromEnv()
	assert.Empty(t, cfg.Gemini.APIKey, "shim-injected undefined must read as absent")
	assert.Error(t, cfg.Validate())
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, ok := DiscoverConfig()
	assert.False(t, ok, "no keys set")

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	cfg, ok := DiscoverConfig()
	assert.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig()
	assert.True(t, ok)
	assert.Equal(t, "gemini", cfg.Provider, "gemini wins when both are set")
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}
