package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()

	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini default provider, got %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("expected gemini-flash default model, got %q", cfg.Gemini.Model)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s default timeout, got %s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("ETHIOLEARN_LLM_PROVIDER", "anthropic")
	t.Setenv("ETHIOLEARN_ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ETHIOLEARN_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("ETHIOLEARN_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()

	if cfg.Provider != "anthropic" {
		t.Errorf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "test-key" {
		t.Errorf("expected test-key, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet" {
		t.Errorf("expected claude-sonnet, got %q", cfg.Anthropic.Model)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected 45s, got %s", cfg.Timeout)
	}
}

func TestConfigFromEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("ETHIOLEARN_LLM_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout for bad value, got %s", cfg.Timeout)
	}
}

func TestDiscoverConfig_Priority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "gemini" {
		t.Errorf("expected gemini to win priority, got %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("expected g-key, got %q", cfg.Gemini.APIKey)
	}
}

func TestDiscoverConfig_OpenRouter(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "openrouter" {
		t.Errorf("expected openrouter, got %q", cfg.Provider)
	}
	if cfg.OpenAI.BaseURL != openRouterBaseURL {
		t.Errorf("expected OpenRouter base URL, got %q", cfg.OpenAI.BaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llamacpp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
