package llm

import (
	"context"
	"fmt"
	"os"
)

// NewProvider builds a Provider from configuration, wrapped with the
// per-call timeout and, when ETHIOLEARN_LLM_TRANSCRIPT is set, the
// transcript writer.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		oc := cfg.OpenAI
		if oc.BaseURL == "" {
			oc.BaseURL = openRouterBaseURL
		}
		base, err = NewOpenAIProvider(oc)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	wrapped := base
	if path := os.Getenv("ETHIOLEARN_LLM_TRANSCRIPT"); path != "" {
		f, ferr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if ferr == nil {
			wrapped = WithTranscript(wrapped, f)
		}
	}
	wrapped = WithTimeout(wrapped, cfg.Timeout)

	return wrapped, nil
}

// NewProviderFromEnv builds a Provider from ETHIOLEARN_* variables,
// falling back to DiscoverConfig when no provider is explicitly selected.
func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	if os.Getenv("ETHIOLEARN_LLM_PROVIDER") != "" {
		return NewProvider(ctx, ConfigFromEnv())
	}
	if cfg, ok := DiscoverConfig(); ok {
		return NewProvider(ctx, cfg)
	}
	return NewProvider(ctx, ConfigFromEnv())
}
