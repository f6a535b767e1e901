package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ethiolearn/ethiolearn/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and test the model provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, source := resolveConfig()

		fmt.Printf("Provider:  %s  (%s)\n", cfg.Provider, source)
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)

		switch cfg.Provider {
		case "gemini":
			fmt.Printf("Model:     %s\n", cfg.Gemini.Model)
			fmt.Printf("API key:   %s\n", maskKey(cfg.Gemini.APIKey))
		case "openai", "openrouter":
			fmt.Printf("Model:     %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL:  %s\n", cfg.OpenAI.BaseURL)
			}
			fmt.Printf("API key:   %s\n", maskKey(cfg.OpenAI.APIKey))
		case "anthropic":
			fmt.Printf("Model:     %s\n", cfg.Anthropic.Model)
			fmt.Printf("API key:   %s\n", maskKey(cfg.Anthropic.APIKey))
		}

		if err := cfg.Validate(); err != nil {
			fmt.Printf("\nConfiguration problem: %v\n", err)
		}
		return nil
	},
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send one tiny request to verify connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("configure model provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages: []llm.Message{
				{Role: llm.RoleUser, Text: "Reply with the single word: pong"},
			},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}

		fmt.Printf("Model:    %s\n", resp.Model)
		fmt.Printf("Latency:  %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Printf("Reply:    %s\n", resp.Text())
		return nil
	},
}

// resolveConfig mirrors the provider resolution the app itself performs.
func resolveConfig() (llm.Config, string) {
	if os.Getenv("ETHIOLEARN_LLM_PROVIDER") != "" {
		return llm.ConfigFromEnv(), "ETHIOLEARN_LLM_PROVIDER"
	}
	if cfg, ok := llm.DiscoverConfig(); ok {
		return cfg, "discovered from environment"
	}
	return llm.ConfigFromEnv(), "defaults"
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmPingCmd)
}
