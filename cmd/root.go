package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethiolearn/ethiolearn/internal/app"
	"github.com/ethiolearn/ethiolearn/internal/gateway"
	"github.com/ethiolearn/ethiolearn/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "ethiolearn",
	Short: "AI study companion for Ethiopian students",
	Long:  "EthioLearn — AI-native terminal app for Ethiopian National Exam prep: quizzes, tutoring, question analysis and study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := llm.NewProviderFromEnv(cmd.Context())
		if err != nil {
			return fmt.Errorf("configure model provider: %w", err)
		}
		svc := gateway.New(provider, gateway.DefaultConfig())
		return app.Run(svc)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
}
