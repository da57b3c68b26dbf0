package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskdrill/internal/llm"
	"github.com/abhisek/riskdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "riskdrill",
	Short: "Adaptive trainer for business-continuity risk methodology",
	Long: "Riskdrill — terminal trainer that quizzes bank employees on " +
		"business-continuity risk methodology, adapting question difficulty " +
		"to each learner's proficiency.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RISKDRILL_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides RISKDRILL_USER env var, defaults to \"local\")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(corpusCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then RISKDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the learner ID from --user, RISKDRILL_USER, or
// the default.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("RISKDRILL_USER"); u != "" {
		return u
	}
	return "local"
}

// resolveLLMConfig builds the LLM configuration from RISKDRILL_* env
// vars, falling back to standard API key discovery.
func resolveLLMConfig() (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered, nil
	}
	return llm.Config{}, fmt.Errorf("no LLM provider configured: set RISKDRILL_LLM_PROVIDER and its API key, or export OPENAI_API_KEY / GEMINI_API_KEY / ANTHROPIC_API_KEY")
}
