package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "circlectl",
		Short: "CLI tool for the circle of trust API",
		Long: `circlectl is a CLI tool for interacting with the circle of trust JSON API.

It supports circle management, joining and betraying circles, running
harvest batches, and reading player stats and the scoreboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL, cfg.Wallet)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CIRCLETRUST_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Wallet, "wallet", cfg.Wallet, "Wallet address (env: CIRCLETRUST_WALLET)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newCircleCmd())
	rootCmd.AddCommand(newHarvestCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newScoreboardCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
