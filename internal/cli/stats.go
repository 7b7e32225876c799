package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScoreboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scoreboard",
		Short: "Show the trust scoreboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Entries []ScoreboardEntry `json:"entries"`
			}
			if err := client.Get("/api/v1/scoreboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Entries)
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Global game statistics",
	}

	statsCmd.AddCommand(&cobra.Command{
		Use:   "total",
		Short: "Show game-wide totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Stats TotalStats `json:"stats"`
			}
			if err := client.Get("/api/v1/stats/total", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Stats)
			return nil
		},
	})

	statsCmd.AddCommand(&cobra.Command{
		Use:   "kale",
		Short: "Show total kale distributed across all circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				TotalKaleEarned int64 `json:"total_kale_earned"`
			}
			if err := client.Get("/api/v1/kale/total", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Total kale earned: %d", result.TotalKaleEarned))
			return nil
		},
	})

	return statsCmd
}
