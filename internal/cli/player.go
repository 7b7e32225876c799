package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Read player stats and earnings",
	}

	playerCmd.AddCommand(newPlayerStatsCmd())
	playerCmd.AddCommand(newPlayerEarningsCmd())
	playerCmd.AddCommand(newPlayerCirclesCmd())
	playerCmd.AddCommand(newPlayerCircleCmd())
	playerCmd.AddCommand(newPlayerInCircleCmd())

	return playerCmd
}

// walletArg resolves the wallet to query: an explicit argument wins,
// otherwise the configured calling wallet is used.
func walletArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Wallet != "" {
		return cfg.Wallet, nil
	}
	return "", fmt.Errorf("no wallet given and --wallet not set")
}

func newPlayerStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [wallet]",
		Short: "Show a player's lifetime stats",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := walletArg(args)
			if err != nil {
				return err
			}

			var result struct {
				Stats PlayerStats `json:"stats"`
			}
			if err := client.Get("/api/v1/players/"+wallet+"/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Stats)
			return nil
		},
	}
}

func newPlayerEarningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earnings [wallet]",
		Short: "Show a player's earnings by source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := walletArg(args)
			if err != nil {
				return err
			}

			var result struct {
				Earnings PlayerEarnings `json:"earnings"`
			}
			if err := client.Get("/api/v1/players/"+wallet+"/earnings", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Earnings)
			return nil
		},
	}
}

func newPlayerCirclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circles [wallet]",
		Short: "Show the circle a player has joined",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := walletArg(args)
			if err != nil {
				return err
			}

			var result struct {
				CircleIDs []uint32 `json:"circle_ids"`
			}
			if err := client.Get("/api/v1/players/"+wallet+"/circles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if len(result.CircleIDs) == 0 {
				out.PrintMessage("Not in any circle")
				return nil
			}
			for _, id := range result.CircleIDs {
				out.PrintMessage(fmt.Sprintf("In circle #%d", id))
			}
			return nil
		},
	}
}

func newPlayerCircleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "circle [wallet]",
		Short: "Show the circle a player created",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := walletArg(args)
			if err != nil {
				return err
			}

			var result struct {
				Circle Circle `json:"circle"`
			}
			if err := client.Get("/api/v1/players/"+wallet+"/circle", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Circle)
			return nil
		},
	}
}

func newPlayerInCircleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "in-circle [wallet] [circle-id]",
		Short: "Check whether a player is in a circle",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := walletArg(args)
			if err != nil {
				return err
			}

			path := "/api/v1/players/" + wallet + "/in-circle"
			if len(args) > 1 {
				path += "/" + args[1]
			}

			var result struct {
				InCircle bool `json:"in_circle"`
			}
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.Print(result)
			} else if result.InCircle {
				out.PrintMessage("Yes")
			} else {
				out.PrintMessage("No")
			}
			return nil
		},
	}
}
