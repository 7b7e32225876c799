package cli

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

// hashPassword computes the digest the server stores for a circle
// password. Only the digest is sent at creation time.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func newCircleCmd() *cobra.Command {
	circleCmd := &cobra.Command{
		Use:   "circle",
		Short: "Manage circles",
	}

	circleCmd.AddCommand(newCircleCreateCmd())
	circleCmd.AddCommand(newCircleGetCmd())
	circleCmd.AddCommand(newCircleListCmd())
	circleCmd.AddCommand(newCircleMembersCmd())
	circleCmd.AddCommand(newCircleEarningsCmd())
	circleCmd.AddCommand(newCircleJoinCmd())
	circleCmd.AddCommand(newCircleBetrayCmd())
	circleCmd.AddCommand(newCircleSetPasswordCmd())
	circleCmd.AddCommand(newCircleTopCmd())

	return circleCmd
}

func newCircleCreateCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"name":          args[0],
				"password_hash": hashPassword(password),
			}

			var result struct {
				CircleID uint32 `json:"circle_id"`
			}
			if err := client.Post("/api/v1/circles", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Created circle #%d", result.CircleID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Circle password (hashed locally, required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newCircleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Circle Circle `json:"circle"`
			}
			if err := client.Get("/api/v1/circles/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Circle)
			return nil
		},
	}
}

func newCircleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Circles []Circle `json:"circles"`
			}
			if err := client.Get("/api/v1/circles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Circles)
			return nil
		},
	}
}

func newCircleMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <id>",
		Short: "List a circle's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CircleMembers
			if err := client.Get("/api/v1/circles/"+args[0]+"/members", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCircleEarningsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "earnings <id>",
		Short: "Show a circle's harvest earnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Earnings CircleEarnings `json:"earnings"`
			}
			if err := client.Get("/api/v1/circles/"+args[0]+"/earnings", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Earnings)
			return nil
		},
	}
}

func newCircleJoinCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Join a circle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"password": password}

			if err := client.Post("/api/v1/circles/"+args[0]+"/join", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Joined circle " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Circle password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newCircleBetrayCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "betray <id>",
		Short: "Betray a circle, redirecting its future harvests to you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"password": password}

			if err := client.Post("/api/v1/circles/"+args[0]+"/betray", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Betrayed circle " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Circle password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newCircleSetPasswordCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "set-password <id>",
		Short: "Rotate a circle's password (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{"password_hash": hashPassword(password)}

			if err := client.Put("/api/v1/circles/"+args[0]+"/password", body, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Password updated for circle " + args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New circle password (hashed locally, required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newCircleTopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the top earning circles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Circles []CircleEarnings `json:"circles"`
			}
			path := fmt.Sprintf("/api/v1/circles/top?limit=%d", limit)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Circles)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of circles to show")

	return cmd
}
