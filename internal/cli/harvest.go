package cli

import (
	"github.com/spf13/cobra"
)

func newHarvestCmd() *cobra.Command {
	var index uint32

	cmd := &cobra.Command{
		Use:   "harvest",
		Short: "Run a harvest batch and distribute the yield",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]uint32{"index": index}

			var result struct {
				Result HarvestResult `json:"result"`
			}
			if err := client.Post("/api/v1/harvests", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result.Result)
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&index, "index", "i", 0, "Batch index to process")

	return cmd
}
