package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/ports/primary"
	"github.com/example/fftpub/internal/wire"
)

// SuppressCmd returns the suppress command
func SuppressCmd() *cobra.Command {
	var (
		service   string
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "suppress <input-dir>",
		Short: "Preview suppression decisions without publishing",
		Long: `Suppress runs disclosure control over a period's dataset and prints
the per-level outcome without writing a workbook or recording anything.
Use it to check a submission before the real run.

Examples:
  fftpub suppress ./data/aug-2024
  fftpub suppress ./data/aug-2024 --threshold 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.PipelineService().ProcessPeriod(cmd.Context(), primary.ProcessRequest{
				Service:   service,
				InputDir:  args[0],
				Threshold: threshold,
				DryRun:    true,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Suppression preview for %s %s\n\n", resp.Service, resp.Period)
			printSummaries(resp.Summaries)
			if len(resp.Anomalies) > 0 {
				fmt.Printf("\n%d ranking anomalies (see warnings above)\n", len(resp.Anomalies))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "service type (inpatient, ae, ambulance); defaults from config")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "override the suppression threshold for this run")

	return cmd
}
