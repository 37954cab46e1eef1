package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/ports/primary"
	"github.com/example/fftpub/internal/wire"
)

// ProcessCmd returns the process command
func ProcessCmd() *cobra.Command {
	var (
		service     string
		output      string
		threshold   int
		force       bool
		skipRolling bool
	)

	cmd := &cobra.Command{
		Use:   "process <input-dir>",
		Short: "Process one period's dataset into a published workbook",
		Long: `Process runs the full monthly publication for one period:
load the per-level CSV files, derive the ICB rollup, apply disclosure
control, write the Excel workbook, and record the national rolling totals.

Examples:
  fftpub process ./data/aug-2024
  fftpub process ./data/aug-2024 --service ae --output ae-aug24.xlsx
  fftpub process ./data/aug-2024 --threshold 7 --skip-rolling`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.PipelineService().ProcessPeriod(cmd.Context(), primary.ProcessRequest{
				Service:     service,
				InputDir:    args[0],
				OutputPath:  output,
				Threshold:   threshold,
				Force:       force,
				SkipRolling: skipRolling,
			})
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Printf("%s Processed %s %s\n", green("✓"), resp.Service, resp.Period)
			fmt.Printf("  Workbook: %s\n", resp.OutputPath)
			fmt.Println()
			printSummaries(resp.Summaries)

			if resp.RollingUpdated {
				fmt.Printf("%s Rolling totals recorded for %s\n", green("✓"), resp.Period)
			} else if resp.RollingSkipped != "" {
				fmt.Printf("  Rolling totals not updated: %s\n", resp.RollingSkipped)
			}
			if len(resp.Anomalies) > 0 {
				fmt.Printf("  %d ranking anomalies (see warnings above)\n", len(resp.Anomalies))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "service type (inpatient, ae, ambulance); defaults from config")
	cmd.Flags().StringVarP(&output, "output", "o", "", "workbook path (default FFT-<service>-<period>.xlsx)")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "override the suppression threshold for this run")
	cmd.Flags().BoolVar(&force, "force", false, "re-record rolling totals even if the period exists")
	cmd.Flags().BoolVar(&skipRolling, "skip-rolling", false, "do not touch the rolling totals")

	return cmd
}

// printSummaries writes the per-level suppression outcome table.
func printSummaries(summaries []primary.LevelSummary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENTITIES\tFIRST\tSECOND\tCASCADE\tMASKED")
	fmt.Fprintln(w, "-----\t--------\t-----\t------\t-------\t------")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
			s.Level, s.Entities, s.FirstLevel, s.SecondLevel, s.Cascade, s.Masked())
	}
	w.Flush()
}
