package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/wire"
)

// RollingCmd returns the rolling command group
func RollingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rolling",
		Short: "Inspect recorded rolling totals and run history",
	}

	cmd.AddCommand(rollingListCmd())
	cmd.AddCommand(rollingRunsCmd())

	return cmd
}

func rollingListCmd() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a service's monthly national totals in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			totals, err := wire.RollingTotalsService().ListTotals(cmd.Context(), service)
			if err != nil {
				return err
			}

			if len(totals) == 0 {
				fmt.Printf("No rolling totals recorded for %s.\n", service)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tRESPONSES\tELIGIBLE\tPROVIDERS\tEXCL IS RESPONSES\tRECORDED")
			fmt.Fprintln(w, "------\t---------\t--------\t---------\t-----------------\t--------")
			for _, t := range totals {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
					t.Period, t.TotalResponses, t.TotalEligible, t.EntityCount,
					t.ExcludingISResponses, t.RecordedAt)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "inpatient", "service type to list")
	return cmd
}

func rollingRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recent processing runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := wire.RollingTotalsService().ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Println("No runs recorded.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tSERVICE\tPERIOD\tENTITIES\tMASKED\tOUTPUT\tCREATED")
			fmt.Fprintln(w, "--\t-------\t------\t--------\t------\t------\t-------")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
					r.ID, r.Service, r.Period, r.Entities, r.Masked, r.OutputPath, r.CreatedAt)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}
