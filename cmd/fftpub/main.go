package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/cli"
	"github.com/example/fftpub/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fftpub",
		Short:   "fftpub - Friends and Family Test publication pipeline",
		Version: version.String(),
		Long: `fftpub processes monthly Friends and Family Test submissions into
published workbooks, applying statistical disclosure control (first-level,
second-level, and cascade suppression) across the ICB/trust/site/ward
hierarchy.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.ProcessCmd())
	rootCmd.AddCommand(cli.SuppressCmd())
	rootCmd.AddCommand(cli.RollingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
