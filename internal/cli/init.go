package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the fftpub database and workspace config",
		Long: `Initialize the fftpub database at ~/.fftpub/fftpub.db with the
required schema, and write a default .fftpub/config.json in the current
directory if none exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing fftpub database at %s\n", dbPath)

			// Initialize schema
			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			if _, err := config.LoadConfig(cwd); err != nil {
				if err := config.SaveConfig(cwd, config.DefaultConfig()); err != nil {
					return fmt.Errorf("failed to write config: %w", err)
				}
				fmt.Println("✓ Default config written to .fftpub/config.json")
			} else {
				fmt.Println("✓ Existing config kept")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  fftpub suppress ./data/<period>   # preview disclosure control")
			fmt.Println("  fftpub process ./data/<period>    # publish the workbook")

			return nil
		},
	}
}
