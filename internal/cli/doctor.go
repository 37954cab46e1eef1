package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the fftpub environment",
		Long: `Environment health check for fftpub.

Validates:
- Database reachability and schema
- Workspace configuration (.fftpub/config.json)
- Embedded service definitions

Examples:
  fftpub doctor           # Run full health check
  fftpub doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDatabase(),
				checkConfig(),
				checkServices(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, exit code only")
	return cmd
}

func checkDatabase() CheckResult {
	result := CheckResult{Name: "Database"}
	database, err := db.GetDB()
	if err != nil {
		result.Status = "✗"
		result.Details = fmt.Sprintf("cannot open database: %v (run 'fftpub init')", err)
		return result
	}
	if err := database.Ping(); err != nil {
		result.Status = "✗"
		result.Details = fmt.Sprintf("cannot reach database: %v", err)
		return result
	}
	result.Status = "✓"
	return result
}

func checkConfig() CheckResult {
	result := CheckResult{Name: "Config"}
	cwd, err := os.Getwd()
	if err != nil {
		result.Status = "✗"
		result.Details = err.Error()
		return result
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		result.Status = "⚠"
		result.Details = "no workspace config found; defaults will be used (run 'fftpub init')"
		return result
	}
	if err := cfg.Validate(); err != nil {
		result.Status = "✗"
		result.Details = err.Error()
		return result
	}
	result.Status = "✓"
	return result
}

func checkServices() CheckResult {
	result := CheckResult{Name: "Services"}
	names := config.ServiceNames()
	if len(names) == 0 {
		result.Status = "✗"
		result.Details = "no service definitions loaded"
		return result
	}
	for _, name := range names {
		if _, err := config.Service(name); err != nil {
			result.Status = "✗"
			result.Details = err.Error()
			return result
		}
	}
	result.Status = "✓"
	result.Details = strings.Join(names, ", ")
	return result
}
