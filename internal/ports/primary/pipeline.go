package primary

import (
	"context"

	"github.com/example/fftpub/internal/core/suppression"
)

// PipelineService orchestrates a full monthly processing run: load the
// period's dataset, aggregate, suppress, render the report, and record
// rolling totals.
type PipelineService interface {
	ProcessPeriod(ctx context.Context, req ProcessRequest) (*ProcessResponse, error)
}

// ProcessRequest selects the dataset and output for one run.
type ProcessRequest struct {
	// Service is the service type ("inpatient", "ae", "ambulance");
	// empty uses the configured default.
	Service string

	// InputDir holds the period's per-level CSV files plus period.json.
	InputDir string

	// OutputPath is the workbook to write; empty derives a name from the
	// service and period in the current directory.
	OutputPath string

	// Threshold overrides the configured suppression cutoff when > 0.
	Threshold int

	// Force re-records rolling totals even when the period already exists.
	Force bool

	// SkipRolling leaves the rolling totals untouched.
	SkipRolling bool

	// DryRun computes and reports suppression decisions without writing
	// the workbook or recording anything.
	DryRun bool
}

// ProcessResponse summarises one completed run.
type ProcessResponse struct {
	RunID      string
	Service    string
	Period     string
	OutputPath string

	Summaries []LevelSummary
	Anomalies []suppression.TieAnomaly

	RollingUpdated bool
	RollingSkipped string // non-empty reason when rolling totals were not touched
}
