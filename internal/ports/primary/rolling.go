package primary

import "context"

// RollingTotalsService exposes the monthly national totals history.
type RollingTotalsService interface {
	// ListTotals returns the recorded periods for a service type in
	// chronological order.
	ListTotals(ctx context.Context, service string) ([]RollingTotal, error)

	// ListRuns returns recent processing runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}

// RollingTotal is one recorded monthly national total.
type RollingTotal struct {
	Service        string
	Period         string
	TotalResponses int
	TotalEligible  int
	EntityCount    int

	// ExcludingIS are the same figures with independent sector providers
	// removed.
	ExcludingISResponses int
	ExcludingISEligible  int

	RecordedAt string
}

// RunSummary is one recorded processing run.
type RunSummary struct {
	ID         string
	Service    string
	Period     string
	Entities   int
	Masked     int
	OutputPath string
	CreatedAt  string
}
