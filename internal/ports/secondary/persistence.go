package secondary

import "context"

// RollingTotalsRepository persists the monthly national totals history.
type RollingTotalsRepository interface {
	// Upsert records one period's totals, replacing any existing row for
	// the same service and period.
	Upsert(ctx context.Context, record *RollingTotalRecord) error

	// Exists reports whether the period is already recorded.
	Exists(ctx context.Context, service, period string) (bool, error)

	// List returns a service's records in chronological order.
	List(ctx context.Context, service string) ([]*RollingTotalRecord, error)
}

// RollingTotalRecord is one monthly national total as stored.
type RollingTotalRecord struct {
	Service        string
	Period         string
	PeriodKey      int // YYYYMM, for chronological ordering
	TotalResponses int
	TotalEligible  int
	EntityCount    int

	ExcludingISResponses int
	ExcludingISEligible  int

	RecordedAt string
}

// RunRepository persists processing run history.
type RunRepository interface {
	// Create records a completed run. The run ID must be pre-populated by
	// the service layer.
	Create(ctx context.Context, run *RunRecord) error

	// List returns recent runs, newest first.
	List(ctx context.Context, limit int) ([]*RunRecord, error)
}

// RunRecord is one processing run as stored.
type RunRecord struct {
	ID         string
	Service    string
	Period     string
	Entities   int
	Masked     int
	OutputPath string
	CreatedAt  string
}
