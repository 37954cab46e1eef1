// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fftpub/internal/ports/secondary"
)

// RollingTotalsRepository implements secondary.RollingTotalsRepository with SQLite.
type RollingTotalsRepository struct {
	db *sql.DB
}

// NewRollingTotalsRepository creates a new SQLite rolling totals repository.
func NewRollingTotalsRepository(db *sql.DB) *RollingTotalsRepository {
	return &RollingTotalsRepository{db: db}
}

// Upsert records one period's totals, replacing any existing row for the
// same service and period.
func (r *RollingTotalsRepository) Upsert(ctx context.Context, record *secondary.RollingTotalRecord) error {
	if record.Service == "" || record.Period == "" {
		return fmt.Errorf("rolling total service and period must be pre-populated by service layer")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO rolling_totals
			(service, period, period_key, total_responses, total_eligible, entity_count, excl_is_responses, excl_is_eligible)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(service, period) DO UPDATE SET
			period_key = excluded.period_key,
			total_responses = excluded.total_responses,
			total_eligible = excluded.total_eligible,
			entity_count = excluded.entity_count,
			excl_is_responses = excluded.excl_is_responses,
			excl_is_eligible = excluded.excl_is_eligible,
			recorded_at = CURRENT_TIMESTAMP`,
		record.Service, record.Period, record.PeriodKey,
		record.TotalResponses, record.TotalEligible, record.EntityCount,
		record.ExcludingISResponses, record.ExcludingISEligible,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rolling total: %w", err)
	}

	return nil
}

// Exists reports whether the period is already recorded for the service.
func (r *RollingTotalsRepository) Exists(ctx context.Context, service, period string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rolling_totals WHERE service = ? AND period = ?",
		service, period,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check rolling total: %w", err)
	}
	return count > 0, nil
}

// List returns a service's records in chronological order.
func (r *RollingTotalsRepository) List(ctx context.Context, service string) ([]*secondary.RollingTotalRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT service, period, period_key, total_responses, total_eligible, entity_count,
			excl_is_responses, excl_is_eligible, recorded_at
		FROM rolling_totals WHERE service = ? ORDER BY period_key`,
		service,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolling totals: %w", err)
	}
	defer rows.Close()

	var records []*secondary.RollingTotalRecord
	for rows.Next() {
		record := &secondary.RollingTotalRecord{}
		var recordedAt time.Time
		if err := rows.Scan(
			&record.Service, &record.Period, &record.PeriodKey,
			&record.TotalResponses, &record.TotalEligible, &record.EntityCount,
			&record.ExcludingISResponses, &record.ExcludingISEligible, &recordedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rolling total: %w", err)
		}
		record.RecordedAt = recordedAt.Format(time.RFC3339)
		records = append(records, record)
	}

	return records, rows.Err()
}
