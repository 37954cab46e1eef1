package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fftpub/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records a completed run.
// The run record must have its ID pre-populated by the service layer.
func (r *RunRepository) Create(ctx context.Context, run *secondary.RunRecord) error {
	if run.ID == "" {
		return fmt.Errorf("run ID must be pre-populated by service layer")
	}

	var outputPath sql.NullString
	if run.OutputPath != "" {
		outputPath = sql.NullString{String: run.OutputPath, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (id, service, period, entities, masked, output_path) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.Service, run.Period, run.Entities, run.Masked, outputPath,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// List returns recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]*secondary.RunRecord, error) {
	query := "SELECT id, service, period, entities, masked, output_path, created_at FROM runs ORDER BY created_at DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		run := &secondary.RunRecord{}
		var outputPath sql.NullString
		var createdAt time.Time
		if err := rows.Scan(&run.ID, &run.Service, &run.Period, &run.Entities, &run.Masked, &outputPath, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.OutputPath = outputPath.String
		run.CreatedAt = createdAt.Format(time.RFC3339)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}
