package app

import (
	"context"
	"fmt"

	"github.com/example/fftpub/internal/ports/primary"
	"github.com/example/fftpub/internal/ports/secondary"
)

// RollingTotalsServiceImpl implements the RollingTotalsService interface.
type RollingTotalsServiceImpl struct {
	rollingRepo secondary.RollingTotalsRepository
	runRepo     secondary.RunRepository
}

// NewRollingTotalsService creates a new RollingTotalsService with injected dependencies.
func NewRollingTotalsService(rollingRepo secondary.RollingTotalsRepository, runRepo secondary.RunRepository) *RollingTotalsServiceImpl {
	return &RollingTotalsServiceImpl{
		rollingRepo: rollingRepo,
		runRepo:     runRepo,
	}
}

// ListTotals returns a service's recorded periods in chronological order.
func (s *RollingTotalsServiceImpl) ListTotals(ctx context.Context, service string) ([]primary.RollingTotal, error) {
	records, err := s.rollingRepo.List(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("failed to list rolling totals: %w", err)
	}

	totals := make([]primary.RollingTotal, len(records))
	for i, r := range records {
		totals[i] = primary.RollingTotal{
			Service:              r.Service,
			Period:               r.Period,
			TotalResponses:       r.TotalResponses,
			TotalEligible:        r.TotalEligible,
			EntityCount:          r.EntityCount,
			ExcludingISResponses: r.ExcludingISResponses,
			ExcludingISEligible:  r.ExcludingISEligible,
			RecordedAt:           r.RecordedAt,
		}
	}
	return totals, nil
}

// ListRuns returns recent processing runs, newest first.
func (s *RollingTotalsServiceImpl) ListRuns(ctx context.Context, limit int) ([]primary.RunSummary, error) {
	records, err := s.runRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]primary.RunSummary, len(records))
	for i, r := range records {
		runs[i] = primary.RunSummary{
			ID:         r.ID,
			Service:    r.Service,
			Period:     r.Period,
			Entities:   r.Entities,
			Masked:     r.Masked,
			OutputPath: r.OutputPath,
			CreatedAt:  r.CreatedAt,
		}
	}
	return runs, nil
}
