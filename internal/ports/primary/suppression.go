// Package primary defines the primary ports (driving interfaces) for the
// application: the operations the CLI invokes.
package primary

import (
	"context"

	"github.com/example/fftpub/internal/core/suppression"
	"github.com/example/fftpub/internal/models"
)

// SuppressionService runs disclosure control over one period's batch.
type SuppressionService interface {
	// ComputeSuppression applies first-level, second-level, and cascade
	// suppression to the batch and returns per-entity decisions.
	ComputeSuppression(ctx context.Context, req SuppressionRequest) (*SuppressionResponse, error)
}

// SuppressionRequest carries the batch and per-run overrides.
type SuppressionRequest struct {
	// EntitiesByLevel is the full batch, grouped by level, parent IDs
	// resolved to the level immediately above.
	EntitiesByLevel map[models.Level][]*models.Entity

	// Threshold overrides the configured suppression cutoff when > 0.
	Threshold int
}

// SuppressionResponse is the engine output plus per-level counts.
type SuppressionResponse struct {
	Decisions models.DecisionSet
	Anomalies []suppression.TieAnomaly
	Summaries []LevelSummary
}

// LevelSummary counts suppression outcomes for one level.
type LevelSummary struct {
	Level       models.Level
	Entities    int
	FirstLevel  int
	SecondLevel int
	Cascade     int
}

// Masked returns the total number of masked entities at the level.
func (s LevelSummary) Masked() int {
	return s.FirstLevel + s.SecondLevel + s.Cascade
}
