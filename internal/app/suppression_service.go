// Package app implements the application services behind the primary ports.
// Services orchestrate the pure core packages and the secondary-port
// adapters; no business arithmetic lives here.
package app

import (
	"context"
	"fmt"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/core/suppression"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/primary"
	"github.com/example/fftpub/internal/ports/secondary"
)

// SuppressionServiceImpl implements the SuppressionService interface.
type SuppressionServiceImpl struct {
	cfg        *config.Config
	anomalyLog secondary.AnomalyLog
}

// NewSuppressionService creates a new SuppressionService with injected dependencies.
func NewSuppressionService(cfg *config.Config, anomalyLog secondary.AnomalyLog) *SuppressionServiceImpl {
	return &SuppressionServiceImpl{
		cfg:        cfg,
		anomalyLog: anomalyLog,
	}
}

// ComputeSuppression runs the engine over the batch and logs any ranking
// anomalies before returning.
func (s *SuppressionServiceImpl) ComputeSuppression(ctx context.Context, req primary.SuppressionRequest) (*primary.SuppressionResponse, error) {
	engineCfg := suppression.Config{
		Threshold: s.cfg.Threshold,
		Tolerance: s.cfg.Tolerance,
	}
	if req.Threshold > 0 {
		engineCfg.Threshold = req.Threshold
	}

	result, err := suppression.ComputeSuppression(suppression.Batch(req.EntitiesByLevel), engineCfg)
	if err != nil {
		return nil, fmt.Errorf("suppression failed: %w", err)
	}

	for _, anomaly := range result.Anomalies {
		s.anomalyLog.LogTie(ctx, anomaly)
	}

	return &primary.SuppressionResponse{
		Decisions: result.Decisions,
		Anomalies: result.Anomalies,
		Summaries: buildSummaries(req.EntitiesByLevel, result.Decisions),
	}, nil
}

// buildSummaries counts suppression outcomes per level, topmost first,
// skipping levels absent from the batch.
func buildSummaries(batch map[models.Level][]*models.Entity, decisions models.DecisionSet) []primary.LevelSummary {
	var summaries []primary.LevelSummary
	for _, level := range models.Levels {
		entities := batch[level]
		if len(entities) == 0 {
			continue
		}
		summaries = append(summaries, primary.LevelSummary{
			Level:       level,
			Entities:    len(entities),
			FirstLevel:  decisions.CountByReason(level, models.ReasonFirstLevel),
			SecondLevel: decisions.CountByReason(level, models.ReasonSecondLevel),
			Cascade:     decisions.CountByReason(level, models.ReasonCascade),
		})
	}
	return summaries
}
