package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/core/aggregate"
	"github.com/example/fftpub/internal/core/period"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/primary"
	"github.com/example/fftpub/internal/ports/secondary"
)

// PipelineServiceImpl implements the PipelineService interface.
type PipelineServiceImpl struct {
	cfg         *config.Config
	reader      secondary.DatasetReader
	writer      secondary.ReportWriter
	rollingRepo secondary.RollingTotalsRepository
	runRepo     secondary.RunRepository
	suppressor  primary.SuppressionService
}

// NewPipelineService creates a new PipelineService with injected dependencies.
func NewPipelineService(
	cfg *config.Config,
	reader secondary.DatasetReader,
	writer secondary.ReportWriter,
	rollingRepo secondary.RollingTotalsRepository,
	runRepo secondary.RunRepository,
	suppressor primary.SuppressionService,
) *PipelineServiceImpl {
	return &PipelineServiceImpl{
		cfg:         cfg,
		reader:      reader,
		writer:      writer,
		rollingRepo: rollingRepo,
		runRepo:     runRepo,
		suppressor:  suppressor,
	}
}

// ProcessPeriod runs one full monthly publication: load, aggregate,
// suppress, render, record.
func (s *PipelineServiceImpl) ProcessPeriod(ctx context.Context, req primary.ProcessRequest) (*primary.ProcessResponse, error) {
	serviceName := req.Service
	if serviceName == "" {
		serviceName = s.cfg.DefaultService
	}
	def, err := config.Service(serviceName)
	if err != nil {
		return nil, err
	}

	meta, err := s.reader.ReadPeriod(ctx, req.InputDir)
	if err != nil {
		return nil, err
	}
	p, err := period.FromFiscal(meta.PeriodName, meta.YearNumber)
	if err != nil {
		return nil, err
	}

	batch, err := s.loadBatch(ctx, req.InputDir, def)
	if err != nil {
		return nil, err
	}

	suppressed, err := s.suppressor.ComputeSuppression(ctx, primary.SuppressionRequest{
		EntitiesByLevel: batch,
		Threshold:       req.Threshold,
	})
	if err != nil {
		return nil, err
	}

	resp := &primary.ProcessResponse{
		Service:   serviceName,
		Period:    p.Label(),
		Summaries: suppressed.Summaries,
		Anomalies: suppressed.Anomalies,
	}
	if req.DryRun {
		resp.RollingSkipped = "dry run"
		return resp, nil
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("FFT-%s-%s.xlsx", serviceName, p.Label())
	}
	report, err := buildReport(def, s.cfg, p, batch, suppressed.Decisions, outputPath)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteReport(ctx, report); err != nil {
		return nil, err
	}
	resp.OutputPath = outputPath

	if err := s.recordRolling(ctx, req, serviceName, def, p, batch, resp); err != nil {
		return nil, err
	}

	entities, masked := 0, 0
	for _, summary := range suppressed.Summaries {
		entities += summary.Entities
		masked += summary.Masked()
	}
	resp.RunID = uuid.NewString()
	if err := s.runRepo.Create(ctx, &secondary.RunRecord{
		ID:         resp.RunID,
		Service:    serviceName,
		Period:     p.Label(),
		Entities:   entities,
		Masked:     masked,
		OutputPath: outputPath,
	}); err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	return resp, nil
}

// loadBatch reads every reported level below the topmost from the input
// directory and derives the topmost by rollup. Independent sector trusts are
// re-parented under the synthetic IS1 group before the rollup so they
// aggregate, rank, and cascade together.
func (s *PipelineServiceImpl) loadBatch(ctx context.Context, dir string, def *config.ServiceDef) (map[models.Level][]*models.Entity, error) {
	levels := def.ParsedLevels()
	if len(levels) < 2 {
		return nil, fmt.Errorf("service %s reports a single level; nothing to roll up", def.Name)
	}
	batch := make(map[models.Level][]*models.Entity, len(levels))

	topNames := make(map[string]string)
	for i, level := range levels {
		if i == 0 {
			continue // derived below
		}
		data, err := s.reader.ReadLevel(ctx, dir, def, level)
		if err != nil {
			return nil, err
		}
		batch[level] = data.Entities
		if i == 1 {
			topNames = data.ParentNames
		}
	}

	aggregate.TagIndependentSector(batch[levels[1]])
	topNames[models.IndependentSectorICBCode] = models.IndependentSectorICBName
	top, err := aggregate.Parents(batch[levels[1]], levels[0], topNames)
	if err != nil {
		return nil, err
	}
	batch[levels[0]] = top

	return batch, nil
}

// recordRolling updates the monthly national totals unless the run opted
// out or the period is already recorded. Totals come from the trust level:
// the rollup above it and the levels below all sum to the same figures.
func (s *PipelineServiceImpl) recordRolling(
	ctx context.Context,
	req primary.ProcessRequest,
	serviceName string,
	def *config.ServiceDef,
	p period.Period,
	batch map[models.Level][]*models.Entity,
	resp *primary.ProcessResponse,
) error {
	if req.SkipRolling {
		resp.RollingSkipped = "skipped by request"
		return nil
	}

	exists, err := s.rollingRepo.Exists(ctx, serviceName, p.Label())
	if err != nil {
		return fmt.Errorf("failed to check rolling totals: %w", err)
	}
	if exists && !req.Force {
		resp.RollingSkipped = "period already recorded (use --force to re-record)"
		return nil
	}

	levels := def.ParsedLevels()
	including, excluding, err := aggregate.National(batch[levels[1]])
	if err != nil {
		return fmt.Errorf("failed to total national figures: %w", err)
	}

	if err := s.rollingRepo.Upsert(ctx, &secondary.RollingTotalRecord{
		Service:              serviceName,
		Period:               p.Label(),
		PeriodKey:            p.SortKey(),
		TotalResponses:       including.TotalResponses,
		TotalEligible:        including.TotalEligible,
		EntityCount:          including.EntityCount,
		ExcludingISResponses: excluding.TotalResponses,
		ExcludingISEligible:  excluding.TotalEligible,
	}); err != nil {
		return fmt.Errorf("failed to record rolling totals: %w", err)
	}

	resp.RollingUpdated = true
	return nil
}
