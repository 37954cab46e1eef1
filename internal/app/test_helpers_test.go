package app

import (
	"context"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/core/suppression"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/secondary"
)

// Ensure the mocks implement their interfaces
var (
	_ secondary.DatasetReader           = (*mockDatasetReader)(nil)
	_ secondary.ReportWriter            = (*mockReportWriter)(nil)
	_ secondary.RollingTotalsRepository = (*mockRollingRepo)(nil)
	_ secondary.RunRepository           = (*mockRunRepo)(nil)
	_ secondary.AnomalyLog              = (*mockAnomalyLog)(nil)
)

// mockDatasetReader implements secondary.DatasetReader for testing
type mockDatasetReader struct {
	readPeriodFn func(ctx context.Context, dir string) (*secondary.PeriodMeta, error)
	readLevelFn  func(ctx context.Context, dir string, def *config.ServiceDef, level models.Level) (*secondary.LevelData, error)
}

func (m *mockDatasetReader) ReadPeriod(ctx context.Context, dir string) (*secondary.PeriodMeta, error) {
	return m.readPeriodFn(ctx, dir)
}

func (m *mockDatasetReader) ReadLevel(ctx context.Context, dir string, def *config.ServiceDef, level models.Level) (*secondary.LevelData, error) {
	return m.readLevelFn(ctx, dir, def, level)
}

// mockReportWriter implements secondary.ReportWriter for testing
type mockReportWriter struct {
	written []*secondary.Report
	err     error
}

func (m *mockReportWriter) WriteReport(ctx context.Context, report *secondary.Report) error {
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, report)
	return nil
}

// mockRollingRepo implements secondary.RollingTotalsRepository for testing
type mockRollingRepo struct {
	upserted []*secondary.RollingTotalRecord
	existing map[string]bool // keyed service|period
	records  []*secondary.RollingTotalRecord
}

func (m *mockRollingRepo) Upsert(ctx context.Context, record *secondary.RollingTotalRecord) error {
	m.upserted = append(m.upserted, record)
	return nil
}

func (m *mockRollingRepo) Exists(ctx context.Context, service, period string) (bool, error) {
	return m.existing[service+"|"+period], nil
}

func (m *mockRollingRepo) List(ctx context.Context, service string) ([]*secondary.RollingTotalRecord, error) {
	return m.records, nil
}

// mockRunRepo implements secondary.RunRepository for testing
type mockRunRepo struct {
	created []*secondary.RunRecord
	records []*secondary.RunRecord
}

func (m *mockRunRepo) Create(ctx context.Context, run *secondary.RunRecord) error {
	m.created = append(m.created, run)
	return nil
}

func (m *mockRunRepo) List(ctx context.Context, limit int) ([]*secondary.RunRecord, error) {
	return m.records, nil
}

// mockAnomalyLog implements secondary.AnomalyLog for testing
type mockAnomalyLog struct {
	logged []suppression.TieAnomaly
}

func (m *mockAnomalyLog) LogTie(ctx context.Context, anomaly suppression.TieAnomaly) {
	m.logged = append(m.logged, anomaly)
}
