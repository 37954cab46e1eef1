// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import (
	"context"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/models"
)

// DatasetReader loads one period's already-aggregated per-level records.
type DatasetReader interface {
	// ReadPeriod reads the period metadata for the input directory.
	ReadPeriod(ctx context.Context, dir string) (*PeriodMeta, error)

	// ReadLevel reads one level's entities. The service definition
	// supplies the category order and tie-break fields.
	ReadLevel(ctx context.Context, dir string, def *config.ServiceDef, level models.Level) (*LevelData, error)
}

// PeriodMeta identifies the reporting period of a dataset, as supplied by
// the submission (month name plus fiscal year label).
type PeriodMeta struct {
	PeriodName string `json:"period_name"` // e.g. "AUGUST"
	YearNumber string `json:"year_number"` // e.g. "2024-25"
}

// LevelData is one level's entities plus the display names of their
// parents, used when the parent level is derived by rollup rather than
// supplied in the dataset.
type LevelData struct {
	Entities    []*models.Entity
	ParentNames map[string]string
}
