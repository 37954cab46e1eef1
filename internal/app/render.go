package app

import (
	"fmt"
	"math"
	"sort"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/core/aggregate"
	"github.com/example/fftpub/internal/core/period"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/secondary"
)

// buildReport renders the suppressed batch into its published workbook form.
// Redaction happens here and only here: the entities still carry their true
// figures.
//
// Redaction policy per masked entity:
//   - category counts are always replaced by the marker
//   - percentages are replaced only for first-level suppression, where the
//     breakdown itself is disclosive; derived masks keep their percentages
//   - the response total follows the RedactTotals setting
func buildReport(def *config.ServiceDef, cfg *config.Config, p period.Period, batch map[models.Level][]*models.Entity, decisions models.DecisionSet, path string) (*secondary.Report, error) {
	report := &secondary.Report{
		Path:   path,
		Title:  reportTitle(def),
		Period: p.Label(),
	}

	levels := def.ParsedLevels()
	for i, level := range levels {
		entities := batch[level]
		sheet := secondary.Sheet{
			Name:   def.SheetName(level),
			Header: sheetHeader(def),
		}
		for _, e := range sortForPublication(entities) {
			sheet.Rows = append(sheet.Rows, renderRow(e, decisions[e.ID], def, cfg))
		}

		// England totals publish on the topmost sheet, never masked.
		if i == 0 {
			including, excluding, err := aggregate.National(entities)
			if err != nil {
				return nil, fmt.Errorf("failed to total national figures: %w", err)
			}
			sheet.Rows = append(sheet.Rows,
				nationalRow("England (including independent sector)", including, def),
				nationalRow("England (excluding independent sector)", excluding, def),
			)
		}

		report.Sheets = append(report.Sheets, sheet)
	}

	return report, nil
}

func reportTitle(def *config.ServiceDef) string {
	if def.ReportTitle != "" {
		return def.ReportTitle
	}
	return fmt.Sprintf("Friends and Family Test - %s", def.DisplayName)
}

func sheetHeader(def *config.ServiceDef) []string {
	header := []string{"Code", "Name", "Total Eligible", "Total Responses"}
	header = append(header, def.Categories...)
	return append(header, "% Positive", "% Negative")
}

// sortForPublication orders a level's rows: NHS entities by name, then
// independent sector entities by name, ID as the final tie break. The input
// is left untouched.
func sortForPublication(entities []*models.Entity) []*models.Entity {
	sorted := make([]*models.Entity, len(entities))
	copy(sorted, entities)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		aIS := a.ProviderType == models.ProviderIndependentSector
		bIS := b.ProviderType == models.ProviderIndependentSector
		if aIS != bIS {
			return !aIS
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return sorted
}

func renderRow(e *models.Entity, d models.Decision, def *config.ServiceDef, cfg *config.Config) []any {
	marker := cfg.RedactionMarker
	masked := d.Masked()

	row := []any{e.ID, e.Name, e.TotalEligible}
	if masked && cfg.RedactTotals {
		row = append(row, marker)
	} else {
		row = append(row, e.TotalResponses)
	}

	for _, count := range e.CategoryCounts {
		if masked {
			row = append(row, marker)
		} else {
			row = append(row, count)
		}
	}

	if d.Reason == models.ReasonFirstLevel {
		return append(row, marker, marker)
	}
	positive, negative := aggregate.Percentages(e.CategoryCounts, e.TotalResponses, def.PositiveCategories, def.NegativeCategories)
	return append(row, formatPercent(positive), formatPercent(negative))
}

func nationalRow(name string, totals aggregate.Totals, def *config.ServiceDef) []any {
	row := []any{"", name, totals.TotalEligible, totals.TotalResponses}
	for _, count := range totals.CategoryCounts {
		row = append(row, count)
	}
	if totals.CategoryCounts == nil {
		for range def.Categories {
			row = append(row, 0)
		}
	}
	positive, negative := aggregate.Percentages(totals.CategoryCounts, totals.TotalResponses, def.PositiveCategories, def.NegativeCategories)
	return append(row, formatPercent(positive), formatPercent(negative))
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(fraction*100)))
}
