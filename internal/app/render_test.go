package app

import (
	"testing"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/core/period"
	"github.com/example/fftpub/internal/models"
)

func renderEntity(id, name string, total int, counts []int) *models.Entity {
	return &models.Entity{
		ID:             id,
		ParentID:       "",
		Level:          models.LevelICB,
		Name:           name,
		TotalResponses: total,
		TotalEligible:  total * 2,
		CategoryCounts: counts,
		TieBreakKeys:   []string{name},
	}
}

func ambulanceDef(t *testing.T) *config.ServiceDef {
	t.Helper()
	def, err := config.Service("ambulance")
	if err != nil {
		t.Fatalf("failed to load service definition: %v", err)
	}
	return def
}

func TestBuildReportRedaction(t *testing.T) {
	def := ambulanceDef(t)
	cfg := config.DefaultConfig()
	p := period.Period{Month: 8, Year: 2024}

	visible := renderEntity("QE1", "ICB ONE", 100, []int{70, 20, 5, 3, 1, 1})
	firstLevel := renderEntity("QE2", "ICB TWO", 3, []int{2, 1, 0, 0, 0, 0})
	cascade := renderEntity("QE3", "ICB THREE", 50, []int{40, 5, 3, 1, 1, 0})

	batch := map[models.Level][]*models.Entity{
		models.LevelICB: {visible, firstLevel, cascade},
	}
	decisions := models.DecisionSet{
		"QE1": {EntityID: "QE1", Level: models.LevelICB},
		"QE2": {EntityID: "QE2", Level: models.LevelICB, Reason: models.ReasonFirstLevel},
		"QE3": {EntityID: "QE3", Level: models.LevelICB, Reason: models.ReasonCascade},
	}

	report, err := buildReport(def, cfg, p, batch, decisions, "/tmp/out.xlsx")
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}

	if report.Period != "Aug-24" {
		t.Errorf("period = %q", report.Period)
	}
	if report.Title != "Ambulance Friends and Family Test (FFT) Data" {
		t.Errorf("title = %q", report.Title)
	}

	sheet := report.Sheets[0]
	if sheet.Name != "ICB" {
		t.Errorf("sheet name = %q", sheet.Name)
	}

	// Rows sort by name; the England totals rows follow.
	if len(sheet.Rows) != 5 {
		t.Fatalf("rows = %d, want 5", len(sheet.Rows))
	}
	rowByID := map[string][]any{}
	for _, row := range sheet.Rows[:3] {
		rowByID[row[0].(string)] = row
	}

	// Visible entity publishes in full.
	v := rowByID["QE1"]
	if v[3] != 100 || v[4] != 70 {
		t.Errorf("visible row = %v", v)
	}
	if v[10] != "90%" || v[11] != "4%" {
		t.Errorf("visible percentages = %v, %v", v[10], v[11])
	}

	// First-level: counts and percentages starred, total visible by default.
	f := rowByID["QE2"]
	if f[3] != 3 {
		t.Errorf("first-level total = %v, want visible 3", f[3])
	}
	for i := 4; i <= 9; i++ {
		if f[i] != "*" {
			t.Errorf("first-level count[%d] = %v, want *", i, f[i])
		}
	}
	if f[10] != "*" || f[11] != "*" {
		t.Errorf("first-level percentages = %v, %v, want starred", f[10], f[11])
	}

	// Cascade: counts starred, percentages kept.
	c := rowByID["QE3"]
	for i := 4; i <= 9; i++ {
		if c[i] != "*" {
			t.Errorf("cascade count[%d] = %v, want *", i, c[i])
		}
	}
	if c[10] != "90%" || c[11] != "4%" {
		t.Errorf("cascade percentages = %v, %v", c[10], c[11])
	}
}

func TestBuildReportRedactTotalsPolicy(t *testing.T) {
	def := ambulanceDef(t)
	cfg := config.DefaultConfig()
	cfg.RedactTotals = true
	p := period.Period{Month: 8, Year: 2024}

	masked := renderEntity("QE2", "ICB TWO", 3, []int{2, 1, 0, 0, 0, 0})
	batch := map[models.Level][]*models.Entity{models.LevelICB: {masked}}
	decisions := models.DecisionSet{
		"QE2": {EntityID: "QE2", Level: models.LevelICB, Reason: models.ReasonFirstLevel},
	}

	report, err := buildReport(def, cfg, p, batch, decisions, "/tmp/out.xlsx")
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}
	if report.Sheets[0].Rows[0][3] != "*" {
		t.Errorf("total = %v, want starred", report.Sheets[0].Rows[0][3])
	}
}

func TestBuildReportNationalTotalsUnmasked(t *testing.T) {
	def := ambulanceDef(t)
	cfg := config.DefaultConfig()
	p := period.Period{Month: 8, Year: 2024}

	nhs := renderEntity("QE1", "ICB ONE", 3, []int{3, 0, 0, 0, 0, 0})
	is := renderEntity("IS1", "INDEPENDENT SECTOR PROVIDERS", 10, []int{10, 0, 0, 0, 0, 0})
	is.ProviderType = models.ProviderIndependentSector

	batch := map[models.Level][]*models.Entity{models.LevelICB: {is, nhs}}
	decisions := models.DecisionSet{
		"QE1": {EntityID: "QE1", Level: models.LevelICB, Reason: models.ReasonFirstLevel},
		"IS1": {EntityID: "IS1", Level: models.LevelICB},
	}

	report, err := buildReport(def, cfg, p, batch, decisions, "/tmp/out.xlsx")
	if err != nil {
		t.Fatalf("buildReport: %v", err)
	}

	rows := report.Sheets[0].Rows
	if len(rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rows))
	}

	// Independent sector sorts after NHS despite name order.
	if rows[0][0] != "QE1" || rows[1][0] != "IS1" {
		t.Errorf("row order = %v, %v", rows[0][0], rows[1][0])
	}

	// England rows carry true totals even when entities are masked.
	including, excluding := rows[2], rows[3]
	if including[1] != "England (including independent sector)" || including[3] != 13 {
		t.Errorf("including row = %v", including)
	}
	if excluding[1] != "England (excluding independent sector)" || excluding[3] != 3 {
		t.Errorf("excluding row = %v", excluding)
	}
}
