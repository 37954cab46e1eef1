package app

import (
	"context"
	"testing"

	"github.com/example/fftpub/internal/config"
	"github.com/example/fftpub/internal/models"
	"github.com/example/fftpub/internal/ports/primary"
)

func testEntity(id, parentID string, level models.Level, total int) *models.Entity {
	return &models.Entity{
		ID:             id,
		ParentID:       parentID,
		Level:          level,
		Name:           id,
		TotalResponses: total,
		CategoryCounts: []int{total},
		TieBreakKeys:   []string{id},
	}
}

func TestComputeSuppressionSummaries(t *testing.T) {
	svc := NewSuppressionService(config.DefaultConfig(), &mockAnomalyLog{})

	resp, err := svc.ComputeSuppression(context.Background(), primary.SuppressionRequest{
		EntitiesByLevel: map[models.Level][]*models.Entity{
			models.LevelICB: {
				testEntity("QE1", "", models.LevelICB, 153),
			},
			models.LevelTrust: {
				testEntity("T1", "QE1", models.LevelTrust, 150),
				testEntity("T2", "QE1", models.LevelTrust, 2),
				testEntity("T3", "QE1", models.LevelTrust, 1),
			},
		},
	})
	if err != nil {
		t.Fatalf("ComputeSuppression: %v", err)
	}

	if len(resp.Summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(resp.Summaries))
	}
	trust := resp.Summaries[1]
	if trust.Level != models.LevelTrust {
		t.Fatalf("summary level = %v", trust.Level)
	}
	if trust.Entities != 3 || trust.FirstLevel != 2 || trust.SecondLevel != 1 || trust.Cascade != 0 {
		t.Errorf("trust summary = %+v", trust)
	}
	if trust.Masked() != 3 {
		t.Errorf("Masked() = %d, want 3", trust.Masked())
	}
}

func TestComputeSuppressionThresholdOverride(t *testing.T) {
	svc := NewSuppressionService(config.DefaultConfig(), &mockAnomalyLog{})

	// Total of 8 is visible at the default threshold of 5 but disclosive
	// under an override of 10.
	resp, err := svc.ComputeSuppression(context.Background(), primary.SuppressionRequest{
		EntitiesByLevel: map[models.Level][]*models.Entity{
			models.LevelICB: {testEntity("QE1", "", models.LevelICB, 8)},
		},
		Threshold: 10,
	})
	if err != nil {
		t.Fatalf("ComputeSuppression: %v", err)
	}
	if resp.Decisions["QE1"].Reason != models.ReasonFirstLevel {
		t.Errorf("reason = %v, want first_level", resp.Decisions["QE1"].Reason)
	}
}

func TestComputeSuppressionLogsAnomalies(t *testing.T) {
	log := &mockAnomalyLog{}
	svc := NewSuppressionService(config.DefaultConfig(), log)

	// Identical totals and identical keys: the tie cannot be resolved.
	a := testEntity("W1", "", models.LevelICB, 10)
	b := testEntity("W2", "", models.LevelICB, 10)
	a.TieBreakKeys = []string{"SAME"}
	b.TieBreakKeys = []string{"SAME"}

	resp, err := svc.ComputeSuppression(context.Background(), primary.SuppressionRequest{
		EntitiesByLevel: map[models.Level][]*models.Entity{
			models.LevelICB: {a, b},
		},
	})
	if err != nil {
		t.Fatalf("ComputeSuppression: %v", err)
	}
	if len(resp.Anomalies) != 1 {
		t.Fatalf("anomalies = %d, want 1", len(resp.Anomalies))
	}
	if len(log.logged) != 1 {
		t.Errorf("logged = %d, want 1", len(log.logged))
	}
}

func TestComputeSuppressionValidationError(t *testing.T) {
	svc := NewSuppressionService(config.DefaultConfig(), &mockAnomalyLog{})

	// Trust references a parent missing from the ICB level.
	_, err := svc.ComputeSuppression(context.Background(), primary.SuppressionRequest{
		EntitiesByLevel: map[models.Level][]*models.Entity{
			models.LevelICB:   {testEntity("QE1", "", models.LevelICB, 10)},
			models.LevelTrust: {testEntity("T1", "NOPE", models.LevelTrust, 10)},
		},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}
