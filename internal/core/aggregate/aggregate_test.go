package aggregate

import (
	"math"
	"testing"

	"github.com/example/fftpub/internal/models"
)

func trust(id, parentID, name string, counts []int, eligible int) *models.Entity {
	total := 0
	for _, c := range counts {
		total += c
	}
	return &models.Entity{
		ID:             id,
		ParentID:       parentID,
		Level:          models.LevelTrust,
		Name:           name,
		TotalResponses: total,
		TotalEligible:  eligible,
		CategoryCounts: counts,
		ProviderType:   models.ProviderNHS,
	}
}

func TestParentsSumsChildrenPerParent(t *testing.T) {
	children := []*models.Entity{
		trust("T1", "ICB2", "Beta Trust", []int{10, 5, 1, 2, 1, 1}, 100),
		trust("T2", "ICB1", "Alpha Trust", []int{20, 10, 2, 4, 2, 2}, 200),
		trust("T3", "ICB1", "Gamma Trust", []int{5, 5, 0, 0, 0, 0}, 50),
	}
	names := map[string]string{"ICB1": "North ICB", "ICB2": "South ICB"}

	parents, err := Parents(children, models.LevelICB, names)
	if err != nil {
		t.Fatalf("Parents: %v", err)
	}

	if len(parents) != 2 {
		t.Fatalf("parents = %d, want 2", len(parents))
	}
	// Stable order: ascending by ID.
	if parents[0].ID != "ICB1" || parents[1].ID != "ICB2" {
		t.Fatalf("order = %s, %s, want ICB1, ICB2", parents[0].ID, parents[1].ID)
	}

	north := parents[0]
	if north.Name != "North ICB" {
		t.Errorf("name = %q, want North ICB", north.Name)
	}
	if north.TotalResponses != 50 {
		t.Errorf("total = %d, want 50", north.TotalResponses)
	}
	if north.TotalEligible != 250 {
		t.Errorf("eligible = %d, want 250", north.TotalEligible)
	}
	wantCounts := []int{25, 15, 2, 4, 2, 2}
	for i, c := range wantCounts {
		if north.CategoryCounts[i] != c {
			t.Errorf("counts[%d] = %d, want %d", i, north.CategoryCounts[i], c)
		}
	}
	if north.Level != models.LevelICB {
		t.Errorf("level = %s, want icb", north.Level)
	}
}

func TestParentsFallsBackToIDForUnknownName(t *testing.T) {
	children := []*models.Entity{trust("T1", "IS1", "Private Clinic Ltd", []int{3}, 10)}

	parents, err := Parents(children, models.LevelICB, nil)
	if err != nil {
		t.Fatalf("Parents: %v", err)
	}
	if parents[0].Name != "IS1" {
		t.Errorf("name = %q, want IS1", parents[0].Name)
	}
}

func TestParentsProviderTypeRollsUp(t *testing.T) {
	nhs := trust("T1", "ICB1", "NHS Trust", []int{5}, 10)
	ind := trust("T2", "IS1", "Private Ltd", []int{5}, 10)
	ind.ProviderType = models.ProviderIndependentSector
	mixed := trust("T3", "ICB1", "Private Ltd", []int{5}, 10)
	mixed.ProviderType = models.ProviderIndependentSector

	parents, err := Parents([]*models.Entity{nhs, ind, mixed}, models.LevelICB, nil)
	if err != nil {
		t.Fatalf("Parents: %v", err)
	}

	byID := map[string]*models.Entity{}
	for _, p := range parents {
		byID[p.ID] = p
	}
	if byID["ICB1"].ProviderType != models.ProviderNHS {
		t.Errorf("mixed parent provider = %s, want nhs", byID["ICB1"].ProviderType)
	}
	if byID["IS1"].ProviderType != models.ProviderIndependentSector {
		t.Errorf("IS1 provider = %s, want independent_sector", byID["IS1"].ProviderType)
	}
}

func TestParentsRejectsInconsistentCategoryWidth(t *testing.T) {
	children := []*models.Entity{
		trust("T1", "ICB1", "A", []int{1, 2}, 0),
		trust("T2", "ICB1", "B", []int{1, 2, 3}, 0),
	}

	if _, err := Parents(children, models.LevelICB, nil); err == nil {
		t.Fatal("expected category width error, got nil")
	}
}

func TestParentsRejectsMissingParentID(t *testing.T) {
	children := []*models.Entity{trust("T1", "", "A", []int{1}, 0)}

	if _, err := Parents(children, models.LevelICB, nil); err == nil {
		t.Fatal("expected missing-parent error, got nil")
	}
}

func TestNationalSplitsIndependentSector(t *testing.T) {
	nhs1 := trust("T1", "ICB1", "NHS Trust A", []int{10, 10}, 100)
	nhs2 := trust("T2", "ICB1", "NHS Trust B", []int{5, 5}, 50)
	ind := trust("T3", "IS1", "Private Ltd", []int{2, 2}, 20)
	ind.ProviderType = models.ProviderIndependentSector

	including, excluding, err := National([]*models.Entity{nhs1, nhs2, ind})
	if err != nil {
		t.Fatalf("National: %v", err)
	}

	if including.TotalResponses != 34 || including.EntityCount != 3 {
		t.Errorf("including = %d responses over %d orgs, want 34 over 3",
			including.TotalResponses, including.EntityCount)
	}
	if excluding.TotalResponses != 30 || excluding.EntityCount != 2 {
		t.Errorf("excluding = %d responses over %d orgs, want 30 over 2",
			excluding.TotalResponses, excluding.EntityCount)
	}
	if including.CategoryCounts[0] != 17 || excluding.CategoryCounts[0] != 15 {
		t.Errorf("category sums = %d/%d, want 17/15",
			including.CategoryCounts[0], excluding.CategoryCounts[0])
	}
}

func TestPercentages(t *testing.T) {
	// Inpatient order: very good, good, neither, poor, very poor, don't know.
	counts := []int{60, 20, 5, 8, 2, 5}
	positive := []int{0, 1}
	negative := []int{3, 4}

	pos, neg := Percentages(counts, 100, positive, negative)

	if math.Abs(pos-0.80) > 1e-9 {
		t.Errorf("positive = %f, want 0.80", pos)
	}
	if math.Abs(neg-0.10) > 1e-9 {
		t.Errorf("negative = %f, want 0.10", neg)
	}
}

func TestPercentagesZeroTotal(t *testing.T) {
	pos, neg := Percentages([]int{0, 0}, 0, []int{0}, []int{1})
	if pos != 0 || neg != 0 {
		t.Errorf("zero total = %f/%f, want 0/0", pos, neg)
	}
}

func TestClassifyProvider(t *testing.T) {
	tests := []struct {
		name string
		want models.ProviderType
	}{
		{"GUY'S AND ST THOMAS' NHS FOUNDATION TRUST", models.ProviderNHS},
		{"Leeds Teaching Hospitals NHS Trust", models.ProviderNHS},
		{"Nuffield Health Leeds Hospital", models.ProviderIndependentSector},
		{"Spire Healthcare Ltd", models.ProviderIndependentSector},
		// "Trust" without NHS is still independent.
		{"Ramsay Trust Hospital", models.ProviderIndependentSector},
	}

	for _, tt := range tests {
		if got := ClassifyProvider(tt.name); got != tt.want {
			t.Errorf("ClassifyProvider(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestTagIndependentSectorReparents(t *testing.T) {
	nhs := trust("T1", "ICB1", "Leeds Teaching Hospitals NHS Trust", []int{5}, 10)
	ind := trust("T2", "ICB1", "Spire Healthcare Ltd", []int{5}, 10)

	TagIndependentSector([]*models.Entity{nhs, ind})

	if nhs.ParentID != "ICB1" || nhs.ProviderType != models.ProviderNHS {
		t.Errorf("NHS trust changed: parent=%s provider=%s", nhs.ParentID, nhs.ProviderType)
	}
	if ind.ParentID != models.IndependentSectorICBCode {
		t.Errorf("independent trust parent = %s, want IS1", ind.ParentID)
	}
	if ind.ProviderType != models.ProviderIndependentSector {
		t.Errorf("independent trust provider = %s", ind.ProviderType)
	}
}
