// Package aggregate contains the pure rollup arithmetic for the FFT
// hierarchy: summing child category counts into parent entities, computing
// positive/negative percentages, and building the England totals rows.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/example/fftpub/internal/models"
)

// Totals is a plain sum of response figures over a set of entities.
type Totals struct {
	TotalResponses int
	TotalEligible  int
	CategoryCounts []int
	EntityCount    int
}

// add accumulates one entity into the totals.
func (t *Totals) add(e *models.Entity) error {
	if t.CategoryCounts == nil {
		t.CategoryCounts = make([]int, len(e.CategoryCounts))
	}
	if len(e.CategoryCounts) != len(t.CategoryCounts) {
		return fmt.Errorf("entity %s has %d categories, expected %d",
			e.ID, len(e.CategoryCounts), len(t.CategoryCounts))
	}
	for i, c := range e.CategoryCounts {
		t.CategoryCounts[i] += c
	}
	t.TotalResponses += e.TotalResponses
	t.TotalEligible += e.TotalEligible
	t.EntityCount++
	return nil
}

// Parents rolls children up into one entity per distinct parent ID at the
// given level. Parent display names are looked up in names (falling back to
// the parent ID); a parent is tagged independent sector only when every one
// of its children is. Output order is stable: ascending by parent ID.
func Parents(children []*models.Entity, level models.Level, names map[string]string) ([]*models.Entity, error) {
	totals := make(map[string]*Totals)
	allIndependent := make(map[string]bool)
	var order []string

	for _, child := range children {
		id := child.ParentID
		if id == "" {
			return nil, fmt.Errorf("%s entity %s has no parent to roll up into", child.Level, child.ID)
		}
		t, ok := totals[id]
		if !ok {
			t = &Totals{}
			totals[id] = t
			allIndependent[id] = true
			order = append(order, id)
		}
		if err := t.add(child); err != nil {
			return nil, fmt.Errorf("rolling up to %s %s: %w", level, id, err)
		}
		if child.ProviderType != models.ProviderIndependentSector {
			allIndependent[id] = false
		}
	}

	sort.Strings(order)

	parents := make([]*models.Entity, 0, len(order))
	for _, id := range order {
		t := totals[id]
		name := names[id]
		if name == "" {
			name = id
		}
		provider := models.ProviderNHS
		if allIndependent[id] {
			provider = models.ProviderIndependentSector
		}
		parents = append(parents, &models.Entity{
			ID:             id,
			Level:          level,
			Name:           name,
			TotalResponses: t.TotalResponses,
			TotalEligible:  t.TotalEligible,
			CategoryCounts: t.CategoryCounts,
			TieBreakKeys:   []string{name},
			ProviderType:   provider,
		})
	}
	return parents, nil
}

// National sums a level's entities into England totals, both including and
// excluding independent sector providers.
func National(entities []*models.Entity) (including, excluding Totals, err error) {
	for _, e := range entities {
		if addErr := including.add(e); addErr != nil {
			return Totals{}, Totals{}, addErr
		}
		if e.ProviderType != models.ProviderIndependentSector {
			if addErr := excluding.add(e); addErr != nil {
				return Totals{}, Totals{}, addErr
			}
		}
	}
	return including, excluding, nil
}

// Percentages computes the positive and negative response proportions for
// one breakdown. positiveIdx and negativeIdx name the category positions
// counted in each numerator; "don't know" style categories belong to
// neither. A zero total yields zero for both.
func Percentages(counts []int, total int, positiveIdx, negativeIdx []int) (positive, negative float64) {
	if total == 0 {
		return 0, 0
	}
	var pos, neg int
	for _, i := range positiveIdx {
		if i >= 0 && i < len(counts) {
			pos += counts[i]
		}
	}
	for _, i := range negativeIdx {
		if i >= 0 && i < len(counts) {
			neg += counts[i]
		}
	}
	return float64(pos) / float64(total), float64(neg) / float64(total)
}
