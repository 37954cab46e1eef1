// Package suppression contains the pure statistical disclosure control
// engine for published FFT figures. It decides, for every entity at every
// hierarchy level, whether its response breakdown must be masked, and
// propagates masking both within sibling groups (second-level suppression)
// and across levels (cascade suppression) so that finer-grained figures can
// never be summed to reconstruct a masked coarser one.
//
// The engine is a pure in-memory computation: it never mutates input
// entities and never performs I/O. Anomalies are returned to the caller for
// logging rather than logged here.
package suppression

import (
	"sort"

	"github.com/example/fftpub/internal/models"
)

// TieAnomaly records two sibling entities that remained fully equal after
// exhausting every tie-break key. The engine falls back to ordering by
// entity ID so the run stays deterministic, but the tie must be surfaced to
// the caller, never resolved silently.
type TieAnomaly struct {
	Level    models.Level
	ParentID string
	EntityA  string
	EntityB  string
}

// Rank orders a sibling group ascending by total responses (smallest, most
// disclosure-risky first), breaking ties with each tie-break key in turn and
// finally by entity ID. The input slice is not modified.
//
// Any pair still equal after all tie-break keys is reported as a TieAnomaly.
func Rank(group []*models.Entity) ([]*models.Entity, []TieAnomaly) {
	ranked := make([]*models.Entity, len(group))
	copy(ranked, group)

	sort.SliceStable(ranked, func(i, j int) bool {
		return compareEntities(ranked[i], ranked[j]) < 0
	})

	var anomalies []TieAnomaly
	for i := 1; i < len(ranked); i++ {
		a, b := ranked[i-1], ranked[i]
		if a.TotalResponses == b.TotalResponses && equalKeys(a.TieBreakKeys, b.TieBreakKeys) {
			anomalies = append(anomalies, TieAnomaly{
				Level:    b.Level,
				ParentID: b.ParentID,
				EntityA:  a.ID,
				EntityB:  b.ID,
			})
		}
	}

	return ranked, anomalies
}

// compareEntities orders by (total responses, tie-break keys..., ID).
// The ID comparison is the documented stable fallback for full-key ties.
func compareEntities(a, b *models.Entity) int {
	if a.TotalResponses != b.TotalResponses {
		if a.TotalResponses < b.TotalResponses {
			return -1
		}
		return 1
	}

	n := len(a.TieBreakKeys)
	if len(b.TieBreakKeys) < n {
		n = len(b.TieBreakKeys)
	}
	for i := 0; i < n; i++ {
		if a.TieBreakKeys[i] != b.TieBreakKeys[i] {
			if a.TieBreakKeys[i] < b.TieBreakKeys[i] {
				return -1
			}
			return 1
		}
	}
	if len(a.TieBreakKeys) != len(b.TieBreakKeys) {
		if len(a.TieBreakKeys) < len(b.TieBreakKeys) {
			return -1
		}
		return 1
	}

	if a.ID != b.ID {
		if a.ID < b.ID {
			return -1
		}
		return 1
	}
	return 0
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
