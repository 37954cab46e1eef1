package suppression

import "github.com/example/fftpub/internal/models"

// cascadeWidth is the number of children masked under a masked parent.
// Masking only one would leave the parent's value solvable as
// parent total minus the sum of all visible children; masking a second
// removes the single-unknown equation.
const cascadeWidth = 2

// SelectLowestUnmasked returns the IDs of up to n lowest-ranked entities
// whose decision is not already masked, in rank order. It is a pure
// selection over the ranked slice and the current decision set.
func SelectLowestUnmasked(ranked []*models.Entity, decisions models.DecisionSet, n int) []string {
	var ids []string
	for _, e := range ranked {
		if len(ids) == n {
			break
		}
		if decisions[e.ID].Masked() {
			continue
		}
		ids = append(ids, e.ID)
	}
	return ids
}

// applyCascade marks cascade decisions on one ranked sibling group whose
// shared parent is masked. Children already masked for their own reasons
// keep their original reason; among the rest, the two lowest-ranked are
// masked (fewer if fewer exist).
func applyCascade(ranked []*models.Entity, decisions models.DecisionSet) {
	for _, id := range SelectLowestUnmasked(ranked, decisions, cascadeWidth) {
		d := decisions[id]
		d.Reason = models.ReasonCascade
		decisions[id] = d
	}
}
