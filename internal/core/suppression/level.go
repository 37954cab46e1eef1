package suppression

import "github.com/example/fftpub/internal/models"

// applyLevelSuppression marks FirstLevel and SecondLevel decisions within
// one ranked sibling group.
//
// FirstLevel: every entity with 0 < total < threshold, no cap. Zero-total
// entities are never FirstLevel candidates.
//
// SecondLevel: if the group contains at least one FirstLevel entity, the
// lowest-ranked entity not itself marked FirstLevel is masked as well,
// regardless of its magnitude. Without it the suppressed value could be
// recovered as group total minus visible siblings. A zero-total entity can
// be the SecondLevel pick. Groups of size one, and groups where every
// member is FirstLevel, get no SecondLevel mark.
//
// This runs before cascade marks arrive from the parent level, so the only
// reasons present in the group at this point are None and FirstLevel.
func applyLevelSuppression(ranked []*models.Entity, threshold int, decisions models.DecisionSet) {
	anyFirstLevel := false
	for _, e := range ranked {
		if e.TotalResponses > 0 && e.TotalResponses < threshold {
			d := decisions[e.ID]
			d.Reason = models.ReasonFirstLevel
			decisions[e.ID] = d
			anyFirstLevel = true
		}
	}

	if !anyFirstLevel || len(ranked) < 2 {
		return
	}

	for _, e := range ranked {
		if decisions[e.ID].Reason == models.ReasonFirstLevel {
			continue
		}
		d := decisions[e.ID]
		d.Reason = models.ReasonSecondLevel
		decisions[e.ID] = d
		return
	}
}
