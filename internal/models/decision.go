package models

// Reason records why an entity is masked. None means the entity is published
// in full.
type Reason int

const (
	// ReasonNone: entity is not masked.
	ReasonNone Reason = iota

	// ReasonFirstLevel: the entity's own total falls in the disclosive
	// range (0, threshold).
	ReasonFirstLevel

	// ReasonSecondLevel: the entity is the lowest-ranked unmasked sibling
	// in a group containing a first-level suppression, masked to block
	// total-minus-visible-siblings reconstruction.
	ReasonSecondLevel

	// ReasonCascade: the entity is one of the two lowest-ranked children
	// of a masked parent, masked to block cross-level reconstruction.
	ReasonCascade
)

// String returns the reason's display name.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonFirstLevel:
		return "first_level"
	case ReasonSecondLevel:
		return "second_level"
	case ReasonCascade:
		return "cascade"
	}
	return "unknown"
}

// Decision is the suppression engine's output for one entity. Decisions are
// append-only: once masked, an entity stays masked for the rest of the run.
type Decision struct {
	EntityID string
	Level    Level
	Reason   Reason

	// RequiresParentCascade is true when this entity's masking must force
	// cascade masking onto its own children at the next level down.
	RequiresParentCascade bool
}

// Masked reports whether the entity's breakdown must be redacted.
func (d Decision) Masked() bool {
	return d.Reason != ReasonNone
}

// DecisionSet holds one decision per entity ID for a full run.
type DecisionSet map[string]Decision

// MaskedCount returns the number of masked decisions at the given level.
func (ds DecisionSet) MaskedCount(level Level) int {
	n := 0
	for _, d := range ds {
		if d.Level == level && d.Masked() {
			n++
		}
	}
	return n
}

// CountByReason returns the number of decisions at the given level with the
// given reason.
func (ds DecisionSet) CountByReason(level Level, reason Reason) int {
	n := 0
	for _, d := range ds {
		if d.Level == level && d.Reason == reason {
			n++
		}
	}
	return n
}
