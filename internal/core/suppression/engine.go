package suppression

import "github.com/example/fftpub/internal/models"

// DefaultThreshold is the standard disclosure threshold: totals in (0, 5)
// are disclosive.
const DefaultThreshold = 5

// Config is the engine's configuration surface. It is passed explicitly per
// run; the engine keeps no ambient state.
type Config struct {
	// Threshold is the first-level suppression cutoff. Must be at least 2
	// for second-level suppression to be meaningful.
	Threshold int

	// Tolerance is the maximum allowed absolute difference between an
	// entity's category-count sum and its declared response total.
	Tolerance int
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Validate checks the configuration at startup.
func (c Config) Validate() error {
	if c.Threshold < 2 {
		return &ConfigError{Reason: "threshold must be at least 2"}
	}
	if c.Tolerance < 0 {
		return &ConfigError{Reason: "tolerance must not be negative"}
	}
	return nil
}

// Batch is the full set of entities for one processing period, grouped by
// hierarchy level. Levels may be absent (the ambulance service publishes a
// single level); present levels must form a contiguous prefix of the
// hierarchy so every child level has its parent level in the batch.
type Batch map[models.Level][]*models.Entity

// Result carries a decision for every entity in the batch plus any ranking
// anomalies encountered. Anomalies are warnings: the run completed with the
// documented ID fallback ordering, but the caller must log them.
type Result struct {
	Decisions models.DecisionSet
	Anomalies []TieAnomaly
}

// ComputeSuppression runs the full first-level, second-level, and cascade
// suppression pass over a batch and returns a decision for every entity.
//
// Levels are processed strictly top-down (ICB before Trust before Site
// before Ward). Per level: first the level's own sibling-group suppression,
// then cascade marks from the completed parent-level decisions, so a
// parent's inherited cascade status is final before it triggers its
// children. Decisions are append-only: once masked, an entity stays masked.
//
// The input is never mutated; identical input yields identical output.
func ComputeSuppression(batch Batch, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateBatch(batch, cfg.Tolerance); err != nil {
		return nil, err
	}

	decisions := make(models.DecisionSet)
	for _, level := range models.Levels {
		for _, e := range batch[level] {
			decisions[e.ID] = models.Decision{EntityID: e.ID, Level: level}
		}
	}

	result := &Result{Decisions: decisions}

	var parentLevelPresent bool
	for _, level := range models.Levels {
		entities := batch[level]
		if len(entities) == 0 {
			parentLevelPresent = false
			continue
		}

		// Rank every sibling group once; the same order serves the
		// level's own suppression and the cascade selection.
		rankedGroups := make(map[string][]*models.Entity)
		for key, group := range models.Siblings(entities) {
			ranked, anomalies := Rank(group)
			result.Anomalies = append(result.Anomalies, anomalies...)
			rankedGroups[key.ParentID] = ranked
			applyLevelSuppression(ranked, cfg.Threshold, decisions)
		}

		if parentLevelPresent {
			for parentID, ranked := range rankedGroups {
				if decisions[parentID].Masked() {
					applyCascade(ranked, decisions)
				}
			}
		}

		// A masked entity at any level with children below it forces
		// cascade masking onto those children.
		if child, ok := level.Child(); ok && len(batch[child]) > 0 {
			for _, e := range entities {
				if d := decisions[e.ID]; d.Masked() {
					d.RequiresParentCascade = true
					decisions[e.ID] = d
				}
			}
		}

		parentLevelPresent = true
	}

	return result, nil
}

// validateBatch checks referential integrity before any decision is made: a
// single bad entity aborts the whole run rather than producing partially
// correct suppressed output.
func validateBatch(batch Batch, tolerance int) error {
	idsByLevel := make(map[models.Level]map[string]bool)
	for _, level := range models.Levels {
		ids := make(map[string]bool, len(batch[level]))
		for _, e := range batch[level] {
			if ids[e.ID] {
				return &DuplicateIDError{EntityID: e.ID, Level: level}
			}
			ids[e.ID] = true

			sum := 0
			for _, c := range e.CategoryCounts {
				sum += c
			}
			diff := sum - e.TotalResponses
			if diff < 0 {
				diff = -diff
			}
			if diff > tolerance {
				return &CountMismatchError{
					EntityID: e.ID,
					Level:    level,
					Sum:      sum,
					Total:    e.TotalResponses,
				}
			}
		}
		idsByLevel[level] = ids
	}

	var parent models.Level
	var haveParent bool
	for _, level := range models.Levels {
		if len(batch[level]) == 0 {
			haveParent = false
			continue
		}
		if haveParent {
			parentIDs := idsByLevel[parent]
			for _, e := range batch[level] {
				if !parentIDs[e.ParentID] {
					return &OrphanError{EntityID: e.ID, ParentID: e.ParentID, Level: level}
				}
			}
		}
		parent = level
		haveParent = true
	}

	return nil
}
