package suppression

import (
	"fmt"

	"github.com/example/fftpub/internal/models"
)

// OrphanError reports an entity whose parent ID does not resolve to any
// entity at the next-higher level. Orphans abort the run: skipping them
// would corrupt cascade correctness.
type OrphanError struct {
	EntityID string
	ParentID string
	Level    models.Level
}

func (e *OrphanError) Error() string {
	return fmt.Sprintf("%s entity %s references unknown parent %q", e.Level, e.EntityID, e.ParentID)
}

// CountMismatchError reports an entity whose category counts do not sum to
// its response total beyond the configured tolerance.
type CountMismatchError struct {
	EntityID string
	Level    models.Level
	Sum      int
	Total    int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s entity %s: category counts sum to %d but total responses is %d",
		e.Level, e.EntityID, e.Sum, e.Total)
}

// DuplicateIDError reports two entities sharing one ID at the same level.
type DuplicateIDError struct {
	EntityID string
	Level    models.Level
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s entity ID %s", e.Level, e.EntityID)
}

// ConfigError reports an engine configuration that suppression is undefined
// for.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid suppression config: %s", e.Reason)
}
