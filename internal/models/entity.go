package models

// ProviderType distinguishes the two provider populations tracked separately
// in national rollups. The suppression engine passes it through untouched.
type ProviderType string

const (
	ProviderNHS               ProviderType = "nhs"
	ProviderIndependentSector ProviderType = "independent_sector"
)

// IndependentSectorICBCode is the synthetic ICB that independent sector
// providers are re-parented under before suppression.
const IndependentSectorICBCode = "IS1"

// IndependentSectorICBName is the display name for the synthetic ICB.
const IndependentSectorICBName = "INDEPENDENT SECTOR PROVIDERS"

// Entity is one aggregated unit (ICB, Trust, Site, or Ward) for one
// processing period. TotalResponses and CategoryCounts are ground truth and
// are never altered by masking; redaction happens only at render time.
type Entity struct {
	ID       string
	ParentID string // empty for the topmost level processed
	Level    Level
	Name     string

	// TotalResponses is the true response total for the entity.
	TotalResponses int

	// CategoryCounts holds per-category response counts in the service
	// type's category order. Must sum to TotalResponses.
	CategoryCounts []int

	// TieBreakKeys are the level-specific secondary sort keys used only to
	// break ranking ties, applied in order after TotalResponses.
	TieBreakKeys []string

	// TotalEligible is the number of people eligible to respond. Carried
	// through aggregation, unused by suppression.
	TotalEligible int

	ProviderType ProviderType
}

// SiblingKey identifies the sibling group an entity ranks within: same
// parent, same level.
type SiblingKey struct {
	ParentID string
	Level    Level
}

// Siblings groups entities of one level by parent ID. Entity order within
// each group follows input order; ranking is applied separately.
func Siblings(entities []*Entity) map[SiblingKey][]*Entity {
	groups := make(map[SiblingKey][]*Entity)
	for _, e := range entities {
		key := SiblingKey{ParentID: e.ParentID, Level: e.Level}
		groups[key] = append(groups[key], e)
	}
	return groups
}
