package aggregate

import (
	"strings"

	"github.com/example/fftpub/internal/models"
)

// ClassifyProvider tags a trust by name: anything not carrying both "NHS"
// and "TRUST" is treated as an independent sector provider.
func ClassifyProvider(trustName string) models.ProviderType {
	upper := strings.ToUpper(trustName)
	if strings.Contains(upper, "NHS") && strings.Contains(upper, "TRUST") {
		return models.ProviderNHS
	}
	return models.ProviderIndependentSector
}

// TagIndependentSector re-parents independent sector entities under the
// synthetic IS1 ICB so they rank and cascade in their own sibling group,
// mirroring the published report's layout. Only trust-level entities move;
// lower levels follow their trust through the parent chain unchanged.
func TagIndependentSector(trusts []*models.Entity) {
	for _, t := range trusts {
		t.ProviderType = ClassifyProvider(t.Name)
		if t.ProviderType == models.ProviderIndependentSector {
			t.ParentID = models.IndependentSectorICBCode
		}
	}
}
