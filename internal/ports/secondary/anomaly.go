package secondary

import (
	"context"

	"github.com/example/fftpub/internal/core/suppression"
)

// AnomalyLog surfaces warning-level data anomalies to the operator. The
// engine itself stays pure and returns anomalies; services push them
// through this port.
type AnomalyLog interface {
	// LogTie reports an unresolved ranking tie that fell back to ID order.
	LogTie(ctx context.Context, anomaly suppression.TieAnomaly)
}
