// Package cli contains terminal-facing adapters.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/fftpub/internal/core/suppression"
)

// AnomalyLog writes warning-level data anomalies to the terminal.
type AnomalyLog struct {
	out io.Writer
}

// NewAnomalyLog creates an anomaly log writing to out.
func NewAnomalyLog(out io.Writer) *AnomalyLog {
	return &AnomalyLog{out: out}
}

// LogTie reports an unresolved ranking tie. Processing continues; the
// warning tells the operator which pair fell back to identifier order.
func (l *AnomalyLog) LogTie(ctx context.Context, anomaly suppression.TieAnomaly) {
	warn := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(l.out, "%s unresolved ranking tie at %s level (parent %s): %s vs %s, ordered by identifier\n",
		warn("Warning:"), anomaly.Level, anomaly.ParentID, anomaly.EntityA, anomaly.EntityB)
}
