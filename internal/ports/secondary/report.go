package secondary

import "context"

// ReportWriter renders a processed period into its published form.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}

// Report is the fully rendered output for one period: redaction has already
// been applied, cell values are final.
type Report struct {
	Path   string
	Title  string
	Period string
	Sheets []Sheet
}

// Sheet is one level's rendered table.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}
