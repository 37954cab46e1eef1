// Package excel renders a processed period to an Excel workbook, one sheet
// per published level plus a Notes sheet.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/example/fftpub/internal/ports/secondary"
)

// Writer implements secondary.ReportWriter with excelize.
type Writer struct{}

// NewWriter creates a new Excel report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport writes the workbook to report.Path, replacing any existing
// file. Cell values are written as-is; redaction markers arrive as strings.
func (w *Writer) WriteReport(ctx context.Context, report *secondary.Report) error {
	if report.Path == "" {
		return fmt.Errorf("report path must be pre-populated by service layer")
	}
	if len(report.Sheets) == 0 {
		return fmt.Errorf("report has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeNotes(f, report); err != nil {
		return err
	}

	for _, sheet := range report.Sheets {
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	// The default sheet excelize creates is replaced by Notes.
	if err := f.SaveAs(report.Path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

func writeNotes(f *excelize.File, report *secondary.Report) error {
	const defaultSheet = "Sheet1"
	if err := f.SetSheetName(defaultSheet, "Notes"); err != nil {
		return fmt.Errorf("failed to create Notes sheet: %w", err)
	}

	rows := [][]any{
		{report.Title},
		{fmt.Sprintf("Reporting period: %s", report.Period)},
		{},
		{"Figures shown as * have been suppressed to prevent disclosure of small numbers."},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address Notes cell: %w", err)
		}
		if err := f.SetSheetRow("Notes", cell, &row); err != nil {
			return fmt.Errorf("failed to write Notes row: %w", err)
		}
	}

	return nil
}

func writeSheet(f *excelize.File, sheet secondary.Sheet) error {
	if _, err := f.NewSheet(sheet.Name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
	}

	header := make([]any, len(sheet.Header))
	for i, h := range sheet.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet.Name, err)
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address %s cell: %w", sheet.Name, err)
		}
		row := row
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet.Name, i+1, err)
		}
	}

	return nil
}
