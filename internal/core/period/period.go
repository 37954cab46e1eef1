// Package period handles FFT reporting periods. A period is published as
// "Mon-YY" (e.g. "Aug-24") and derived from a month name plus an NHS fiscal
// year label like "2024-25": April through December fall in the first
// calendar year, January through March in the second.
package period

import (
	"fmt"
	"strings"
)

// Period is one monthly reporting period.
type Period struct {
	Month int // 1-12 calendar month
	Year  int // 4-digit calendar year
}

var monthAbbrev = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var monthByName = map[string]int{
	"JANUARY": 1, "FEBRUARY": 2, "MARCH": 3, "APRIL": 4,
	"MAY": 5, "JUNE": 6, "JULY": 7, "AUGUST": 8,
	"SEPTEMBER": 9, "OCTOBER": 10, "NOVEMBER": 11, "DECEMBER": 12,
}

// FromFiscal builds a period from an upper-case month name and a fiscal year
// label ("2024-25" or "2024_25").
func FromFiscal(monthName, fiscalYear string) (Period, error) {
	month, ok := monthByName[strings.ToUpper(strings.TrimSpace(monthName))]
	if !ok {
		return Period{}, fmt.Errorf("invalid period name %q", monthName)
	}

	normalized := strings.ReplaceAll(fiscalYear, "_", "-")
	parts := strings.Split(normalized, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return Period{}, fmt.Errorf("invalid year format %q, expected 'YYYY-YY'", fiscalYear)
	}
	var startYear int
	if _, err := fmt.Sscanf(parts[0], "%d", &startYear); err != nil {
		return Period{}, fmt.Errorf("invalid year format %q: %w", fiscalYear, err)
	}

	year := startYear
	if month <= 3 {
		year = startYear + 1
	}
	return Period{Month: month, Year: year}, nil
}

// Parse reads a published label like "Aug-24" back into a Period. Two-digit
// years are anchored to the 2000s.
func Parse(label string) (Period, error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period label %q", label)
	}
	month := 0
	for i, abbrev := range monthAbbrev {
		if strings.EqualFold(parts[0], abbrev) {
			month = i + 1
			break
		}
	}
	if month == 0 {
		return Period{}, fmt.Errorf("invalid period label %q", label)
	}
	var yy int
	if _, err := fmt.Sscanf(parts[1], "%d", &yy); err != nil || len(parts[1]) != 2 {
		return Period{}, fmt.Errorf("invalid period label %q", label)
	}
	return Period{Month: month, Year: 2000 + yy}, nil
}

// Label returns the published "Mon-YY" form.
func (p Period) Label() string {
	return fmt.Sprintf("%s-%02d", monthAbbrev[p.Month-1], p.Year%100)
}

// Before reports chronological order.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// SortKey returns a value that sorts chronologically (YYYYMM).
func (p Period) SortKey() int {
	return p.Year*100 + p.Month
}
