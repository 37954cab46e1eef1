package period

import "testing"

func TestFromFiscal(t *testing.T) {
	tests := []struct {
		month     string
		year      string
		wantLabel string
		wantErr   bool
	}{
		{"AUGUST", "2024-25", "Aug-24", false},
		{"APRIL", "2024-25", "Apr-24", false},
		{"DECEMBER", "2024-25", "Dec-24", false},
		// January through March roll into the second calendar year.
		{"JANUARY", "2024-25", "Jan-25", false},
		{"MARCH", "2024-25", "Mar-25", false},
		// Underscore variant of the year label is accepted.
		{"JULY", "2025_26", "Jul-25", false},
		// Mixed case month names are normalised.
		{"august", "2024-25", "Aug-24", false},
		{"SMARCH", "2024-25", "", true},
		{"MARCH", "202425", "", true},
		{"MARCH", "24-25", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.month+"/"+tt.year, func(t *testing.T) {
			p, err := FromFiscal(tt.month, tt.year)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromFiscal: %v", err)
			}
			if p.Label() != tt.wantLabel {
				t.Errorf("label = %s, want %s", p.Label(), tt.wantLabel)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, label := range []string{"Aug-24", "Jan-25", "Dec-99", "Apr-00"} {
		p, err := Parse(label)
		if err != nil {
			t.Fatalf("Parse(%s): %v", label, err)
		}
		if p.Label() != label {
			t.Errorf("round trip %s -> %s", label, p.Label())
		}
	}

	for _, label := range []string{"", "August-24", "Aug24", "Aug-2024", "Xxx-24"} {
		if _, err := Parse(label); err == nil {
			t.Errorf("Parse(%q): expected error", label)
		}
	}
}

func TestChronologicalOrder(t *testing.T) {
	aug24, _ := Parse("Aug-24")
	jan25, _ := Parse("Jan-25")
	mar25, _ := Parse("Mar-25")
	apr25, _ := Parse("Apr-25")

	if !aug24.Before(jan25) {
		t.Error("Aug-24 should sort before Jan-25")
	}
	if !jan25.Before(mar25) || !mar25.Before(apr25) {
		t.Error("fiscal year boundary months out of order")
	}
	if jan25.Before(aug24) {
		t.Error("Jan-25 should not sort before Aug-24")
	}
	if !(aug24.SortKey() < jan25.SortKey() && jan25.SortKey() < apr25.SortKey()) {
		t.Error("sort keys not monotonic")
	}
}
