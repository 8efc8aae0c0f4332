package domain

import "testing"

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		separator    string
		wantCategory string
		wantLabel    string
	}{
		{
			name:         "category and label",
			input:        "Finance_Q1 Report.docx",
			separator:    "_",
			wantCategory: "Finance",
			wantLabel:    "Q1 Report",
		},
		{
			name:         "no separator falls back to default category",
			input:        "Notes.docx",
			separator:    "_",
			wantCategory: DefaultCategory,
			wantLabel:    "Notes",
		},
		{
			name:         "splits on first separator only",
			input:        "HR_Payroll_2025.docx",
			separator:    "_",
			wantCategory: "HR",
			wantLabel:    "Payroll_2025",
		},
		{
			name:         "full path is reduced to base name",
			input:        "/reports/in/Finance_Q2.docx",
			separator:    "_",
			wantCategory: "Finance",
			wantLabel:    "Q2",
		},
		{
			name:         "surrounding whitespace is trimmed",
			input:        "Finance _ Q1.docx",
			separator:    "_",
			wantCategory: "Finance",
			wantLabel:    "Q1",
		},
		{
			name:         "trailing separator leaves empty label",
			input:        "Finance_.docx",
			separator:    "_",
			wantCategory: "Finance",
			wantLabel:    "",
		},
		{
			name:         "custom separator",
			input:        "Finance-Q1.docx",
			separator:    "-",
			wantCategory: "Finance",
			wantLabel:    "Q1",
		},
		{
			name:         "empty separator behaves like absent",
			input:        "Finance_Q1.docx",
			separator:    "",
			wantCategory: DefaultCategory,
			wantLabel:    "Finance_Q1",
		},
		{
			name:         "empty input",
			input:        "",
			separator:    "_",
			wantCategory: DefaultCategory,
			wantLabel:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, label := ParseFilename(tt.input, tt.separator)
			if category != tt.wantCategory {
				t.Errorf("category = %q, want %q", category, tt.wantCategory)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
		})
	}
}

func TestParseFilename_Reconstitutes(t *testing.T) {
	// For stems containing the separator exactly once, joining the
	// halves with the separator gives back the stem.
	stems := []string{"Finance_Q1", "HR_Handbook", "Marketing_Plan 2025"}
	for _, stem := range stems {
		category, label := ParseFilename(stem+".docx", "_")
		if got := category + "_" + label; got != stem {
			t.Errorf("ParseFilename(%q) reconstitutes to %q", stem, got)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Finance_Q1.docx", "Finance_Q1"},
		{"/a/b/Finance_Q1.docx", "Finance_Q1"},
		{"no_extension", "no_extension"},
		{"dotted.name.docx", "dotted.name"},
	}
	for _, tt := range tests {
		if got := Stem(tt.input); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
