// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"bytes"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNames []string // encounter order
	}{
		{
			name:      "prefixed header",
			text:      "Term: Fall Qtr 2025",
			wantNames: []string{"Fall Qtr 2025"},
		},
		{
			name:      "bare header without prefix",
			text:      "Winter Quarter 2023",
			wantNames: []string{"Winter Quarter 2023"},
		},
		{
			name:      "summer session with roman numeral",
			text:      "Term: Sum Ses II 2024",
			wantNames: []string{"Sum Ses II 2024"},
		},
		{
			name:      "whitespace collapsed in label",
			text:      "Term: Fall   Qtr    2025",
			wantNames: []string{"Fall Qtr 2025"},
		},
		{
			name:      "non-breaking spaces normalized",
			text:      "Term: Spring Qtr 2022",
			wantNames: []string{"Spring Qtr 2022"},
		},
		{
			name: "duplicate labels disambiguated",
			text: "Term: Fall Qtr 2025\nTerm: Fall Qtr 2025\nTerm: Fall Qtr 2025",
			wantNames: []string{
				"Fall Qtr 2025",
				"Fall Qtr 2025 (2)",
				"Fall Qtr 2025 (3)",
			},
		},
		{
			name:      "no season token is not a header",
			text:      "Autumn Qtr 2025\nsome other line",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Parse(tt.text, &bytes.Buffer{})
			if list.Len() != len(tt.wantNames) {
				t.Fatalf("parsed %d terms, want %d", list.Len(), len(tt.wantNames))
			}
			for _, name := range tt.wantNames {
				if _, ok := list.Lookup(name); !ok {
					t.Errorf("term %q not found", name)
				}
			}
		})
	}
}

func TestParse_Values(t *testing.T) {
	text := strings.Join([]string{
		"Term: Fall Qtr 2025",
		"Some course line",
		"Term Grade Points: 52.30",
		"Term GPA Credits: 16.00",
	}, "\n")

	list := Parse(text, &bytes.Buffer{})
	if list.Len() != 1 {
		t.Fatalf("parsed %d terms, want 1", list.Len())
	}

	term, ok := list.Lookup("Fall Qtr 2025")
	if !ok {
		t.Fatal("term not found")
	}
	if term.GradePoints == nil || *term.GradePoints != 52.30 {
		t.Errorf("GradePoints = %v, want 52.30", term.GradePoints)
	}
	if term.Credits == nil || *term.Credits != 16.00 {
		t.Errorf("Credits = %v, want 16.00", term.Credits)
	}
	if len(term.RawLines) != 3 {
		t.Errorf("RawLines has %d entries, want 3: %q", len(term.RawLines), term.RawLines)
	}
}

func TestParse_ThousandsSeparators(t *testing.T) {
	text := "Term: Spring Qtr 2020\nTerm Grade Points: 1,234.50"

	list := Parse(text, &bytes.Buffer{})
	term, ok := list.Lookup("Spring Qtr 2020")
	if !ok {
		t.Fatal("term not found")
	}
	if term.GradePoints == nil || *term.GradePoints != 1234.50 {
		t.Errorf("GradePoints = %v, want 1234.50", term.GradePoints)
	}
}

func TestParse_RepeatedValueOverwrites(t *testing.T) {
	// Last write wins for a repeated value line within the same term.
	text := strings.Join([]string{
		"Term: Fall Qtr 2025",
		"Term Grade Points: 10.00",
		"Term Grade Points: 20.00",
	}, "\n")

	list := Parse(text, &bytes.Buffer{})
	term, _ := list.Lookup("Fall Qtr 2025")
	if term.GradePoints == nil || *term.GradePoints != 20.00 {
		t.Errorf("GradePoints = %v, want 20.00", term.GradePoints)
	}
}

func TestParse_MalformedValueWarns(t *testing.T) {
	text := strings.Join([]string{
		"Term: Fall Qtr 2025",
		"Term Grade Points: 12..3",
		"Term GPA Credits: 16.00",
	}, "\n")

	var warn bytes.Buffer
	list := Parse(text, &warn)
	term, _ := list.Lookup("Fall Qtr 2025")

	if term.GradePoints != nil {
		t.Errorf("GradePoints = %v, want unset", *term.GradePoints)
	}
	if term.Credits == nil || *term.Credits != 16.00 {
		t.Errorf("Credits = %v, want 16.00", term.Credits)
	}
	if !strings.Contains(warn.String(), "could not parse grade points") {
		t.Errorf("warning output %q lacks parse warning", warn.String())
	}
}

func TestParse_ValueLinesBeforeAnyHeaderIgnored(t *testing.T) {
	text := "Term Grade Points: 52.30\nTerm GPA Credits: 16.00"

	list := Parse(text, &bytes.Buffer{})
	if list.Len() != 0 {
		t.Errorf("parsed %d terms, want 0", list.Len())
	}
}

func TestParse_HeaderLineNeverCarriesValues(t *testing.T) {
	// A header line is consumed entirely; a value pattern on the same line
	// must not set a field.
	text := "Term: Fall Qtr 2025 Term Grade Points: 52.30"

	list := Parse(text, &bytes.Buffer{})
	if list.Len() != 1 {
		t.Fatalf("parsed %d terms, want 1", list.Len())
	}
	term, _ := list.Lookup("Fall Qtr 2025")
	if term.GradePoints != nil {
		t.Errorf("GradePoints = %v, want unset", *term.GradePoints)
	}
}

func TestChronological(t *testing.T) {
	// Source text lists newest first; Chronological reverses once.
	text := strings.Join([]string{
		"Term: Fall Qtr 2025",
		"Term: Spring Qtr 2025",
		"Term: Winter Qtr 2025",
	}, "\n")

	list := Parse(text, &bytes.Buffer{})
	chrono := list.Chronological()

	want := []string{"Winter Qtr 2025", "Spring Qtr 2025", "Fall Qtr 2025"}
	if len(chrono) != len(want) {
		t.Fatalf("got %d terms, want %d", len(chrono), len(want))
	}
	for i, name := range want {
		if chrono[i].Name != name {
			t.Errorf("chrono[%d] = %q, want %q", i, chrono[i].Name, name)
		}
	}
}
