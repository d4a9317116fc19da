// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/yagregx/literate-octo-telegram/pkg/types"
)

// Report is the on-disk summary of a parsed transcript: a write-only
// diagnostic artifact. Nothing in the tool reads it back.
type Report struct {
	Source   string       `json:"source" yaml:"source"`
	ParsedAt time.Time    `json:"parsed_at" yaml:"parsed_at"`
	Terms    []ReportTerm `json:"terms" yaml:"terms"`
}

// ReportTerm is one chronological term entry in a Report.
type ReportTerm struct {
	Name        string   `json:"name" yaml:"name"`
	GradePoints *float64 `json:"grade_points" yaml:"grade_points"`
	Credits     *float64 `json:"credits" yaml:"credits"`
	RawLines    int      `json:"raw_lines" yaml:"raw_lines"`
}

// NewReport builds a Report from a chronological term list.
func NewReport(source string, terms []*types.Term) Report {
	r := Report{Source: source, ParsedAt: time.Now().UTC()}
	for _, t := range terms {
		r.Terms = append(r.Terms, ReportTerm{
			Name:        t.Name,
			GradePoints: t.GradePoints,
			Credits:     t.Credits,
			RawLines:    len(t.RawLines),
		})
	}
	return r
}

// WriteReport saves the report to path: JSON when the extension is .json,
// YAML otherwise.
func WriteReport(path string, r Report) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = yaml.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
