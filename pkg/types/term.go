// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data types shared between the CLI and the
// pipeline packages.
package types

// Term represents one academic grading period as it appears in a transcript.
// Its name is fixed at creation; the two numeric fields are the only mutable
// state, set by parsing or by a later user correction.
type Term struct {
	// Name is the whitespace-collapsed term label (e.g. "Fall Qtr 2025"),
	// disambiguated with a numeric suffix like " (2)" when the same label
	// recurs in the source text.
	Name string `json:"name" yaml:"name"`

	// GradePoints is the cumulative quality-point total earned in the term.
	// Nil until a matching value line is found or the user supplies one.
	GradePoints *float64 `json:"grade_points" yaml:"grade_points"`

	// Credits is the credit-hour count used as the GPA denominator.
	// Nil until found or supplied.
	Credits *float64 `json:"credits" yaml:"credits"`

	// RawLines holds the source lines attributed to this term, for
	// diagnostics only.
	RawLines []string `json:"-" yaml:"-"`
}

// HasValues reports whether both numeric fields are set.
func (t *Term) HasValues() bool {
	return t.GradePoints != nil && t.Credits != nil
}
