// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yagregx/literate-octo-telegram/pkg/types"
)

// Term recognition patterns.
var (
	// termRe matches term header lines like "Term: Fall Qtr 2025",
	// "Winter Quarter 2023", or "Sum Ses II 2024". The capture group is
	// the term label; the "Term:" prefix and any surrounding text are
	// ignored.
	termRe = regexp.MustCompile(
		`(?i)(?:Term:\s*)?((?:Fall|Winter|Spring|Summer|Sum\s+Ses\s+[IVXLC]+)\s*(?:Qtr|Quarter|Ses)?\s*\d{4})`)

	// gradePointsRe matches value lines like "Term Grade Points: 52.30".
	// The capture group is the numeric text; commas as thousands
	// separators are allowed.
	gradePointsRe = regexp.MustCompile(`(?i)Term\s+Grade\s+Points[:\s]*([\d.,]+)`)

	// creditsRe matches value lines like "Term GPA Credits: 16.00".
	creditsRe = regexp.MustCompile(`(?i)Term\s+GPA\s+Credits[:\s]*([\d.,]+)`)

	// spaceRe collapses whitespace runs inside a captured term label.
	spaceRe = regexp.MustCompile(`\s+`)
)

// Parse scans text line by line and returns the terms found, in encounter
// order. A header line opens a new term and is never also a value line.
// Value lines between headers set the current term's grade points and
// credits; a repeated value line overwrites the earlier one (last write
// wins, matching the transcripts this was built against). A malformed
// number produces a warning on warn and leaves the field untouched. Every
// line seen while inside a term is appended to that term's RawLines.
func Parse(text string, warn io.Writer) *TermList {
	list := newTermList()
	var current *types.Term

	for _, raw := range strings.Split(text, "\n") {
		if raw == "" {
			continue
		}
		line := strings.TrimSpace(strings.ReplaceAll(raw, " ", " "))

		if m := termRe.FindStringSubmatch(line); m != nil {
			label := spaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
			current = list.add(disambiguate(list, label))
			continue
		}

		if current == nil {
			continue
		}
		if m := gradePointsRe.FindStringSubmatch(line); m != nil {
			setField(&current.GradePoints, m[1], current.Name, "grade points", warn)
		}
		if m := creditsRe.FindStringSubmatch(line); m != nil {
			setField(&current.Credits, m[1], current.Name, "credits", warn)
		}
		current.RawLines = append(current.RawLines, line)
	}

	return list
}

// disambiguate appends " (2)", " (3)", ... to base until the name is unused
// in list.
func disambiguate(list *TermList, base string) string {
	name := base
	for suffix := 2; list.contains(name); suffix++ {
		name = fmt.Sprintf("%s (%d)", base, suffix)
	}
	return name
}

// setField parses the captured numeric text and stores it through dst. An
// already-set field is overwritten. Parse failures warn and return without
// touching the field.
func setField(dst **float64, capture, term, field string, warn io.Writer) {
	text := strings.TrimSpace(strings.ReplaceAll(capture, ",", ""))
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Fprintf(warn, "warning: could not parse %s %q for term %s\n", field, text, term)
		return
	}
	*dst = &v
}
