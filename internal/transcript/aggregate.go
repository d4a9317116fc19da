// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"

	"github.com/yagregx/literate-octo-telegram/pkg/types"
)

// RangeError reports a term selection outside the parsed list.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid term range %d-%d for %d terms", e.Start+1, e.End+1, e.Len)
}

// Range is an inclusive, zero-based selection of consecutive terms from a
// chronological term list.
type Range struct {
	Start, End int
}

// Validate rejects a range that starts before the first term, ends past the
// last, or is inverted. It must be called before any aggregation.
func (r Range) Validate(n int) error {
	if r.Start < 0 || r.End >= n || r.Start > r.End {
		return &RangeError{Start: r.Start, End: r.End, Len: n}
	}
	return nil
}

// Slice returns the selected portion of terms. Validate must have accepted
// the range against len(terms) first.
func (r Range) Slice(terms []*types.Term) []*types.Term {
	return terms[r.Start : r.End+1]
}

// ValuePrompter supplies a missing numeric field for a term. ok is false
// when the source declines to provide a value, leaving the field unset.
type ValuePrompter interface {
	Prompt(termName, field string) (value float64, ok bool, err error)
}

// FillMissing asks p for every unset grade-points or credits field among
// the given terms, in order. Supplied values are stored on the term;
// declined fields stay unset. Only the terms passed in are touched, so
// callers hand over the selected range and nothing else.
func FillMissing(terms []*types.Term, p ValuePrompter) error {
	for _, t := range terms {
		if t.GradePoints == nil {
			v, ok, err := p.Prompt(t.Name, "grade points")
			if err != nil {
				return err
			}
			if ok {
				t.GradePoints = &v
			}
		}
		if t.Credits == nil {
			v, ok, err := p.Prompt(t.Name, "credits")
			if err != nil {
				return err
			}
			if ok {
				t.Credits = &v
			}
		}
	}
	return nil
}

// Summary holds the aggregated totals for a selected term range.
type Summary struct {
	GradePoints float64
	Credits     float64

	// Skipped names the selected terms left out of both totals because
	// either numeric field was missing.
	Skipped []string
}

// Aggregate sums grade points and credits across terms. A term missing
// either field contributes to neither total and is recorded in Skipped.
func Aggregate(terms []*types.Term) Summary {
	var s Summary
	for _, t := range terms {
		if !t.HasValues() {
			s.Skipped = append(s.Skipped, t.Name)
			continue
		}
		s.GradePoints += *t.GradePoints
		s.Credits += *t.Credits
	}
	return s
}

// GPA returns total grade points over total credits. ok is false when the
// credit total is zero and no GPA is defined.
func (s Summary) GPA() (gpa float64, ok bool) {
	if s.Credits == 0 {
		return 0, false
	}
	return s.GradePoints / s.Credits, true
}
