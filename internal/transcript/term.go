// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript parses per-term grade summaries out of transcript text
// and aggregates a selected term range into a cumulative GPA.
package transcript

import (
	"github.com/yagregx/literate-octo-telegram/pkg/types"
)

// TermList holds parsed terms in encounter order. Transcripts list the
// newest term first, so encounter order is reverse-chronological. Terms are
// kept as an ordered sequence with an auxiliary name lookup; duplicate
// headers become distinct entries, never merged.
type TermList struct {
	terms []*types.Term
	index map[string]int // disambiguated name -> position in terms
}

func newTermList() *TermList {
	return &TermList{index: make(map[string]int)}
}

// add registers a new term under the given (already disambiguated) name.
func (l *TermList) add(name string) *types.Term {
	t := &types.Term{Name: name}
	l.index[name] = len(l.terms)
	l.terms = append(l.terms, t)
	return t
}

// contains reports whether a term with the given name exists.
func (l *TermList) contains(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Len returns the number of parsed terms.
func (l *TermList) Len() int { return len(l.terms) }

// Lookup returns the term with the given disambiguated name.
func (l *TermList) Lookup(name string) (*types.Term, bool) {
	i, ok := l.index[name]
	if !ok {
		return nil, false
	}
	return l.terms[i], true
}

// Chronological returns the terms oldest first: the encounter order
// reversed. The returned slice shares the underlying Term records.
func (l *TermList) Chronological() []*types.Term {
	out := make([]*types.Term, len(l.terms))
	for i, t := range l.terms {
		out[len(l.terms)-1-i] = t
	}
	return out
}
