// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls the embedded text layer out of source documents.
package extract

// Extractor returns the concatenated page text of a source document.
// Different document formats implement this interface.
type Extractor interface {
	// ExtractText reads the document at path and returns its page text,
	// one page per segment, joined by newlines. An unreadable document
	// is an error.
	ExtractText(path string) (string, error)
}
