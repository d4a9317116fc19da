// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	_, err := PDFExtractor{}.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(err.Error(), "opening PDF") {
		t.Errorf("err = %v, want an opening PDF error", err)
	}
}

func TestPDFExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("just text, no PDF structure"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := (PDFExtractor{}).ExtractText(path); err == nil {
		t.Fatal("expected an error for a non-PDF file")
	}
}
