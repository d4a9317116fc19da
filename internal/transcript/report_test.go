// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/yagregx/literate-octo-telegram/pkg/types"
)

func TestWriteReport(t *testing.T) {
	terms := []*types.Term{
		term("Winter Qtr 2025", fv(40.0), fv(12.0)),
		term("Fall Qtr 2025", nil, fv(16.0)),
	}
	terms[0].RawLines = []string{"a", "b"}

	r := NewReport("transcript.pdf", terms)
	require.Len(t, r.Terms, 2)
	assert.Equal(t, "transcript.pdf", r.Source)
	assert.Equal(t, 2, r.Terms[0].RawLines)

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.yaml")
		require.NoError(t, WriteReport(path, r))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got Report
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, r.Source, got.Source)
		require.Len(t, got.Terms, 2)
		assert.Equal(t, "Winter Qtr 2025", got.Terms[0].Name)
		assert.Equal(t, 40.0, *got.Terms[0].GradePoints)
		assert.Nil(t, got.Terms[1].GradePoints)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, WriteReport(path, r))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got Report
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r.Source, got.Source)
		require.Len(t, got.Terms, 2)
		assert.Equal(t, 16.0, *got.Terms[1].Credits)
	})
}
