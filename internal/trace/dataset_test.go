package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traces.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDataset(t *testing.T) {
	t.Parallel()

	path := writeDataset(t, `
traces:
  - name: expert-complete
    scanpath: "O R II P Q V ✓ ✓ O"
    expect: complete
  - name: novice-shallow
    scanpath: "O R II P Q"
    expect: incomplete
  - name: unlabeled
    scanpath: "O R II P"
`)

	ds, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, ds.Traces, 3)

	assert.Equal(t, "expert-complete", ds.Traces[0].Name)
	assert.Equal(t, ExpectComplete, ds.Traces[0].Expect)
	assert.Equal(t, ExpectIncomplete, ds.Traces[1].Expect)
	assert.Equal(t, ExpectNone, ds.Traces[2].Expect)
	assert.Equal(t, "O R II P Q V ✓ ✓ O", ds.Traces[0].Scanpath)
}

func TestLoadDatasetErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     string
		errContains string
	}{
		"malformed yaml": {
			content:     "traces: [unterminated",
			errContains: "parsing dataset",
		},
		"empty dataset": {
			content:     "traces: []",
			errContains: "no traces",
		},
		"missing name": {
			content:     "traces:\n  - scanpath: \"O R\"\n",
			errContains: "missing name",
		},
		"duplicate name": {
			content:     "traces:\n  - name: a\n    scanpath: \"O\"\n  - name: a\n    scanpath: \"O R\"\n",
			errContains: "duplicate name",
		},
		"missing scanpath": {
			content:     "traces:\n  - name: a\n",
			errContains: "missing scanpath",
		},
		"bad expect label": {
			content:     "traces:\n  - name: a\n    scanpath: \"O\"\n    expect: maybe\n",
			errContains: "invalid expect label",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadDataset(writeDataset(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadDatasetMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadDataset(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading dataset")
}
