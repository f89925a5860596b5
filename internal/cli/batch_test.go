package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeTestDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traces.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBatchEvaluatesDataset(t *testing.T) {
	path := writeTestDataset(t, `
traces:
  - name: expert
    scanpath: "O R II P Q V ✓ ✓ O"
    expect: complete
  - name: novice
    scanpath: "O R II P Q"
    expect: incomplete
`)

	out, err := executeCommand(t, "batch", "--no-color", path)
	require.NoError(t, err)

	assert.Contains(t, out, "expert")
	assert.Contains(t, out, "novice")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "traces:     2")
	assert.Contains(t, out, "complete:   1")
	assert.Contains(t, out, "incomplete: 1")
	assert.NotContains(t, out, "mismatches")
}

func TestBatchWritesYAMLReport(t *testing.T) {
	dsPath := writeTestDataset(t, `
traces:
  - name: expert
    scanpath: "O R II P Q V ✓ ✓ O"
`)
	outPath := filepath.Join(t.TempDir(), "results.yml")

	_, err := executeCommand(t, "batch", "--no-color", "--out", outPath, dsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc struct {
		Results []struct {
			Name     string `yaml:"name"`
			Accepted bool   `yaml:"accepted"`
		} `yaml:"results"`
		Summary struct {
			Total int `yaml:"total"`
		} `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.Len(t, doc.Results, 1)
	assert.True(t, doc.Results[0].Accepted)
	assert.Equal(t, 1, doc.Summary.Total)
}

func TestBatchFailOnMismatch(t *testing.T) {
	path := writeTestDataset(t, `
traces:
  - name: mislabeled
    scanpath: "O R II P Q"
    expect: complete
`)

	out, err := executeCommand(t, "batch", "--no-color", "--fail-on-mismatch", path)
	require.Error(t, err)
	assert.Contains(t, out, "(expected complete)")
	assert.Equal(t, ExitRuntime, ExitCode(err))
}

func TestBatchRejectsMissingDataset(t *testing.T) {
	_, err := executeCommand(t, "batch", filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Equal(t, ExitDataset, ExitCode(err))
}
