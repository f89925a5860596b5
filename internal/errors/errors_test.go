package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category Category
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"dataset":       {Dataset, "Dataset Error"},
		"runtime":       {Runtime, "Runtime Error"},
		"unknown":       {Category(99), "Error"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	err := NewDatasetError("bad dataset", "check the file", "run scanpda batch --help")
	assert.Equal(t, Dataset, err.Category)
	assert.Equal(t, "bad dataset", err.Error())
	assert.Len(t, err.Remediation, 2)

	withUsage := NewArgumentErrorWithUsage("missing scanpath", "scanpda analyze <scanpath>")
	assert.Equal(t, Argument, withUsage.Category)
	assert.Equal(t, "scanpda analyze <scanpath>", withUsage.Usage)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap(nil, Runtime))

	inner := fmt.Errorf("boom")
	wrapped := Wrap(inner, Runtime)
	assert.Equal(t, "boom", wrapped.Error())

	withMsg := WrapWithMessage(inner, Configuration, "loading config")
	assert.Equal(t, "loading config: boom", withMsg.Error())
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, AsCLIError(fmt.Errorf("plain")))

	cliErr := NewConfigError("bad")
	assert.Equal(t, cliErr, AsCLIError(cliErr))

	wrapped := fmt.Errorf("context: %w", cliErr)
	assert.Equal(t, cliErr, AsCLIError(wrapped))
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatError(nil))

	err := NewArgumentErrorWithUsage("missing scanpath", "scanpda analyze <scanpath>", "pass a quoted scanpath")
	out := FormatError(err)

	require.Contains(t, out, "Argument Error")
	assert.Contains(t, out, "missing scanpath")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "To fix this:")
	assert.Contains(t, out, "pass a quoted scanpath")
}
