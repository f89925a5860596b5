package pda

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAlphabetIsValid(t *testing.T) {
	t.Parallel()

	a := DefaultAlphabet()
	require.NoError(t, a.Validate())
	assert.Len(t, a.Leads, 12)
	assert.Len(t, a.Features, 5)
	assert.Contains(t, a.Features, a.Rhythm, "rhythm symbol doubles as a feature")
}

func TestAlphabetValidate(t *testing.T) {
	t.Parallel()

	valid := func() Alphabet { return DefaultAlphabet() }

	tests := map[string]struct {
		mutate      func(a *Alphabet)
		errContains string
	}{
		"no leads": {
			mutate:      func(a *Alphabet) { a.Leads = nil },
			errContains: "at least one lead",
		},
		"no features": {
			mutate:      func(a *Alphabet) { a.Features = nil },
			errContains: "at least one feature",
		},
		"missing confirm": {
			mutate:      func(a *Alphabet) { a.Confirm = "" },
			errContains: "confirm",
		},
		"duplicate lead": {
			mutate:      func(a *Alphabet) { a.Leads = append(a.Leads, "II") },
			errContains: "twice",
		},
		"lead also declared as feature": {
			mutate:      func(a *Alphabet) { a.Features = append(a.Features, "V1") },
			errContains: "both",
		},
		"rhythm symbol is a lead": {
			mutate:      func(a *Alphabet) { a.Rhythm = "II" },
			errContains: "rhythm",
		},
		"open collides with a feature": {
			mutate:      func(a *Alphabet) { a.Open = "P" },
			errContains: "open",
		},
		"verify collides with a lead": {
			mutate:      func(a *Alphabet) { a.Verify = "V1" },
			errContains: "verify",
		},
		"designated symbols must be distinct": {
			mutate:      func(a *Alphabet) { a.Confirm = a.Open },
			errContains: "must differ",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := valid()
			tt.mutate(&a)
			err := a.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadAlphabet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "alphabet.yml")
	content := `
leads: [L1, L2, L3]
features: [p, q]
open: o
rhythm: rr
verify: v
confirm: c
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	a, err := LoadAlphabet(path)
	require.NoError(t, err)
	assert.Equal(t, []InputSymbol{"L1", "L2", "L3"}, a.Leads)
	assert.Equal(t, []InputSymbol{"p", "q"}, a.Features)
	assert.Equal(t, InputSymbol("o"), a.Open)
	assert.Equal(t, InputSymbol("rr"), a.Rhythm)
	assert.Equal(t, InputSymbol("c"), a.Confirm)
}

func TestLoadAlphabetErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     string
		errContains string
	}{
		"malformed yaml": {
			content:     "leads: [unterminated",
			errContains: "parsing alphabet file",
		},
		"fails validation": {
			content:     "leads: [L1]\nfeatures: [f]\nopen: o\nrhythm: r\nverify: o\nconfirm: c\n",
			errContains: "invalid alphabet",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "alphabet.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := LoadAlphabet(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoadAlphabetMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadAlphabet(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading alphabet file")
}
