package pda

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Alphabet declares the input symbols the transition table is built over:
// the lead identifiers, the ECG feature identifiers, and the four designated
// control symbols. The default alphabet matches the standard 12-lead exam;
// custom alphabets can be loaded from YAML for non-standard lead montages.
type Alphabet struct {
	// Leads are the lead-identifier symbols (e.g. II, V1, aF).
	Leads []InputSymbol `yaml:"leads"`
	// Features are the ECG feature symbols (e.g. P, Q, T). The rhythm
	// symbol conventionally appears here too, so a rhythm strip can be
	// re-examined as a feature during detailed reading.
	Features []InputSymbol `yaml:"features"`
	// Open is the overview action that starts a read and, from the
	// verification state, completes it.
	Open InputSymbol `yaml:"open"`
	// Rhythm triggers rhythm assessment.
	Rhythm InputSymbol `yaml:"rhythm"`
	// Verify begins the verification pass.
	Verify InputSymbol `yaml:"verify"`
	// Confirm discharges one pending marker during verification.
	Confirm InputSymbol `yaml:"confirm"`
}

// DefaultAlphabet returns the standard 12-lead ECG alphabet.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Leads: []InputSymbol{
			"I", "II", "III", "aR", "aL", "aF",
			"V1", "V2", "V3", "V4", "V5", "V6",
		},
		Features: []InputSymbol{"P", "Q", "S", "T", "R"},
		Open:     "O",
		Rhythm:   "R",
		Verify:   "V",
		Confirm:  "✓",
	}
}

// LoadAlphabet reads and validates an alphabet definition from a YAML file.
func LoadAlphabet(path string) (Alphabet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Alphabet{}, fmt.Errorf("reading alphabet file: %w", err)
	}
	var a Alphabet
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Alphabet{}, fmt.Errorf("parsing alphabet file %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return Alphabet{}, fmt.Errorf("invalid alphabet in %s: %w", path, err)
	}
	return a, nil
}

// Validate checks that the alphabet can produce a deterministic table:
// non-empty symbol sets, no duplicates, and no collision that would assign
// two rules to the same (state, symbol, stack-top) triple. The rhythm
// symbol may appear in Features (it does in the default alphabet) but must
// not be a lead.
func (a Alphabet) Validate() error {
	if len(a.Leads) == 0 {
		return fmt.Errorf("alphabet must declare at least one lead symbol")
	}
	if len(a.Features) == 0 {
		return fmt.Errorf("alphabet must declare at least one feature symbol")
	}
	designated := []struct {
		name string
		sym  InputSymbol
	}{
		{"open", a.Open}, {"rhythm", a.Rhythm}, {"verify", a.Verify}, {"confirm", a.Confirm},
	}
	for _, d := range designated {
		if d.sym == "" {
			return fmt.Errorf("alphabet must declare a %s symbol", d.name)
		}
	}
	for i, d := range designated {
		for _, other := range designated[i+1:] {
			if d.sym == other.sym {
				return fmt.Errorf("%s and %s symbols must differ (both %q)", d.name, other.name, d.sym)
			}
		}
	}

	seen := make(map[InputSymbol]string, len(a.Leads)+len(a.Features))
	for _, l := range a.Leads {
		if prev, dup := seen[l]; dup {
			return fmt.Errorf("symbol %q declared twice (%s and lead)", l, prev)
		}
		seen[l] = "lead"
	}
	for _, f := range a.Features {
		if prev, dup := seen[f]; dup && prev == "feature" {
			return fmt.Errorf("feature symbol %q declared twice", f)
		}
		if prev, dup := seen[f]; dup {
			return fmt.Errorf("symbol %q declared as both %s and feature", f, prev)
		}
		seen[f] = "feature"
	}

	if role, ok := seen[a.Rhythm]; ok && role == "lead" {
		return fmt.Errorf("rhythm symbol %q must not be a lead", a.Rhythm)
	}
	for name, sym := range map[string]InputSymbol{
		"open": a.Open, "verify": a.Verify, "confirm": a.Confirm,
	} {
		if role, ok := seen[sym]; ok {
			return fmt.Errorf("%s symbol %q collides with a %s symbol", name, sym, role)
		}
	}
	return nil
}
