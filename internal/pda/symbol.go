// Package pda implements the deterministic pushdown automaton used to
// classify ECG interpretation scanpaths as complete or incomplete
// hierarchical verification, and to derive stack-depth and
// verification-completeness metrics from a trace.
//
// The automaton is the 7-state machine M = (Q, Σ, Γ, δ, q0, Z0, F): a fixed
// transition table over a parameterized input alphabet, a stack alphabet of
// five markers, and a single accepting state. The package performs no I/O;
// callers tokenize text scanpaths with Tokenize and drive an Engine.
package pda

import "strings"

// State identifies one of the seven automaton states. States are fixed
// identifiers, never constructed dynamically.
type State string

const (
	// StateInitial is the start state before any symbol is read.
	StateInitial State = "initial"
	// StateOverview is reached by the opening overview action.
	StateOverview State = "overview"
	// StateRhythm is reached once rhythm assessment begins.
	StateRhythm State = "rhythm"
	// StateLead is reached during lead-level examination.
	StateLead State = "lead"
	// StateFeature is reached during feature-level examination.
	StateFeature State = "feature"
	// StateVerification is reached once the verification pass begins.
	StateVerification State = "verification"
	// StateComplete is the sole accepting state.
	StateComplete State = "complete"
)

// StackSymbol is a member of the stack alphabet Γ.
type StackSymbol string

const (
	// Bottom is the stack-floor marker Z0. It is present at creation and is
	// never permanently removed by any legal run.
	Bottom StackSymbol = "Z0"
	// RhythmMarker records that rhythm assessment is open.
	RhythmMarker StackSymbol = "Rm"
	// LeadMarker records that a lead examination is open.
	LeadMarker StackSymbol = "Lm"
	// FeatureMarker records that a feature examination is open.
	FeatureMarker StackSymbol = "Fm"
	// VerificationMarker records that a verification pass is open.
	VerificationMarker StackSymbol = "Vm"
)

// InputSymbol is a single token of the input alphabet Σ. The automaton
// treats the alphabet as a flat set of distinct tokens compared by equality;
// the lead/feature/action grouping lives in Alphabet, not here.
type InputSymbol string

// Scanpath is an ordered, finite sequence of input symbols modeling one
// inspection trace.
type Scanpath []InputSymbol

// Tokenize splits whitespace-delimited text into a Scanpath. Callers that
// already hold a token sequence can construct a Scanpath directly.
func Tokenize(text string) Scanpath {
	fields := strings.Fields(text)
	path := make(Scanpath, 0, len(fields))
	for _, f := range fields {
		path = append(path, InputSymbol(f))
	}
	return path
}

// String renders the scanpath as space-separated tokens.
func (p Scanpath) String() string {
	var sb strings.Builder
	for i, sym := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(sym))
	}
	return sb.String()
}
