package pda

import (
	"fmt"
	"sort"
)

// Transition is the right-hand side of a rule: the state to enter and the
// stack symbols pushed in place of the consumed top. Replace is stored in
// push order: symbols are pushed left to right, so the last element becomes
// the new top. An empty Replace is a net pop.
type Transition struct {
	Next    State
	Replace []StackSymbol
}

// Rule is one full table entry, exposed for introspection and table dumps.
type Rule struct {
	State   State
	Input   InputSymbol
	Top     StackSymbol
	Next    State
	Replace []StackSymbol
}

// tripleKey identifies the domain of the transition function δ.
type tripleKey struct {
	state State
	input InputSymbol
	top   StackSymbol
}

// TransitionTable is the closed set of legal transitions, built once from an
// Alphabet and read-only afterwards. It is safe to share across concurrent
// engines. The table is a partial function: Lookup misses are not errors,
// they mean "no legal move".
type TransitionTable struct {
	alphabet Alphabet
	rules    map[tripleKey]Transition
}

// NewTransitionTable builds the full rule set for the given alphabet.
// Construction is deterministic: the same alphabet always yields an
// identical table. The seven phases below mirror the published model; the
// lead and feature loops expand once per alphabet symbol, so every entry is
// a literal, auditable rule.
func NewTransitionTable(a Alphabet) (*TransitionTable, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	t := &TransitionTable{
		alphabet: a,
		rules:    make(map[tripleKey]Transition),
	}
	add := func(s State, in InputSymbol, top StackSymbol, next State, replace ...StackSymbol) error {
		key := tripleKey{s, in, top}
		if _, dup := t.rules[key]; dup {
			return fmt.Errorf("duplicate transition for (%s, %s, %s)", s, in, top)
		}
		t.rules[key] = Transition{Next: next, Replace: replace}
		return nil
	}

	// Phase 1: overview. The open action is accepted repeatedly while the
	// stack holds only Bottom.
	if err := add(StateInitial, a.Open, Bottom, StateOverview, Bottom); err != nil {
		return nil, err
	}
	if err := add(StateOverview, a.Open, Bottom, StateOverview, Bottom); err != nil {
		return nil, err
	}

	// Phase 2: rhythm assessment. First read pushes the rhythm marker,
	// repeats self-loop on it.
	if err := add(StateOverview, a.Rhythm, Bottom, StateRhythm, Bottom, RhythmMarker); err != nil {
		return nil, err
	}
	if err := add(StateRhythm, a.Rhythm, RhythmMarker, StateRhythm, RhythmMarker); err != nil {
		return nil, err
	}

	// Phase 3: lead-level examination. A lead over the rhythm marker opens
	// a lead; further leads self-loop; a lead from the feature state closes
	// the feature and opens a fresh lead over the rhythm marker.
	for _, lead := range a.Leads {
		if err := add(StateRhythm, lead, RhythmMarker, StateLead, RhythmMarker, LeadMarker); err != nil {
			return nil, err
		}
		if err := add(StateLead, lead, LeadMarker, StateLead, LeadMarker); err != nil {
			return nil, err
		}
		if err := add(StateFeature, lead, FeatureMarker, StateLead, RhythmMarker, LeadMarker); err != nil {
			return nil, err
		}
	}

	// Phase 4: feature-level examination.
	for _, feat := range a.Features {
		if err := add(StateLead, feat, LeadMarker, StateFeature, LeadMarker, FeatureMarker); err != nil {
			return nil, err
		}
		if err := add(StateFeature, feat, FeatureMarker, StateFeature, FeatureMarker); err != nil {
			return nil, err
		}
	}

	// Phase 5: verification initiation, from the feature or the lead level.
	if err := add(StateFeature, a.Verify, FeatureMarker, StateVerification, FeatureMarker, VerificationMarker); err != nil {
		return nil, err
	}
	if err := add(StateLead, a.Verify, LeadMarker, StateVerification, LeadMarker, VerificationMarker); err != nil {
		return nil, err
	}

	// Phase 6: verification unwinding. Each confirm discharges one pending
	// marker; a rhythm-top confirm leaves the marker in place because
	// rhythm assessment spans the whole exam. Leads and features stay legal
	// during the pass and leave the stack unchanged.
	if err := add(StateVerification, a.Confirm, FeatureMarker, StateVerification); err != nil {
		return nil, err
	}
	if err := add(StateVerification, a.Confirm, LeadMarker, StateVerification); err != nil {
		return nil, err
	}
	if err := add(StateVerification, a.Confirm, VerificationMarker, StateVerification); err != nil {
		return nil, err
	}
	if err := add(StateVerification, a.Confirm, RhythmMarker, StateVerification, RhythmMarker); err != nil {
		return nil, err
	}
	for _, lead := range a.Leads {
		for _, top := range []StackSymbol{VerificationMarker, RhythmMarker, LeadMarker, FeatureMarker} {
			if err := add(StateVerification, lead, top, StateVerification, top); err != nil {
				return nil, err
			}
		}
	}
	for _, feat := range a.Features {
		for _, top := range []StackSymbol{VerificationMarker, FeatureMarker, LeadMarker} {
			if err := add(StateVerification, feat, top, StateVerification, top); err != nil {
				return nil, err
			}
		}
	}

	// Phase 7: completion. The open action in the verification state
	// accepts regardless of how many markers remain pending and resets the
	// stack to Bottom alone.
	for _, top := range []StackSymbol{RhythmMarker, Bottom, LeadMarker, FeatureMarker} {
		if err := add(StateVerification, a.Open, top, StateComplete, Bottom); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Lookup returns the transition for the triple, if one exists. A miss is a
// normal negative outcome, not an error.
func (t *TransitionTable) Lookup(s State, in InputSymbol, top StackSymbol) (Transition, bool) {
	tr, ok := t.rules[tripleKey{s, in, top}]
	return tr, ok
}

// Alphabet returns the alphabet the table was built from.
func (t *TransitionTable) Alphabet() Alphabet {
	return t.alphabet
}

// InitialState returns the state a fresh run starts in.
func (t *TransitionTable) InitialState() State {
	return StateInitial
}

// AcceptingStates returns the set of accepting states (a singleton).
func (t *TransitionTable) AcceptingStates() []State {
	return []State{StateComplete}
}

// IsAccepting reports whether s is an accepting state.
func (t *TransitionTable) IsAccepting(s State) bool {
	return s == StateComplete
}

// Len returns the number of concrete rules in the table.
func (t *TransitionTable) Len() int {
	return len(t.rules)
}

// Rules returns every table entry in a stable order (by state, then input
// symbol, then stack top), for dumps and audits.
func (t *TransitionTable) Rules() []Rule {
	rules := make([]Rule, 0, len(t.rules))
	for key, tr := range t.rules {
		rules = append(rules, Rule{
			State:   key.state,
			Input:   key.input,
			Top:     key.top,
			Next:    tr.Next,
			Replace: tr.Replace,
		})
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].State != rules[j].State {
			return rules[i].State < rules[j].State
		}
		if rules[i].Input != rules[j].Input {
			return rules[i].Input < rules[j].Input
		}
		return rules[i].Top < rules[j].Top
	})
	return rules
}
