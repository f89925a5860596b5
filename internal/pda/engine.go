package pda

import "math"

// confirmTarget is the confirm-symbol count at which the fallback
// completeness score saturates. Complete expert reads typically carry 4-6
// confirmations; the score is min(count/6, 1) for non-accepted traces.
const confirmTarget = 6.0

// Engine drives single runs against a TransitionTable. It owns a mutable
// runtime configuration (current state + stack); each analysis method
// resets the configuration before use, so a reused engine never leaks state
// between runs. An Engine is not safe for concurrent use — create one
// engine per concurrent run and share the table.
type Engine struct {
	table   *TransitionTable
	current State
	stack   []StackSymbol
}

// NewEngine returns an engine in the initial configuration.
func NewEngine(table *TransitionTable) *Engine {
	e := &Engine{table: table}
	e.Reset()
	return e
}

// Reset restores the initial configuration: initial state, stack holding
// only Bottom. Always succeeds and is idempotent.
func (e *Engine) Reset() {
	e.current = e.table.InitialState()
	e.stack = append(e.stack[:0], Bottom)
}

// Step consumes one input symbol. It returns false, leaving the
// configuration unchanged, when the stack is empty (defensive; the Bottom
// invariant should prevent it) or when no rule matches the current
// (state, symbol, stack-top) triple. On success the top symbol is popped,
// the rule's replacement is pushed in order — its last element becomes the
// new top — and the state advances.
func (e *Engine) Step(sym InputSymbol) bool {
	if len(e.stack) == 0 {
		return false
	}
	top := e.stack[len(e.stack)-1]
	tr, ok := e.table.Lookup(e.current, sym, top)
	if !ok {
		return false
	}
	e.stack = append(e.stack[:len(e.stack)-1], tr.Replace...)
	e.current = tr.Next
	return true
}

// Accepts replays the scanpath from a fresh configuration and reports
// whether it exhibits complete verification. The first failed step rejects
// immediately; remaining symbols are not processed. A fully consumed
// scanpath is accepted iff the final state is accepting and Bottom is still
// present anywhere in the stack. Residual markers above Bottom are
// tolerated: completion discharges all pending levels at once, so the final
// stack need not be exactly [Bottom].
func (e *Engine) Accepts(path Scanpath) bool {
	e.Reset()
	for _, sym := range path {
		if !e.Step(sym) {
			return false
		}
	}
	return e.table.IsAccepting(e.current) && e.containsBottom()
}

// MaxStackDepth replays the scanpath and returns the maximum stack depth
// observed, excluding the permanent Bottom marker. Unlike Accepts, failed
// steps are tolerated as no-ops so partial or malformed traces still yield
// a depth estimate. An empty scanpath yields 0.
func (e *Engine) MaxStackDepth(path Scanpath) int {
	e.Reset()
	maxDepth := 0
	for _, sym := range path {
		e.Step(sym)
		if d := e.StackDepth(); d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}

// VerificationCompletenessScore returns the VCS metric in [0, 1]. Accepted
// scanpaths score exactly 1.0. Otherwise the score is a heuristic over the
// raw input, not the automaton run: the confirm-symbol count divided by
// confirmTarget, capped at 1.0.
func (e *Engine) VerificationCompletenessScore(path Scanpath) float64 {
	if e.Accepts(path) {
		return 1.0
	}
	confirm := e.table.Alphabet().Confirm
	count := 0
	for _, sym := range path {
		if sym == confirm {
			count++
		}
	}
	return math.Min(float64(count)/confirmTarget, 1.0)
}

// CurrentState returns the state of the current configuration.
func (e *Engine) CurrentState() State {
	return e.current
}

// StackDepth returns the current stack depth excluding the Bottom marker.
func (e *Engine) StackDepth() int {
	return len(e.stack) - 1
}

// Stack returns a copy of the current stack, bottom first.
func (e *Engine) Stack() []StackSymbol {
	out := make([]StackSymbol, len(e.stack))
	copy(out, e.stack)
	return out
}

// AcceptingStates returns the accepting states of the underlying table.
func (e *Engine) AcceptingStates() []State {
	return e.table.AcceptingStates()
}

func (e *Engine) containsBottom() bool {
	for _, s := range e.stack {
		if s == Bottom {
			return true
		}
	}
	return false
}
