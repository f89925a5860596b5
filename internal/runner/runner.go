// Package runner evaluates trace datasets against a transition table with
// bounded parallelism. Each trace gets its own engine, so concurrent runs
// never share a runtime configuration; the table itself is read-only and
// shared.
package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/scanpathlab/scanpda/internal/pda"
	"github.com/scanpathlab/scanpda/internal/trace"
)

// DefaultMaxParallel bounds concurrent trace evaluations when no limit is
// configured.
const DefaultMaxParallel = 4

// Result holds the three automaton metrics for one evaluated trace, plus
// the expectation check when the trace was labeled.
type Result struct {
	Name     string            `yaml:"name"`
	Scanpath string            `yaml:"scanpath"`
	Accepted bool              `yaml:"accepted"`
	MaxDepth int               `yaml:"max_depth"`
	Score    float64           `yaml:"score"`
	Expect   trace.Expectation `yaml:"expect,omitempty"`
	Mismatch bool              `yaml:"mismatch,omitempty"`
}

// Runner evaluates batches of traces.
type Runner struct {
	table       *pda.TransitionTable
	maxParallel int
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxParallel sets the maximum number of concurrently evaluated traces.
// Values below 1 are ignored.
func WithMaxParallel(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.maxParallel = n
		}
	}
}

// New creates a Runner over the given table.
func New(table *pda.TransitionTable, opts ...Option) *Runner {
	r := &Runner{table: table, maxParallel: DefaultMaxParallel}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every trace and returns results in input order. Evaluation
// itself never fails — rejection is a normal outcome — so the only error
// source is context cancellation.
func (r *Runner) Run(ctx context.Context, traces []trace.Trace) ([]Result, error) {
	results := make([]Result, len(traces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.maxParallel)

	for i, tr := range traces {
		i, tr := i, tr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.evaluate(tr)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate runs the three analyses for a single trace.
func (r *Runner) Evaluate(tr trace.Trace) Result {
	return r.evaluate(tr)
}

func (r *Runner) evaluate(tr trace.Trace) Result {
	engine := pda.NewEngine(r.table)
	path := pda.Tokenize(tr.Scanpath)

	res := Result{
		Name:     tr.Name,
		Scanpath: tr.Scanpath,
		Accepted: engine.Accepts(path),
		MaxDepth: engine.MaxStackDepth(path),
		Expect:   tr.Expect,
	}
	res.Score = engine.VerificationCompletenessScore(path)

	switch tr.Expect {
	case trace.ExpectComplete:
		res.Mismatch = !res.Accepted
	case trace.ExpectIncomplete:
		res.Mismatch = res.Accepted
	}
	return res
}

// MaxParallel returns the configured concurrency limit.
func (r *Runner) MaxParallel() int {
	return r.maxParallel
}
