// Package report aggregates batch evaluation results and renders them for
// terminals or as YAML for downstream tooling.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/scanpathlab/scanpda/internal/runner"
)

// Summary aggregates a batch of results.
type Summary struct {
	Total      int     `yaml:"total"`
	Accepted   int     `yaml:"accepted"`
	Rejected   int     `yaml:"rejected"`
	Mismatches int     `yaml:"mismatches"`
	MeanDepth  float64 `yaml:"mean_depth"`
	MeanScore  float64 `yaml:"mean_score"`
}

// Summarize computes aggregate counts and means over a batch.
func Summarize(results []runner.Result) Summary {
	s := Summary{Total: len(results)}
	if len(results) == 0 {
		return s
	}
	var depthSum, scoreSum float64
	for _, r := range results {
		if r.Accepted {
			s.Accepted++
		} else {
			s.Rejected++
		}
		if r.Mismatch {
			s.Mismatches++
		}
		depthSum += float64(r.MaxDepth)
		scoreSum += r.Score
	}
	s.MeanDepth = depthSum / float64(len(results))
	s.MeanScore = scoreSum / float64(len(results))
	return s
}

// RenderResults writes one line per trace: verdict, depth, score, name, and
// a mismatch flag when the dataset's expectation disagrees.
func RenderResults(w io.Writer, results []runner.Result) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, r := range results {
		verdict := green("complete  ")
		if !r.Accepted {
			verdict = red("incomplete")
		}
		line := fmt.Sprintf("%s  depth=%d  vcs=%.2f  %s", verdict, r.MaxDepth, r.Score, r.Name)
		if r.Mismatch {
			line += "  " + yellow(fmt.Sprintf("(expected %s)", r.Expect))
		}
		fmt.Fprintln(w, line)
		if r.Scanpath != "" {
			fmt.Fprintf(w, "  %s\n", dim(r.Scanpath))
		}
	}
}

// RenderSummary writes the aggregate block after a batch run.
func RenderSummary(w io.Writer, s Summary) {
	bold := color.New(color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

	fmt.Fprintf(w, "\n%s\n", bold("Summary"))
	fmt.Fprintf(w, "  traces:     %d\n", s.Total)
	fmt.Fprintf(w, "  complete:   %d\n", s.Accepted)
	fmt.Fprintf(w, "  incomplete: %d\n", s.Rejected)
	if s.Mismatches > 0 {
		fmt.Fprintf(w, "  mismatches: %s\n", yellow(fmt.Sprintf("%d", s.Mismatches)))
	}
	fmt.Fprintf(w, "  mean depth: %.2f\n", s.MeanDepth)
	fmt.Fprintf(w, "  mean vcs:   %.2f\n", s.MeanScore)
}

// document is the YAML export layout.
type document struct {
	Results []runner.Result `yaml:"results"`
	Summary Summary         `yaml:"summary"`
}

// WriteYAML exports results and summary as a YAML document.
func WriteYAML(w io.Writer, results []runner.Result, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(document{Results: results, Summary: s}); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
