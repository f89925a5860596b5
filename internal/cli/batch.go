package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/errors"
	"github.com/scanpathlab/scanpda/internal/output"
	"github.com/scanpathlab/scanpda/internal/report"
	"github.com/scanpathlab/scanpda/internal/runner"
	"github.com/scanpathlab/scanpda/internal/trace"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dataset.yml>",
	Short: "Evaluate a dataset of scanpaths",
	Long: `Evaluate every trace in a YAML dataset and print per-trace results plus
an aggregate summary. Traces are evaluated concurrently, one engine per
trace, bounded by max_parallel.

Dataset format:
  traces:
    - name: expert-complete
      scanpath: "O R II P Q V ✓ ✓ O"
      expect: complete          # optional: complete | incomplete

Examples:
  scanpda batch traces.yml
  scanpda batch traces.yml --out results.yml
  scanpda batch traces.yml --fail-on-mismatch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if n, _ := cmd.Flags().GetInt("max-parallel"); cmd.Flags().Changed("max-parallel") {
			cfg.MaxParallel = n
		}

		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		ds, err := trace.LoadDataset(args[0])
		if err != nil {
			return errors.Wrap(err, errors.Dataset,
				"check the dataset file against 'scanpda batch --help'")
		}

		var spin *spinner.Spinner
		if output.IsTTY() {
			spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			spin.Suffix = fmt.Sprintf(" evaluating %d traces...", len(ds.Traces))
			spin.Start()
		}

		r := runner.New(table, runner.WithMaxParallel(cfg.MaxParallel))
		results, err := r.Run(cmd.Context(), ds.Traces)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}

		summary := report.Summarize(results)
		out := cmd.OutOrStdout()
		report.RenderResults(out, results)
		report.RenderSummary(out, summary)

		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			if err := writeReportFile(outPath, results, summary); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nresults written to %s\n", outPath)
		}

		if failOnMismatch, _ := cmd.Flags().GetBool("fail-on-mismatch"); failOnMismatch && summary.Mismatches > 0 {
			return errors.NewRuntimeError(
				fmt.Sprintf("%d trace(s) did not match their expected outcome", summary.Mismatches),
				"inspect the lines flagged with (expected ...) above")
		}
		return nil
	},
}

// writeReportFile exports results as YAML to the given path.
func writeReportFile(path string, results []runner.Result, summary report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "creating results file")
	}
	defer f.Close()
	if err := report.WriteYAML(f, results, summary); err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "writing results file")
	}
	return nil
}

func init() {
	batchCmd.Flags().Int("max-parallel", runner.DefaultMaxParallel, "maximum concurrent trace evaluations")
	batchCmd.Flags().String("out", "", "write results to a YAML file")
	batchCmd.Flags().Bool("fail-on-mismatch", false, "exit with an error if any trace misses its expected outcome")
	rootCmd.AddCommand(batchCmd)
}
