package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/errors"
	"github.com/scanpathlab/scanpda/internal/output"
	"github.com/scanpathlab/scanpda/internal/pda"
	"github.com/scanpathlab/scanpda/internal/trace"
)

var watchCmd = &cobra.Command{
	Use:   "watch <trace-file>",
	Short: "Re-analyze a scanpath file whenever it changes",
	Long: `Watch a scanpath file and re-run the analysis every time the file
changes, so a trace can be inspected live while it is recorded or edited.
Stop with Ctrl-C.

Example:
  scanpda watch session-042.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		w, err := trace.NewWatcher(args[0])
		if err != nil {
			return errors.Wrap(err, errors.Dataset, "check the trace file path")
		}
		defer w.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		contents, err := w.Watch(ctx)
		if err != nil {
			return errors.Wrap(err, errors.Runtime)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "watching %s (Ctrl-C to stop)\n\n", args[0])

		engine := pda.NewEngine(table)
		for text := range contents {
			path := pda.Tokenize(text)
			accepted := engine.Accepts(path)
			depth := engine.MaxStackDepth(path)
			score := engine.VerificationCompletenessScore(path)

			fmt.Fprintf(out, "%s  depth=%d  vcs=%.2f  (%d symbols)\n",
				output.Verdict(accepted), depth, score, len(path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
