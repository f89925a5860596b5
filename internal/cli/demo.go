package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/output"
	"github.com/scanpathlab/scanpda/internal/pda"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration traces",
	Long: `Run four canonical traces against the built-in alphabet: a complete
expert verification, a novice read without verification, a started but
unfinished verification, and a deeply nested examination.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		demos := []struct {
			title    string
			scanpath string
			note     string
		}{
			{
				title:    "Complete verification (expert)",
				scanpath: "O R II P Q V ✓ ✓ O",
				note:     "overview, rhythm, lead, features, verify, confirm, complete",
			},
			{
				title:    "No verification (novice)",
				scanpath: "O R II P Q",
				note:     "the read ends without any verification phase",
			},
			{
				title:    "Started verification (incomplete)",
				scanpath: "O R II P Q V ✓",
				note:     "verification begins but no terminal overview action follows",
			},
			{
				title:    "Deep hierarchical reasoning",
				scanpath: "O R II P Q S T",
				note:     "stack depth quantifies nesting; experts read deeper than novices",
			},
		}

		engine := pda.NewEngine(table)
		out := cmd.OutOrStdout()
		for i, d := range demos {
			if i > 0 {
				fmt.Fprintln(out)
			}
			output.PrintHeader(out, d.title)
			path := pda.Tokenize(d.scanpath)

			fmt.Fprintf(out, "%s\n", output.Verdict(engine.Accepts(path)))
			output.PrintScanpath(out, d.scanpath)
			output.PrintMetric(out, "max stack depth", engine.MaxStackDepth(path))
			output.PrintMetric(out, "vcs", fmt.Sprintf("%.2f", engine.VerificationCompletenessScore(path)))
			output.PrintMetric(out, "note", d.note)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
