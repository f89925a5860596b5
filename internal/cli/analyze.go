package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/errors"
	"github.com/scanpathlab/scanpda/internal/output"
	"github.com/scanpathlab/scanpda/internal/pda"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [scanpath]",
	Short: "Analyze a single scanpath",
	Long: `Analyze a single scanpath: replay it through the automaton and report
the verification verdict, the maximum stack depth, and the verification
completeness score.

The scanpath is a whitespace-delimited symbol sequence, passed as one
quoted argument or read from a file with --file.

Examples:
  # Complete expert read
  scanpda analyze "O R II P Q V ✓ ✓ O"

  # Read the scanpath from a file
  scanpda analyze --file session-042.txt

  # Use a custom lead montage
  scanpda analyze --alphabet montage.yml "o r L1 f v c c o"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := scanpathFromArgs(cmd, args)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		engine := pda.NewEngine(table)
		path := pda.Tokenize(text)

		accepted := engine.Accepts(path)
		finalState := engine.CurrentState()
		depth := engine.MaxStackDepth(path)
		score := engine.VerificationCompletenessScore(path)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", output.Verdict(accepted))
		output.PrintScanpath(out, path.String())
		output.PrintMetric(out, "max stack depth", depth)
		output.PrintMetric(out, "vcs", fmt.Sprintf("%.2f", score))
		output.PrintMetric(out, "final state", finalState)
		return nil
	},
}

// scanpathFromArgs resolves the scanpath text from the positional argument
// or the --file flag.
func scanpathFromArgs(cmd *cobra.Command, args []string) (string, error) {
	filePath, _ := cmd.Flags().GetString("file")

	switch {
	case filePath != "" && len(args) > 0:
		return "", errors.NewArgumentError("pass a scanpath argument or --file, not both")
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", errors.WrapWithMessage(err, errors.Dataset, "reading scanpath file",
				"check the file path")
		}
		return string(data), nil
	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return args[0], nil
	default:
		return "", errors.NewArgumentErrorWithUsage(
			"missing scanpath",
			"scanpda analyze \"O R II P Q V ✓ ✓ O\"",
			"pass the scanpath as one quoted argument, or use --file")
	}
}

func init() {
	analyzeCmd.Flags().String("file", "", "read the scanpath from a file instead of an argument")
	rootCmd.AddCommand(analyzeCmd)
}
