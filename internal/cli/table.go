package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/output"
	"github.com/scanpathlab/scanpda/internal/pda"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Dump the transition table",
	Long: `Dump every concrete transition rule of the automaton in a stable order,
one line per (state, symbol, stack-top) triple. Useful for auditing the
table against the published model or a custom alphabet.

Example:
  scanpda table --alphabet montage.yml`,
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

		out := cmd.OutOrStdout()
		output.PrintHeader(out, fmt.Sprintf("%d transitions", table.Len()))
		for _, r := range table.Rules() {
			fmt.Fprintf(out, "δ(%s, %s, %s) = (%s, [%s])\n",
				r.State, r.Input, r.Top, r.Next, joinStack(r.Replace))
		}
		return nil
	},
}

// joinStack renders a replacement sequence bottom-first; the last symbol
// becomes the new stack top.
func joinStack(symbols []pda.StackSymbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(tableCmd)
}
