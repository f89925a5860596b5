// Package cli implements the scanpda command tree. Each command lives in
// its own file and registers itself on rootCmd in an init function.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/config"
	"github.com/scanpathlab/scanpda/internal/errors"
	"github.com/scanpathlab/scanpda/internal/pda"
)

var rootCmd = &cobra.Command{
	Use:   "scanpda",
	Short: "Classify ECG scanpaths with a deterministic pushdown automaton",
	Long: `scanpda replays eye-tracking scanpaths through a 7-state pushdown
automaton to decide whether a reading exhibits complete hierarchical
verification, and derives two metrics per trace: the maximum stack depth
(hierarchical reasoning depth) and the verification completeness score.

Scanpaths are whitespace-delimited symbol sequences, e.g.:

  scanpda analyze "O R II P Q V ✓ ✓ O"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a config file (default: .scanpda/config.yml)")
	rootCmd.PersistentFlags().String("alphabet", "", "path to a YAML alphabet definition (default: built-in 12-lead ECG alphabet)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

// Execute runs the root command. Errors are printed in structured form;
// the caller maps them to exit codes.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			errors.PrintError(errors.Wrap(err, errors.Runtime))
		}
	}
	return err
}

// loadConfig loads layered configuration and applies persistent flag
// overrides. It also resolves the color mode.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"check the config file syntax",
			"run 'scanpda config template' to print a valid template")
	}

	if alphabetPath, _ := cmd.Flags().GetString("alphabet"); alphabetPath != "" {
		cfg.AlphabetFile = alphabetPath
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	switch {
	case noColor || cfg.Color == "never":
		color.NoColor = true
	case cfg.Color == "always":
		color.NoColor = false
	}
	return cfg, nil
}

// buildTable constructs the transition table from the configured alphabet.
func buildTable(cfg *config.Configuration) (*pda.TransitionTable, error) {
	alphabet := pda.DefaultAlphabet()
	if cfg.AlphabetFile != "" {
		loaded, err := pda.LoadAlphabet(cfg.AlphabetFile)
		if err != nil {
			return nil, errors.Wrap(err, errors.Configuration,
				"check the alphabet file lists leads, features, open, rhythm, verify, confirm")
		}
		alphabet = loaded
	}

	table, err := pda.NewTransitionTable(alphabet)
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration,
			"fix the symbol collision reported above in the alphabet file")
	}
	return table, nil
}
