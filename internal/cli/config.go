package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scanpathlab/scanpda/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect scanpda configuration",
	Long:  `Commands for inspecting configuration files and printing templates.`,
}

var configTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a commented configuration template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), config.GetDefaultConfigTemplate())
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if userPath, err := config.UserConfigPath(); err == nil {
			fmt.Fprintf(out, "user:    %s\n", userPath)
		}
		fmt.Fprintf(out, "project: %s\n", config.ProjectConfigPath())
		fmt.Fprintf(out, "         %s (fallback)\n", config.ProjectConfigJSONPath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration after layering",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "alphabet_file: %q\n", cfg.AlphabetFile)
		fmt.Fprintf(out, "max_parallel:  %d\n", cfg.MaxParallel)
		fmt.Fprintf(out, "color:         %s\n", cfg.Color)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configTemplateCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
