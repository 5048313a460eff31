package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/poki/logic-filter-to-sql/internal/cli"
)

var configShowSource bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long:  `Show the effective configuration after merging defaults, config file, and environment variables.`,
	Example: `  # Show effective configuration
  logic2sql config show

  # Show configuration with source file path
  logic2sql config show --source`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd.OutOrStdout(), cfg, configPath, configShowSource)
	},
}

func showConfig(out io.Writer, config any, path string, source bool) error {
	if source {
		if path != "" {
			fmt.Fprintf(out, "Config file: %s\n\n", path)
		} else {
			fmt.Fprintln(out, "Config file: (none, using defaults)")
			fmt.Fprintln(out)
		}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return cli.GeneralError("encoding configuration", err)
	}
	fmt.Fprint(out, string(data))
	return nil
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowSource, "source", false, "show config file source")
	configCmd.AddCommand(configShowCmd)
}
