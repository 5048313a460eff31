package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poki/logic-filter-to-sql/internal/cli"
)

var checkExpr string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate that a filter converts into valid SQL",
	Long: `Convert a JSON filter and validate the condition with the PostgreSQL parser.

Only syntax is checked, column names are not resolved.`,
	Example: `  # Check a filter file
  logic2sql check filter.json

  # Check a literal filter
  logic2sql check --expr '{"and": []}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cli.ReadInput(checkExpr, args, cmd.InOrStdin())
		if err != nil {
			return cli.InputError("reading input", err)
		}

		conditions, err := convert(input, cfg.Render.LegacySplit, true)
		if err != nil {
			return err
		}

		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "Condition is valid:")
			fmt.Fprintln(cmd.OutOrStdout(), conditions)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkExpr, "expr", "", "filter as a JSON literal")
}
