package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poki/logic-filter-to-sql/filter"
	"github.com/poki/logic-filter-to-sql/internal/cli"
)

var (
	renderExpr        string
	renderLegacySplit bool
	renderCheck       bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Convert a filter into an SQL condition",
	Long: `Convert a JSON filter into an SQL condition.

The filter is read from --expr, from the given file, or from stdin when no
file (or "-") is given.`,
	Example: `  # Convert a literal filter
  logic2sql render --expr '{"and": ["a.b", {"or": ["c.d", "e.f"]}], "not": true}'

  # Convert a filter file and validate the result
  logic2sql render --check filter.json

  # Read from stdin
  echo '{"or": ["a.b", "c.d"]}' | logic2sql render`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cli.ReadInput(renderExpr, args, cmd.InOrStdin())
		if err != nil {
			return cli.InputError("reading input", err)
		}

		conditions, err := convert(input,
			resolveBool(cmd, "legacy-split", renderLegacySplit, cfg.Render.LegacySplit),
			resolveBool(cmd, "check", renderCheck, cfg.Render.Check),
		)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), conditions)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderExpr, "expr", "", "filter as a JSON literal")
	renderCmd.Flags().BoolVar(&renderLegacySplit, "legacy-split", false, "split leaves on every dot")
	renderCmd.Flags().BoolVar(&renderCheck, "check", false, "validate the condition with the PostgreSQL parser")
}

// convert runs the filter conversion and maps its errors to exit codes.
func convert(input []byte, legacySplit, check bool) (string, error) {
	options := []filter.Option{filter.WithLogger(logger)}
	if legacySplit {
		options = append(options, filter.WithLegacyLeafSplit())
	}
	if check {
		options = append(options, filter.WithCheck())
	}

	conditions, err := filter.NewConverter(options...).Convert(input)
	if errors.Is(err, filter.ErrInvalidSQL) {
		return "", cli.CheckError("checking condition", err)
	}
	if err != nil {
		return "", cli.ParseError("converting filter", err)
	}
	return conditions, nil
}
