package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/poki/logic-filter-to-sql/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *slog.Logger

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "logic2sql",
	Short: "Convert JSON boolean filters into SQL conditions",
	Long: `logic2sql - JSON boolean filters to SQL

logic2sql turns nested "and", "or" and "not" filters over "field.value"
comparisons into a parenthesized SQL condition.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}
		logger = cli.NewLogger(cmd.ErrOrStderr(), cfg.Log, verbose, quiet)
		logger.Debug("loaded configuration", slog.String("path", configPath))

		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover logic2sql.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveBool returns the flag value when the flag was set on the command
// line, even to false, and the config value otherwise.
func resolveBool(cmd *cobra.Command, flag string, flagValue, configValue bool) bool {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return configValue
}
