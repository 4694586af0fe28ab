package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:     "ledger",
		Short:   "In-memory double-entry bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "ledger.yaml", "path to ledger.yaml")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional .env file with LEDGER_* overrides")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newChartCommand(&opts))
	rootCmd.AddCommand(newServeCommand(&opts))
	rootCmd.AddCommand(newShellCommand(&opts))

	return rootCmd
}
