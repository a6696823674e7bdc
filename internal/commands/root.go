package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/buildinfo"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/config"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "bank",
		Short:   "Single-process banking ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.Filename, "path to bank.yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(),
		newShellCommand(opts),
		newAccountsCommand(opts),
		newInterestCommand(opts),
		newHistoryCommand(opts),
	)

	return rootCmd
}
