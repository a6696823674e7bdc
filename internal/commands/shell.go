package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/shell"
)

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive banking menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			l, err := e.openLedger()
			if err != nil {
				return err
			}

			session := shell.New(l, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
				BankName:       e.cfg.Bank.Name,
				AdminPassword:  e.cfg.Security.AdminPassword,
				MaxAttempts:    e.cfg.Security.MaxLoginAttempts,
				StatementCount: e.cfg.Statement.DefaultCount,
				Rates:          e.rates(),
			}, e.logger)

			runErr := session.Run()
			if err := e.persist(l); err != nil {
				return err
			}
			if runErr != nil {
				return fmt.Errorf("shell: %w", runErr)
			}
			return nil
		},
	}
}
