package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/auditlog"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/shell"
)

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "history <account>",
		Short: "Show an account's recorded transactions from the audit log",
		Args:  cobra.ExactArgs(1),
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
			acct, err := l.Lookup(args[0])
			if err != nil {
				return err
			}

			txns, err := auditlog.ReadAccount(e.auditLogPath(), acct.Number())
			if err != nil {
				return err
			}

			n := last
			if !cmd.Flags().Changed("last") {
				n = e.cfg.Statement.DefaultCount
			}
			if n > 0 && len(txns) > n {
				txns = txns[len(txns)-n:]
			}
			if n <= 0 {
				n = len(txns)
			}

			if err := shell.WriteStatement(cmd.OutOrStdout(), acct.Summary(), txns, n); err != nil {
				return fmt.Errorf("writing statement: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&last, "last", "n", 0, "number of transactions to show (0 for all; default from config)")

	return cmd
}
