package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/shell"
)

func newAccountsCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List every account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			if err := e.checkAdmin(password); err != nil {
				return err
			}

			l, err := e.openLedger()
			if err != nil {
				return err
			}
			return shell.WriteAccounts(cmd.OutOrStdout(), l.ListAccounts())
		},
	}

	cmd.Flags().StringVar(&password, "admin-password", "", "admin password (required)")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}

func newInterestCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Apply one month of interest to every account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load()
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			if err := e.checkAdmin(password); err != nil {
				return err
			}

			l, err := e.openLedger()
			if err != nil {
				return err
			}

			accrueErr := l.AccrueInterestAll()
			if err := e.persist(l); err != nil {
				return err
			}
			if accrueErr != nil {
				return fmt.Errorf("applying interest: %w", accrueErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Monthly interest applied to %d accounts.\n", l.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "admin-password", "", "admin password (required)")
	_ = cmd.MarkFlagRequired("admin-password")

	return cmd
}
