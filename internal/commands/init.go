package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/config"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bank data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bank name shown in the shell banner")

	return cmd
}

func runInit(out io.Writer, dir, name string) error {
	cfgPath := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write bank.yaml.
	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty snapshot so the first run starts cleanly.
	if err := snapshot.Save(config.Resolve(dir, cfg.Storage.Snapshot), nil); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(config.Resolve(dir, cfg.Storage.AuditLog)), 0o755); err != nil {
		return fmt.Errorf("creating audit log directory: %w", err)
	}

	fmt.Fprintf(out, "Initialized %s at %s\n", cfg.Bank.Name, dir)
	return nil
}
