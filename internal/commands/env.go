package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/auditlog"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/config"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/id"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/ledger"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/logging"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
	"github.com/Pramod-Kumar79/Banking-Management-System/internal/snapshot"
)

var errAdminDenied = errors.New("invalid admin password")

// corruptStamp suffixes snapshots moved aside, so earlier copies are kept.
const corruptStamp = "20060102T150405.000000000Z"

// env is the loaded configuration shared by the commands that touch the ledger.
type env struct {
	cfg    *config.Config
	dir    string
	logger *zap.Logger
}

func (o *rootOptions) load() (*env, error) {
	logger, err := logging.New(o.verbose)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	path, err := filepath.Abs(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, dir: filepath.Dir(path), logger: logger}, nil
}

func (e *env) snapshotPath() string {
	return config.Resolve(e.dir, e.cfg.Storage.Snapshot)
}

func (e *env) auditLogPath() string {
	return config.Resolve(e.dir, e.cfg.Storage.AuditLog)
}

func (e *env) checkAdmin(password string) error {
	if password != e.cfg.Security.AdminPassword {
		e.logger.Warn("admin command rejected")
		return errAdminDenied
	}
	return nil
}

func (e *env) rates() ledger.Rates {
	return ledger.Rates{
		model.CategorySavings: decimal.NewFromFloat(e.cfg.Interest.Savings),
		model.CategoryCurrent: decimal.NewFromFloat(e.cfg.Interest.Current),
	}
}

// openLedger builds a Ledger from config and restores the snapshot. A missing
// or unreadable snapshot starts an empty bank; an unreadable file is moved
// aside first so the next save cannot overwrite it. Numbers already present
// in the audit log are never issued again, even when the snapshot is lost.
func (e *env) openLedger() (*ledger.Ledger, error) {
	seq := id.NewSequence(e.cfg.Accounts.NumberPrefix, e.cfg.Accounts.NumberBase)
	if err := auditlog.Accounts(e.auditLogPath(), seq.Observe); err != nil {
		return nil, fmt.Errorf("reading issued account numbers: %w", err)
	}

	l := ledger.New(
		ledger.WithLogger(e.logger),
		ledger.WithSequence(seq),
		ledger.WithRates(e.rates()),
		ledger.WithPlaceholderPIN(e.cfg.Accounts.PlaceholderPIN),
	)

	path := e.snapshotPath()
	records, err := snapshot.Load(path)
	if err == nil {
		err = l.Restore(records)
	}
	if err == nil {
		return l, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		e.logger.Warn("no snapshot found, starting with no accounts", zap.String("path", path))
		return l, nil
	}

	aside := path + ".corrupt-" + time.Now().UTC().Format(corruptStamp)
	e.logger.Error("snapshot unusable, starting with no accounts",
		zap.String("path", path),
		zap.String("moved_to", aside),
		zap.Error(err),
	)
	if rerr := os.Rename(path, aside); rerr != nil {
		return nil, fmt.Errorf("moving unusable snapshot aside: %w", rerr)
	}
	return l, nil
}

// persist audits the ledger, then writes the snapshot and appends every
// in-memory transaction to the audit log.
func (e *env) persist(l *ledger.Ledger) error {
	if verrs := l.Audit(); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		e.logger.Error("ledger audit failed, not saving", zap.Strings("violations", msgs))
		return fmt.Errorf("ledger audit failed: %s", strings.Join(msgs, "; "))
	}

	if err := snapshot.Save(e.snapshotPath(), l.Snapshot()); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	if txns := l.History(); len(txns) > 0 {
		if err := auditlog.Append(e.auditLogPath(), txns); err != nil {
			return fmt.Errorf("writing audit log: %w", err)
		}
	}
	return nil
}
