// Package snapshot persists account balances between runs as a CSV file.
// Credentials and transaction history are not part of a snapshot.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

// ErrUnavailable wraps any failure to load a snapshot. Callers treat it as
// "start with no accounts" rather than a fatal error.
var ErrUnavailable = errors.New("snapshot unavailable")

// Load reads the snapshot at path.
func Load(path string) ([]model.AccountRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrUnavailable, path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	return records, nil
}

// Save writes records to path, replacing any previous snapshot in one rename.
func Save(path string, records []model.AccountRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}

	if err := WriteRecords(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing snapshot: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing snapshot: %w", err)
	}
	return nil
}
