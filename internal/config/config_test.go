package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Bank")
	cfg.Interest.Savings = 0.05
	cfg.Security.AdminPassword = "s3cret"

	path := filepath.Join(t.TempDir(), Filename)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Bank.Name, got.Bank.Name)
	assert.Equal(t, cfg.Storage, got.Storage)
	assert.Equal(t, cfg.Accounts, got.Accounts)
	assert.InDelta(t, 0.05, got.Interest.Savings, 0.0001)
	assert.InDelta(t, cfg.Interest.Current, got.Interest.Current, 0.0001)
	assert.Equal(t, "s3cret", got.Security.AdminPassword)
	assert.Equal(t, cfg.Security.MaxLoginAttempts, got.Security.MaxLoginAttempts)
	assert.Equal(t, cfg.Statement.DefaultCount, got.Statement.DefaultCount)
}

func TestDefaults(t *testing.T) {
	cfg := Default("")

	assert.Equal(t, "Banking Management System", cfg.Bank.Name)
	assert.Equal(t, "bank_data.csv", cfg.Storage.Snapshot)
	assert.Equal(t, filepath.Join("logs", "transactions.csv"), cfg.Storage.AuditLog)
	assert.Equal(t, "ACCT", cfg.Accounts.NumberPrefix)
	assert.Equal(t, 1000, cfg.Accounts.NumberBase)
	assert.Equal(t, "0000", cfg.Accounts.PlaceholderPIN)
	assert.InDelta(t, 0.04, cfg.Interest.Savings, 0.0001)
	assert.InDelta(t, 0.01, cfg.Interest.Current, 0.0001)
	assert.Equal(t, 3, cfg.Security.MaxLoginAttempts)
	assert.Equal(t, "admin123", cfg.Security.AdminPassword)
	assert.Equal(t, 5, cfg.Statement.DefaultCount)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte("interest:\n  savings: 0.06\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.06, cfg.Interest.Savings, 0.0001)
	assert.InDelta(t, 0.01, cfg.Interest.Current, 0.0001)
	assert.Equal(t, "admin123", cfg.Security.AdminPassword)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "bank: [unterminated"},
		{"zero rate", "interest:\n  current: 0\n"},
		{"no attempts", "security:\n  max_login_attempts: 0\n"},
		{"empty placeholder", "accounts:\n  placeholder_pin: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), Filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(""), cfg)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, Save(path, Default("Test Bank")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Bank")
	assert.Contains(t, contents, "snapshot: bank_data.csv")
	assert.Contains(t, contents, "number_prefix: ACCT")
	assert.Contains(t, contents, "savings: 0.04")
	assert.Contains(t, contents, "max_login_attempts: 3")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv/bank", "bank_data.csv"), Resolve("/srv/bank", "bank_data.csv"))
	assert.Equal(t, "/var/lib/bank.csv", Resolve("/srv/bank", "/var/lib/bank.csv"))
	assert.Equal(t, "", Resolve("/srv/bank", ""))
}
