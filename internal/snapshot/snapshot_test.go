package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bank_data.csv")
	records := []model.AccountRecord{
		{Number: "ACCT1001", Holder: "Alice", Category: model.CategorySavings, Balance: dec("12.34")},
	}

	require.NoError(t, Save(path, records))

	_, err := os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist, "temp file is renamed away")

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ACCT1001", got[0].Number)
	assert.True(t, dec("12.34").Equal(got[0].Balance))
}

func TestSave_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.csv")
	require.NoError(t, Save(path, []model.AccountRecord{
		{Number: "ACCT1001", Holder: "Alice", Category: model.CategorySavings, Balance: dec("1")},
		{Number: "ACCT1002", Holder: "Bob", Category: model.CategoryCurrent, Balance: dec("2")},
	}))
	require.NoError(t, Save(path, nil))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("ACCT1001,Alice\n\"unterminated"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
