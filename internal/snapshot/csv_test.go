package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pramod-Kumar79/Banking-Management-System/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundTrip(t *testing.T) {
	records := []model.AccountRecord{
		{Number: "ACCT1001", Holder: "Alice Smith", Category: model.CategorySavings, Balance: dec("1500.5")},
		{Number: "ACCT1002", Holder: "Bob, Jr.", Category: model.CategoryCurrent, Balance: dec("0")},
	}

	var buf bytes.Buffer
	err := WriteRecords(&buf, records)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(buf.String(), Header+"\n"))
	assert.Contains(t, buf.String(), "ACCT1001,Alice Smith,savings,1500.50\n")

	got, err := ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ACCT1001", got[0].Number)
	assert.Equal(t, "Alice Smith", got[0].Holder)
	assert.Equal(t, model.CategorySavings, got[0].Category)
	assert.True(t, dec("1500.50").Equal(got[0].Balance))

	assert.Equal(t, "Bob, Jr.", got[1].Holder)
	assert.Equal(t, model.CategoryCurrent, got[1].Category)
	assert.True(t, got[1].Balance.IsZero())
}

func TestReadRecords_Legacy(t *testing.T) {
	input := "ACCT1001,Alice,0,1500.5\nACCT1002,Bob,1,20\n"

	got, err := ReadRecords(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, model.CategorySavings, got[0].Category)
	assert.True(t, dec("1500.50").Equal(got[0].Balance))
	assert.Equal(t, model.CategoryCurrent, got[1].Category)
	assert.Equal(t, "Bob", got[1].Holder)
}

func TestReadRecords_Empty(t *testing.T) {
	for _, input := range []string{"", Header + "\n"} {
		got, err := ReadRecords(strings.NewReader(input))
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestReadRecords_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong field count", "ACCT1001,Alice,0\n"},
		{"bad category", Header + "\nACCT1001,Alice,gold,10\n"},
		{"bad balance", Header + "\nACCT1001,Alice,savings,ten\n"},
		{"huge exponent", Header + "\nACCT1001,Alice,savings,1e400000000\n"},
		{"empty number", Header + "\n,Alice,savings,10\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRecords(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestUnmarshalRecord_RowNumberInError(t *testing.T) {
	input := Header + "\nACCT1001,Alice,savings,10\nACCT1002,Bob,savings,x\n"
	_, err := ReadRecords(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}
