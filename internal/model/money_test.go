package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1500.5", "1500.50"},
		{" 20 ", "20.00"},
		{"-0.01", "-0.01"},
		{"1e+06", "1000000.00"},
		{"2.5E3", "2500.00"},
	}
	for _, tt := range tests {
		d, err := ParseAmount(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, d.StringFixed(2), "input %q", tt.in)
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, in := range []string{"1e400000000", "1e-400000000", "1e29"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrAmountOutOfRange, "input %q", in)
	}

	_, err := ParseAmount("ten")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAmountOutOfRange)

	d, err := ParseAmount("1e28")
	require.NoError(t, err)
	assert.True(t, decimal.New(1, 28).Equal(d))
}
