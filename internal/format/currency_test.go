package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_Format(t *testing.T) {
	cur, err := NewCurrency("en-US", "$")
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "thousands", amount: "125000", want: "$125,000.00"},
		{name: "fraction", amount: "2500.5", want: "$2,500.50"},
		{name: "rounding", amount: "0.125", want: "$0.13"},
		{name: "zero", amount: "0", want: "$0.00"},
		{name: "debit", amount: "-5000", want: "-$5,000.00"},
		{name: "millions", amount: "1234567.89", want: "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cur.Format(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestCurrency_IndianRupee(t *testing.T) {
	cur, err := NewCurrency("en-IN", "₹")
	require.NoError(t, err)

	got := cur.Format(decimal.NewFromInt(-5000))
	assert.Equal(t, "-₹5,000.00", got)
}

func TestNewCurrency_InvalidLocale(t *testing.T) {
	_, err := NewCurrency("not a locale!", "₹")
	assert.Error(t, err)
}
