package money

import (
	"testing"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDisplay(t *testing.T) {
	c, err := NewConverter(decimal.NewFromInt(65000))
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(10400000).Equal(c.ToDisplay(decimal.NewFromInt(160))))
	assert.True(t, decimal.NewFromInt(13650000).Equal(c.ToDisplay(decimal.NewFromInt(210))))
}

func TestFormat(t *testing.T) {
	c, err := ParseRate("65000")
	require.NoError(t, err)

	assert.Equal(t, "13,650,000 IRT", c.Format(decimal.NewFromInt(210), domain.LangEN))
	assert.Equal(t, "10,400,000 IRT", c.Format(decimal.NewFromInt(160), domain.LangEN))

	fa := c.Format(decimal.NewFromInt(210), domain.LangFA)
	assert.Contains(t, fa, "تومان")
}

func TestFormatUSD(t *testing.T) {
	c, err := ParseRate("65000")
	require.NoError(t, err)
	tests := []struct {
		in   string
		want string
	}{
		{"1020", "1,020.00 USD"},
		{"0.5", "0.50 USD"},
		{"12345678.905", "12,345,678.91 USD"},
		{"90071992547409.99", "90,071,992,547,409.99 USD"},
		{"-3.1", "-3.10 USD"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FormatUSD(decimal.RequireFromString(tt.in), domain.LangEN))
		})
	}
}

func TestInvalidRate(t *testing.T) {
	tests := []string{"0", "-1", "abc"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseRate(in)
			assert.Error(t, err)
		})
	}
}
