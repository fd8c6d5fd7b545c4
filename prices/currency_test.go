package prices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"BRL", BRL, false},
		{"brl", BRL, false},
		{"Sats", SATS, false},
		{"usd", USD, false},
		{"BTC", BTC, false},
		{"EUR", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCurrency(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestParseSymbol(t *testing.T) {
	got, err := ParseSymbol("btcusdt")
	require.NoError(t, err)
	assert.Equal(t, BTCUSDT, got)
	assert.Equal(t, "BTCUSDT", got.String())

	_, err = ParseSymbol("ETHUSD")
	require.Error(t, err)
}

func TestValid_IsCaseSensitive(t *testing.T) {
	assert.False(t, Currency("brl").Valid())
	assert.False(t, Symbol("btcbrl").Valid())
	assert.True(t, BTCBRL.Valid())
}
