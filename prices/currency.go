package prices

import (
	"fmt"
	"strings"
)

// Currency is a unit accepted by /convert. The wire form is the constant's name.
type Currency string

const (
	BTC  Currency = "BTC"
	BRL  Currency = "BRL"
	SATS Currency = "SATS"
	USD  Currency = "USD"
)

// Currencies lists every supported Currency.
var Currencies = []Currency{BTC, BRL, SATS, USD}

func (c Currency) String() string { return string(c) }

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCurrency matches s against the supported currencies, ignoring case.
func ParseCurrency(s string) (Currency, error) {
	for _, known := range Currencies {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown currency %q", s)
}

// Symbol is a trading pair accepted by /ticker and /tickers.
type Symbol string

const (
	BTCUSD  Symbol = "BTCUSD"
	BTCBRL  Symbol = "BTCBRL"
	BTCUSDT Symbol = "BTCUSDT"
)

// Symbols lists every supported Symbol.
var Symbols = []Symbol{BTCUSD, BTCBRL, BTCUSDT}

func (s Symbol) String() string { return string(s) }

// Valid reports whether s is a supported symbol.
func (s Symbol) Valid() bool {
	for _, known := range Symbols {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSymbol matches s against the supported symbols, ignoring case.
func ParseSymbol(s string) (Symbol, error) {
	for _, known := range Symbols {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown symbol %q", s)
}
