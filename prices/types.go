package prices

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConvertCurrencyParams is the amount to convert and its unit.
type ConvertCurrencyParams struct {
	Currency Currency
	Value    int64
}

// GetTickerParams selects a trading pair.
type GetTickerParams struct {
	Symbol Symbol
}

// ConvertCurrency holds an amount expressed in every supported unit.
// Values are decimal strings as sent by the service.
type ConvertCurrency struct {
	BTC string `json:"btc"`
	USD string `json:"usd"`
	BRL string `json:"brl"`
	Sat string `json:"sat"`
}

// Amount parses the value for cur.
func (c ConvertCurrency) Amount(cur Currency) (decimal.Decimal, error) {
	var raw string
	switch cur {
	case BTC:
		raw = c.BTC
	case USD:
		raw = c.USD
	case BRL:
		raw = c.BRL
	case SATS:
		raw = c.Sat
	default:
		return decimal.Zero, fmt.Errorf("unknown currency %q", cur)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s amount %q: %w", cur, raw, err)
	}
	return d, nil
}

// Ticker is the last price of a pair on one exchange.
// Price and Change24h accept a JSON number or a decimal string.
type Ticker struct {
	Source    string          `json:"source"`
	Symbol    string          `json:"symbol" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Change24h decimal.Decimal `json:"change24h"`
}

// Tickers is the last price of a pair across exchanges.
type Tickers struct {
	Tickers []Ticker `json:"tickers"`
}

// Average returns the mean price across tickers, or zero when there are none.
func (t Tickers) Average() decimal.Decimal {
	if len(t.Tickers) == 0 {
		return decimal.Zero
	}
	prices := make([]decimal.Decimal, 0, len(t.Tickers))
	for _, ticker := range t.Tickers {
		prices = append(prices, ticker.Price)
	}
	return decimal.Avg(prices[0], prices[1:]...)
}
