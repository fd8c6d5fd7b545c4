package prices

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murray-rothbot/murray-go/api"
	"github.com/murray-rothbot/murray-go/internal/apitest"
)

func newSut(t *testing.T, path string, status int, resBody string) (*Client, *apitest.Mock) {
	t.Helper()
	m := apitest.NewMock(t, apitest.Route{Method: http.MethodGet, Path: path, Status: status, ResBody: resBody})
	c := NewClient("")
	c.SetBaseURL(m.URL)
	return c, m
}

func TestConvertCurrency(t *testing.T) {
	body := apitest.Fixture(t, "convert.json")
	c, m := newSut(t, "/convert", http.StatusOK, apitest.Envelope(body))

	res, err := c.ConvertCurrency(context.Background(), ConvertCurrencyParams{Currency: BRL, Value: 100})
	require.NoError(t, err)
	m.AssertHit(t)
	require.Equal(t, "currency=BRL&value=100", m.RawQuery())
	require.Equal(t, "0.00065520", res.BTC)
	apitest.RequireRoundTrip(t, body, res)

	sats, err := res.Amount(SATS)
	require.NoError(t, err)
	assert.True(t, sats.Equal(decimal.NewFromInt(65520)))

	brl, err := res.Amount(BRL)
	require.NoError(t, err)
	assert.Equal(t, "100", brl.String())
}

func TestConvertCurrency_NegativeValue(t *testing.T) {
	c, m := newSut(t, "/convert", http.StatusOK, apitest.Envelope(apitest.Fixture(t, "convert.json")))

	_, err := c.ConvertCurrency(context.Background(), ConvertCurrencyParams{Currency: SATS, Value: -5})
	require.NoError(t, err)
	require.Equal(t, "currency=SATS&value=-5", m.RawQuery())
}

func TestConvertCurrency_AmountErrors(t *testing.T) {
	_, err := ConvertCurrency{BTC: "n/a"}.Amount(BTC)
	require.Error(t, err)

	_, err = ConvertCurrency{}.Amount(Currency("EUR"))
	require.Error(t, err)
}

func TestGetTicker(t *testing.T) {
	body := apitest.Fixture(t, "ticker.json")
	c, m := newSut(t, "/ticker", http.StatusOK, apitest.Envelope(body))

	ticker, err := c.GetTicker(context.Background(), GetTickerParams{Symbol: BTCBRL})
	require.NoError(t, err)
	m.AssertHit(t)
	require.Equal(t, "symbol=BTCBRL", m.RawQuery())
	require.Equal(t, "Binance", ticker.Source)
	require.True(t, ticker.Price.Equal(decimal.RequireFromString("152620")))
	require.True(t, ticker.Change24h.Equal(decimal.RequireFromString("-1.27")))
}

func TestGetTickers(t *testing.T) {
	body := apitest.Fixture(t, "tickers.json")
	c, m := newSut(t, "/tickers", http.StatusOK, apitest.Envelope(body))

	res, err := c.GetTickers(context.Background(), GetTickerParams{Symbol: BTCBRL})
	require.NoError(t, err)
	m.AssertHit(t)
	require.Equal(t, "symbol=BTCBRL", m.RawQuery())
	require.Len(t, res.Tickers, 3)

	// numbers and strings decode alike
	require.True(t, res.Tickers[1].Price.Equal(decimal.NewFromInt(152580)))
	require.True(t, res.Tickers[1].Change24h.Equal(decimal.RequireFromString("-1.1")))

	require.True(t, res.Average().Equal(decimal.RequireFromString("152633.3333333333333333")),
		"got %s", res.Average())
}

func TestGetTickers_TickerMissingPrice(t *testing.T) {
	c, _ := newSut(t, "/tickers", http.StatusOK, apitest.Envelope(`{"tickers": [
		{"source": "Binance", "symbol": "BTCBRL", "price": "152620.00", "change24h": "-1.27"},
		{"source": "Foxbit", "symbol": "BTCBRL", "change24h": "0.5"}
	]}`))

	_, err := c.GetTickers(context.Background(), GetTickerParams{Symbol: BTCBRL})
	require.ErrorIs(t, err, api.ErrJSONParseError)
	require.ErrorContains(t, err, "tickers[1].price")
}

func TestTickers_AverageEmpty(t *testing.T) {
	require.True(t, Tickers{}.Average().IsZero())
}

func TestGetHealth(t *testing.T) {
	c, m := newSut(t, "/health", http.StatusOK, apitest.Envelope(apitest.Fixture(t, "health.json")))

	h, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	m.AssertHit(t)
	require.Equal(t, "Prices service is up and running.", h.Message)
}

type operation struct {
	name string
	path string
	call func(context.Context, *Client) error
}

func operations() []operation {
	ticker := GetTickerParams{Symbol: BTCBRL}
	return []operation{
		{"ConvertCurrency", "/convert", func(ctx context.Context, c *Client) error {
			_, err := c.ConvertCurrency(ctx, ConvertCurrencyParams{Currency: BRL, Value: 100})
			return err
		}},
		{"GetTicker", "/ticker", func(ctx context.Context, c *Client) error {
			_, err := c.GetTicker(ctx, ticker)
			return err
		}},
		{"GetTickers", "/tickers", func(ctx context.Context, c *Client) error {
			_, err := c.GetTickers(ctx, ticker)
			return err
		}},
		{"GetHealth", "/health", func(ctx context.Context, c *Client) error {
			_, err := c.GetHealth(ctx)
			return err
		}},
	}
}

func TestOperations_Errors(t *testing.T) {
	for _, op := range operations() {
		t.Run(op.name+"/problem with server", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusBadRequest, "")
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrAPIError)
			m.AssertHit(t)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		})

		t.Run(op.name+"/wrong json", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, "wrong-return")
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrJSONParseError)
			m.AssertHit(t)
		})

		t.Run(op.name+"/missing required fields", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, apitest.Envelope(`{"unexpected": 1}`))
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrJSONParseError)
			m.AssertHit(t)
		})

		t.Run(op.name+"/unreachable", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, "")
			m.Close()
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrBadRequest)
		})

		t.Run(op.name+"/invalid base url", func(t *testing.T) {
			c := NewClient("not a url")
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrInvalidURLParams)
		})
	}
}

func TestNewClient_DefaultURL(t *testing.T) {
	require.Equal(t, api.DefaultPricesURL, NewClient("").BaseURL())
}
