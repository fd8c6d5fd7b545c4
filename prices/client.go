// Package prices is a client for the murray prices service: currency
// conversion and exchange tickers.
package prices

import (
	"context"

	"github.com/murray-rothbot/murray-go/api"
)

// Client calls the prices service.
type Client struct {
	api  *api.Client
	base *api.Endpoint
}

// NewClient creates a prices client rooted at baseURL.
func NewClient(baseURL string, opts ...api.Option) *Client {
	return NewClientWith(baseURL, api.NewClient(opts...))
}

// NewClientWith creates a prices client that shares an existing api.Client.
func NewClientWith(baseURL string, c *api.Client) *Client {
	if baseURL == "" {
		baseURL = api.DefaultPricesURL
	}
	return &Client{api: c, base: api.NewEndpoint(baseURL)}
}

// BaseURL returns the URL requests are currently sent to.
func (c *Client) BaseURL() string {
	return c.base.Get()
}

// SetBaseURL changes the base URL for subsequent calls.
func (c *Client) SetBaseURL(baseURL string) {
	c.base.Set(baseURL)
}

// ConvertCurrency converts value units of currency into every supported unit.
func (c *Client) ConvertCurrency(ctx context.Context, params ConvertCurrencyParams) (*ConvertCurrency, error) {
	q := api.Params{}.
		Add("currency", params.Currency.String()).
		AddInt("value", params.Value)
	return api.Fetch[ConvertCurrency](ctx, c.api, c.base, []string{"convert"}, q)
}

// GetTicker fetches the last price of a pair.
func (c *Client) GetTicker(ctx context.Context, params GetTickerParams) (*Ticker, error) {
	q := api.Params{}.Add("symbol", params.Symbol.String())
	return api.Fetch[Ticker](ctx, c.api, c.base, []string{"ticker"}, q)
}

// GetTickers fetches the last price of a pair on every tracked exchange.
func (c *Client) GetTickers(ctx context.Context, params GetTickerParams) (*Tickers, error) {
	q := api.Params{}.Add("symbol", params.Symbol.String())
	return api.Fetch[Tickers](ctx, c.api, c.base, []string{"tickers"}, q)
}

// GetHealth fetches the service status message.
func (c *Client) GetHealth(ctx context.Context) (*api.Health, error) {
	return api.GetHealth(ctx, c.api, c.base)
}
