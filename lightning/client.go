// Package lightning is a client for the murray lightning service: node
// details, network statistics and top-node rankings.
package lightning

import (
	"context"

	"github.com/murray-rothbot/murray-go/api"
)

// Client calls the lightning service.
type Client struct {
	api  *api.Client
	base *api.Endpoint
}

// NewClient creates a lightning client rooted at baseURL.
func NewClient(baseURL string, opts ...api.Option) *Client {
	return NewClientWith(baseURL, api.NewClient(opts...))
}

// NewClientWith creates a lightning client that shares an existing api.Client.
func NewClientWith(baseURL string, c *api.Client) *Client {
	if baseURL == "" {
		baseURL = api.DefaultLightningURL
	}
	return &Client{api: c, base: api.NewEndpoint(baseURL)}
}

// BaseURL returns the URL requests are currently sent to.
func (c *Client) BaseURL() string {
	return c.base.Get()
}

// SetBaseURL changes the base URL on the fly.
func (c *Client) SetBaseURL(baseURL string) {
	c.base.Set(baseURL)
}

// GetNodeDetails fetches a node by public key.
func (c *Client) GetNodeDetails(ctx context.Context, params GetNodeDetailsParams) (*NodeData, error) {
	return api.Fetch[NodeData](ctx, c.api, c.base, []string{"node", params.PublicKey}, nil)
}

// GetStatistics fetches the latest and previous network statistics.
func (c *Client) GetStatistics(ctx context.Context) (*Statistics, error) {
	return api.Fetch[Statistics](ctx, c.api, c.base, []string{"statistics"}, nil)
}

// GetTopNodes fetches the top-node rankings.
func (c *Client) GetTopNodes(ctx context.Context) (*TopNodes, error) {
	return api.Fetch[TopNodes](ctx, c.api, c.base, []string{"top"}, nil)
}

// GetHealth fetches the service status message.
func (c *Client) GetHealth(ctx context.Context) (*api.Health, error) {
	return api.GetHealth(ctx, c.api, c.base)
}
