// Package blockchain is a client for the murray blockchain service: blocks,
// fees, addresses, transactions, mining and mempool data.
package blockchain

import (
	"context"

	"github.com/murray-rothbot/murray-go/api"
)

// Client calls the blockchain service.
type Client struct {
	api  *api.Client
	base *api.Endpoint
}

// NewClient creates a blockchain client rooted at baseURL.
func NewClient(baseURL string, opts ...api.Option) *Client {
	return NewClientWith(baseURL, api.NewClient(opts...))
}

// NewClientWith creates a blockchain client that shares an existing api.Client.
func NewClientWith(baseURL string, c *api.Client) *Client {
	if baseURL == "" {
		baseURL = api.DefaultBlockchainURL
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

func blockQuery(params GetBlockParams) api.Params {
	q := api.Params{}.AddOptional("hash", params.Hash)
	if params.Height != nil {
		q = q.AddUint("height", uint64(*params.Height))
	}
	return q
}

// GetBlock fetches a block by hash and/or height, or the tip when neither is set.
func (c *Client) GetBlock(ctx context.Context, params GetBlockParams) (*Block, error) {
	return api.Fetch[Block](ctx, c.api, c.base, []string{"block"}, blockQuery(params))
}

// GetBlock2Time fetches the timestamp of a block by hash and/or height.
func (c *Client) GetBlock2Time(ctx context.Context, params GetBlockParams) (*Block2Time, error) {
	return api.Fetch[Block2Time](ctx, c.api, c.base, []string{"block2time"}, blockQuery(params))
}

// GetFeesRecommended fetches the recommended fee tiers.
func (c *Client) GetFeesRecommended(ctx context.Context) (*FeesRecommended, error) {
	return api.Fetch[FeesRecommended](ctx, c.api, c.base, []string{"fees", "recommended"}, nil)
}

// GetFeesMempoolBlocks fetches the projected mempool blocks.
func (c *Client) GetFeesMempoolBlocks(ctx context.Context) ([]MempoolBlock, error) {
	return api.FetchList[MempoolBlock](ctx, c.api, c.base, []string{"fees", "mempool-blocks"}, nil)
}

// GetAddressDetails fetches confirmed and mempool stats of an address.
func (c *Client) GetAddressDetails(ctx context.Context, params GetAddressParams) (*AddressDetails, error) {
	return api.Fetch[AddressDetails](ctx, c.api, c.base, []string{"address", params.Address}, nil)
}

// GetAddressTransactions fetches the transactions of an address, newest first.
func (c *Client) GetAddressTransactions(ctx context.Context, params GetAddressParams) ([]Transaction, error) {
	return api.FetchList[Transaction](ctx, c.api, c.base, []string{"address", params.Address, "txs"}, nil)
}

// GetAddressUTXOs fetches the unspent outputs of an address.
func (c *Client) GetAddressUTXOs(ctx context.Context, params GetAddressParams) ([]UTXO, error) {
	return api.FetchList[UTXO](ctx, c.api, c.base, []string{"address", params.Address, "txs", "utxo"}, nil)
}

// GetHashrate fetches the hashrate and difficulty history.
func (c *Client) GetHashrate(ctx context.Context) (*Hashrate, error) {
	return api.Fetch[Hashrate](ctx, c.api, c.base, []string{"hashrate"}, nil)
}

// GetMempool fetches the mempool backlog summary.
func (c *Client) GetMempool(ctx context.Context) (*Mempool, error) {
	return api.Fetch[Mempool](ctx, c.api, c.base, []string{"mempool"}, nil)
}

// GetTransaction fetches a transaction by txid.
func (c *Client) GetTransaction(ctx context.Context, params GetTransactionParams) (*Transaction, error) {
	return api.Fetch[Transaction](ctx, c.api, c.base, []string{"tx", params.TxID}, nil)
}

// PostTransaction broadcasts a signed raw transaction and returns its txid.
func (c *Client) PostTransaction(ctx context.Context, params PostTransactionParams) (*PostTransaction, error) {
	return api.Send[PostTransaction](ctx, c.api, c.base, []string{"tx"}, postTransactionBody{TxHex: params.TxHex})
}

// GetHealth fetches the service status message.
func (c *Client) GetHealth(ctx context.Context) (*api.Health, error) {
	return api.GetHealth(ctx, c.api, c.base)
}
