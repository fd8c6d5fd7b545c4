// Package murray bundles the blockchain, prices and lightning clients behind
// one value.
//
// Usage:
//
//	m := murray.Default()
//	fees, err := m.Blockchain.GetFeesRecommended(ctx)
//
//	m = murray.New(murray.BaseEndpoints{Prices: "http://localhost:3001"},
//		api.WithLogger(logger))
package murray

import (
	"github.com/murray-rothbot/murray-go/api"
	"github.com/murray-rothbot/murray-go/blockchain"
	"github.com/murray-rothbot/murray-go/lightning"
	"github.com/murray-rothbot/murray-go/prices"
)

// BaseEndpoints overrides the service URLs. Empty fields keep the defaults.
type BaseEndpoints struct {
	Blockchain string `yaml:"blockchain"`
	Prices     string `yaml:"prices"`
	Lightning  string `yaml:"lightning"`
}

// Murray holds one client per service. They share a single api.Client.
type Murray struct {
	Blockchain *blockchain.Client
	Prices     *prices.Client
	Lightning  *lightning.Client
}

// New creates the three clients rooted at endpoints.
func New(endpoints BaseEndpoints, opts ...api.Option) *Murray {
	c := api.NewClient(opts...)
	return &Murray{
		Blockchain: blockchain.NewClientWith(endpoints.Blockchain, c),
		Prices:     prices.NewClientWith(endpoints.Prices, c),
		Lightning:  lightning.NewClientWith(endpoints.Lightning, c),
	}
}

// Default creates the three clients against the public endpoints.
func Default() *Murray {
	return New(BaseEndpoints{})
}
