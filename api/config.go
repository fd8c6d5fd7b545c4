package api

// Default public endpoints
const (
	DefaultBlockchainURL = "http://blockchain.murrayrothbot.com"
	DefaultPricesURL     = "http://prices.murrayrothbot.com"
	DefaultLightningURL  = "http://lightning.murrayrothbot.com"
)

// Request header values
const (
	mimeJSON         = "application/json"
	defaultUserAgent = "murray-go"
)
