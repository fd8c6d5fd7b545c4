package api

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient makes the Client send requests through hc.
// Timeouts and transports configured on hc apply to every call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.resty = resty.NewWithClient(hc)
		}
	}
}

// WithRestyClient sends requests through a clone of rc, so the codec, logger
// and retry settings the Client applies never leak back into rc.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		if rc != nil {
			c.resty = rc.Clone()
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}
