package api

import (
	"context"
	"sync"
)

// Endpoint is a service base URL that can be swapped at runtime.
// Reads and writes are guarded, so calls in flight keep the URL they started with.
type Endpoint struct {
	mu  sync.RWMutex
	url string
}

// NewEndpoint returns an Endpoint rooted at baseURL.
func NewEndpoint(baseURL string) *Endpoint {
	return &Endpoint{url: baseURL}
}

// Get returns the current base URL.
func (e *Endpoint) Get() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.url
}

// Set replaces the base URL for subsequent calls.
func (e *Endpoint) Set(baseURL string) {
	e.mu.Lock()
	e.url = baseURL
	e.mu.Unlock()
}

// URL builds a request URL against the current base URL.
func (e *Endpoint) URL(segments []string, params Params) (string, error) {
	return BuildURL(e.Get(), segments, params)
}

// Fetch GETs segments under e and decodes the enveloped object.
func Fetch[T any](ctx context.Context, c *Client, e *Endpoint, segments []string, params Params) (*T, error) {
	u, err := e.URL(segments, params)
	if err != nil {
		return nil, err
	}
	body, err := c.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	out, err := Decode[T](body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchList GETs segments under e and decodes the enveloped array.
func FetchList[T any](ctx context.Context, c *Client, e *Endpoint, segments []string, params Params) ([]T, error) {
	u, err := e.URL(segments, params)
	if err != nil {
		return nil, err
	}
	body, err := c.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](body)
}

// Send POSTs payload to segments under e and decodes the enveloped object.
func Send[T any](ctx context.Context, c *Client, e *Endpoint, segments []string, payload any) (*T, error) {
	u, err := e.URL(segments, nil)
	if err != nil {
		return nil, err
	}
	body, err := c.Post(ctx, u, payload)
	if err != nil {
		return nil, err
	}
	out, err := Decode[T](body)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHealth GETs /health under e.
func GetHealth(ctx context.Context, c *Client, e *Endpoint) (*Health, error) {
	return Fetch[Health](ctx, c, e, []string{"health"}, nil)
}
