package api

import (
	"github.com/goccy/go-json"
)

// Envelope is the {"data": ...} wrapper common to every service response.
type Envelope struct {
	Data json.RawMessage `json:"data"`
}

// Health is the short status message returned by every /health endpoint.
type Health struct {
	Message string `json:"message" validate:"required"`
}
