package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var validate = validator.New()

// Client issues requests against a murray service and unwraps the response envelope.
// It is safe for concurrent use.
type Client struct {
	resty     *resty.Client
	logger    *zap.Logger
	userAgent string
}

// NewClient creates a new API client
func NewClient(opts ...Option) *Client {
	c := &Client{
		logger:    zap.NewNop(),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resty == nil {
		c.resty = resty.New()
	}

	c.resty.
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetLogger(c.logger.Sugar()).
		SetRetryCount(0)

	return c
}

// Logger returns the logger the client traces requests with.
func (c *Client) Logger() *zap.Logger {
	return c.logger
}

// Get sends a GET request to url and returns the raw response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil)
}

// Post sends payload as a JSON body to url and returns the raw response body.
func (c *Client) Post(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{Kind: BadRequest, Message: fmt.Sprintf("failed to marshal payload: %v", err), Err: err}
	}
	return c.do(ctx, http.MethodPost, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	req := c.resty.R().
		SetContext(ctx).
		SetHeader("Accept", mimeJSON).
		SetHeader("User-Agent", c.userAgent)
	if body != nil {
		req.SetHeader("Content-Type", mimeJSON).SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	if err != nil {
		c.logger.Debug("HTTP request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, newError(BadRequest, err)
	}

	c.logger.Debug("HTTP request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if !resp.IsSuccess() {
		return nil, &Error{
			Kind:       APIError,
			Message:    fmt.Sprintf("HTTP %d from %s: %s", resp.StatusCode(), url, string(resp.Body())),
			StatusCode: resp.StatusCode(),
		}
	}
	return resp.Body(), nil
}

// Decode unwraps a {"data": T} body into T.
// Every non-pointer field without omitempty must be present in the payload.
func Decode[T any](body []byte) (T, error) {
	var out T
	raw, err := unwrap(body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, newError(JSONParseError, err)
	}
	if err := requireFields(raw, reflect.TypeOf((*T)(nil)).Elem(), ""); err != nil {
		return out, newError(JSONParseError, err)
	}
	if err := check(&out); err != nil {
		return out, err
	}
	return out, nil
}

// DecodeList unwraps a {"data": [T, ...]} body into a slice of T.
func DecodeList[T any](body []byte) ([]T, error) {
	raw, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, newError(JSONParseError, err)
	}
	if err := requireFields(raw, reflect.TypeOf(out), ""); err != nil {
		return nil, newError(JSONParseError, err)
	}
	for i := range out {
		if err := check(&out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func unwrap(body []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, newError(JSONParseError, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &Error{Kind: JSONParseError, Message: `missing "data" field in response`}
	}
	return env.Data, nil
}

func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// not a struct, nothing to check
		return nil
	}
	return newError(JSONParseError, err)
}
