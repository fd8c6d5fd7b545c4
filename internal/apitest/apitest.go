// Package apitest provides an httptest-backed stand-in for the murray services.
package apitest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// Route is the single request a Mock answers.
type Route struct {
	Method string
	Path   string
	// ReqBody, when set, must match the request body byte for byte.
	ReqBody string
	Status  int
	ResBody string
}

// Mock serves one Route and 404s everything else.
type Mock struct {
	URL    string
	server *httptest.Server
	hits   atomic.Int32
	query  atomic.Value
}

// NewMock starts a server for route. It is closed when the test ends.
func NewMock(t *testing.T, route Route) *Mock {
	t.Helper()
	if route.Status == 0 {
		route.Status = http.StatusOK
	}
	m := &Mock{}
	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != route.Method || r.URL.Path != route.Path {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if route.ReqBody != "" {
			raw, err := io.ReadAll(r.Body)
			if err != nil || string(raw) != route.ReqBody {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		}
		m.query.Store(r.URL.RawQuery)
		m.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.Status)
		_, _ = w.Write([]byte(route.ResBody))
	}))
	m.URL = m.server.URL
	t.Cleanup(m.server.Close)
	return m
}

// AssertHit fails the test unless the route was matched exactly once.
func (m *Mock) AssertHit(t *testing.T) {
	t.Helper()
	require.EqualValues(t, 1, m.hits.Load(), "mock was not matched")
}

// RawQuery returns the query string of the last matched request.
func (m *Mock) RawQuery() string {
	q, _ := m.query.Load().(string)
	return q
}

// Close stops the server early, e.g. to simulate an unreachable host.
func (m *Mock) Close() {
	m.server.Close()
}

// Fixture reads testdata/name.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(raw)
}

// Envelope wraps data the way the services do.
func Envelope(data string) string {
	return fmt.Sprintf(`{"data":  %s}`, data)
}

// RequireRoundTrip marshals got and compares it to the expected JSON document.
func RequireRoundTrip(t *testing.T, expected string, got any) {
	t.Helper()
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	require.JSONEq(t, expected, string(raw))
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }
