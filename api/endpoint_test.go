package api

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpoint_SetRedirectsCalls(t *testing.T) {
	var hitsA, hitsB atomic.Int32
	a := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hitsA.Add(1)
		_, _ = w.Write([]byte(`{"data":{"message":"a"}}`))
	})
	b := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		hitsB.Add(1)
		_, _ = w.Write([]byte(`{"data":{"message":"b"}}`))
	})

	c := NewClient()
	e := NewEndpoint(a.URL)

	h, err := GetHealth(context.Background(), c, e)
	require.NoError(t, err)
	require.Equal(t, "a", h.Message)

	e.Set(b.URL)
	require.Equal(t, b.URL, e.Get())

	h, err = GetHealth(context.Background(), c, e)
	require.NoError(t, err)
	require.Equal(t, "b", h.Message)
	require.EqualValues(t, 1, hitsA.Load())
	require.EqualValues(t, 1, hitsB.Load())
}

func TestEndpoint_ConcurrentSet(t *testing.T) {
	e := NewEndpoint("http://a.example")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			e.Set("http://b.example")
		}()
		go func() {
			defer wg.Done()
			_, _ = e.URL([]string{"health"}, nil)
		}()
	}
	wg.Wait()
	require.Equal(t, "http://b.example", e.Get())
}

func TestFetch_ErrorPrecedence(t *testing.T) {
	t.Run("bad base url wins", func(t *testing.T) {
		_, err := Fetch[Health](context.Background(), NewClient(), NewEndpoint("not a url"), []string{"health"}, nil)
		require.ErrorIs(t, err, ErrInvalidURLParams)
	})

	t.Run("status checked before body", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("wrong-return"))
		})
		_, err := Fetch[Health](context.Background(), NewClient(), NewEndpoint(server.URL), []string{"health"}, nil)
		require.ErrorIs(t, err, ErrAPIError)
	})

	t.Run("body decoded last", func(t *testing.T) {
		server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("wrong-return"))
		})
		_, err := Fetch[Health](context.Background(), NewClient(), NewEndpoint(server.URL), []string{"health"}, nil)
		require.ErrorIs(t, err, ErrJSONParseError)
	})
}
