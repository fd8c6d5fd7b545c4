package lightning

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murray-rothbot/murray-go/api"
	"github.com/murray-rothbot/murray-go/internal/apitest"
)

const somePublicKey = "some-public-key"

func newSut(t *testing.T, path string, status int, resBody string) (*Client, *apitest.Mock) {
	t.Helper()
	m := apitest.NewMock(t, apitest.Route{Method: http.MethodGet, Path: path, Status: status, ResBody: resBody})
	c := NewClient("")
	c.SetBaseURL(m.URL)
	return c, m
}

func TestGetNodeDetails(t *testing.T) {
	body := apitest.Fixture(t, "node.json")
	c, m := newSut(t, "/node/some-public-key", http.StatusOK, apitest.Envelope(body))

	node, err := c.GetNodeDetails(context.Background(), GetNodeDetailsParams{PublicKey: somePublicKey})
	require.NoError(t, err)
	m.AssertHit(t)

	assert.Equal(t, "03864ef025fde8fb587d989186ce6a4a186895ee44a926bfc370e2c366597a3f8f", node.PublicKey)
	assert.Equal(t, "EUA", node.Country.PTBR)
	assert.Equal(t, "美国", node.Country.ZHCN)
	assert.Equal(t, "800000000000000000000000000000000000000088a52a1", node.FeaturesBits)
	assert.Nil(t, node.Subdivision)
	require.NotNil(t, node.City)
	assert.Equal(t, "Atlanta", *node.City)
	assert.Equal(t, "ACINQ", node.CustomRecords["alias"])

	require.Len(t, node.Channels, 2)
	assert.Equal(t, ChannelID("892808209417142272"), node.Channels[0].ID)
	assert.Nil(t, node.Channels[0].ClosingReason)
	require.NotNil(t, node.Channels[1].ClosingDate)

	sats, err := node.CapacitySats()
	require.NoError(t, err)
	assert.EqualValues(t, 48812386286, sats)

	apitest.RequireRoundTrip(t, body, node)
}

func TestGetNodeDetails_EscapesPublicKey(t *testing.T) {
	c, m := newSut(t, "/node/a b", http.StatusOK, apitest.Envelope(apitest.Fixture(t, "node.json")))

	_, err := c.GetNodeDetails(context.Background(), GetNodeDetailsParams{PublicKey: "a b"})
	require.NoError(t, err)
	m.AssertHit(t)
}

func TestChannelID_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ChannelID
	}{
		{"string", `{"id":"892808209417142272"}`, "892808209417142272"},
		{"number", `{"id":892808209417142272}`, "892808209417142272"},
		{"small number", `{"id":42}`, "42"},
		{"null", `{"id":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ch Channel
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ch))
			assert.Equal(t, tt.want, ch.ID)
		})
	}

	var ch Channel
	require.Error(t, json.Unmarshal([]byte(`{"id":true}`), &ch))
}

func TestChannelID_MarshalsAsString(t *testing.T) {
	raw, err := json.Marshal(Channel{ID: "42"})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"42"`)
}

func TestGetStatistics(t *testing.T) {
	body := apitest.Fixture(t, "statistics.json")
	c, m := newSut(t, "/statistics", http.StatusOK, apitest.Envelope(body))

	stats, err := c.GetStatistics(context.Background())
	require.NoError(t, err)
	m.AssertHit(t)

	assert.EqualValues(t, 1456, stats.Latest.ID)
	assert.Equal(t, "2023-10-22T00:00:00Z", stats.Latest.Added)
	added, err := stats.Latest.AddedAt()
	require.NoError(t, err)
	assert.True(t, added.Equal(time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC)))
	assert.EqualValues(t, 525489112340-524001112340, stats.CapacityChange())
	assert.EqualValues(t, -58, stats.NodeCountChange())
	apitest.RequireRoundTrip(t, body, stats)
}

func TestStatisticsData_AddedAt(t *testing.T) {
	want := time.Date(2023, 10, 22, 13, 4, 5, 0, time.UTC)
	tests := []struct {
		added string
		want  time.Time
	}{
		{"2023-10-22T13:04:05Z", want},
		{"2023-10-22T15:04:05+02:00", want},
		{"2023-10-22T13:04:05.000Z", want},
		{"2023-10-22T13:04:05", want},
		{"2023-10-22 13:04:05", want},
		{"2023-10-22", time.Date(2023, 10, 22, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.added, func(t *testing.T) {
			got, err := StatisticsData{Added: tt.added}.AddedAt()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), got)
		})
	}

	_, err := StatisticsData{Added: "last sunday"}.AddedAt()
	require.Error(t, err)
}

func TestGetStatistics_AddedWithoutZone(t *testing.T) {
	body := strings.Replace(apitest.Fixture(t, "statistics.json"), "2023-10-22T00:00:00Z", "2023-10-22T00:00:00", 1)
	c, _ := newSut(t, "/statistics", http.StatusOK, apitest.Envelope(body))

	stats, err := c.GetStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2023-10-22T00:00:00", stats.Latest.Added)
}

func TestGetStatistics_PreviousMissingField(t *testing.T) {
	body := strings.Replace(apitest.Fixture(t, "statistics.json"), `"node_count": 14950,`, "", 1)
	c, _ := newSut(t, "/statistics", http.StatusOK, apitest.Envelope(body))

	_, err := c.GetStatistics(context.Background())
	require.ErrorIs(t, err, api.ErrJSONParseError)
	require.ErrorContains(t, err, "previous.node_count")
}

func TestGetNodeDetails_ChannelMissingPeer(t *testing.T) {
	body := strings.Replace(apitest.Fixture(t, "node.json"), `"node":`, `"peer":`, 1)
	c, _ := newSut(t, "/node/some-public-key", http.StatusOK, apitest.Envelope(body))

	_, err := c.GetNodeDetails(context.Background(), GetNodeDetailsParams{PublicKey: somePublicKey})
	require.ErrorIs(t, err, api.ErrJSONParseError)
	require.ErrorContains(t, err, "channels[0].node")
}

func TestGetTopNodes(t *testing.T) {
	body := apitest.Fixture(t, "top.json")
	c, m := newSut(t, "/top", http.StatusOK, apitest.Envelope(body))

	top, err := c.GetTopNodes(context.Background())
	require.NoError(t, err)
	m.AssertHit(t)

	require.Len(t, top.TopByCapacity, 2)
	require.Len(t, top.TopByChannels, 1)

	first := top.TopByCapacity[0]
	require.NotNil(t, first.Capacity)
	assert.EqualValues(t, 48812386286, *first.Capacity)
	assert.Nil(t, first.Channels)
	assert.Equal(t, "Atlanta", first.City["en"])
	require.NotNil(t, first.Country)
	assert.Equal(t, "EUA", first.Country.PTBR)

	bare := top.TopByCapacity[1]
	assert.Nil(t, bare.Country)
	assert.Nil(t, bare.ISOCode)
	assert.Nil(t, bare.Subdivision)

	byChannels := top.TopByChannels[0]
	require.NotNil(t, byChannels.Channels)
	assert.EqualValues(t, 3152, *byChannels.Channels)
	assert.Nil(t, byChannels.Capacity)

	apitest.RequireRoundTrip(t, body, top)
}

func TestGetHealth(t *testing.T) {
	c, m := newSut(t, "/health", http.StatusOK, apitest.Envelope(apitest.Fixture(t, "health.json")))

	h, err := c.GetHealth(context.Background())
	require.NoError(t, err)
	m.AssertHit(t)
	assert.Equal(t, "Lightning service is up and running.", h.Message)
}

type operation struct {
	name string
	path string
	call func(context.Context, *Client) error
}

func operations() []operation {
	return []operation{
		{"GetNodeDetails", "/node/some-public-key", func(ctx context.Context, c *Client) error {
			_, err := c.GetNodeDetails(ctx, GetNodeDetailsParams{PublicKey: somePublicKey})
			return err
		}},
		{"GetStatistics", "/statistics", func(ctx context.Context, c *Client) error {
			_, err := c.GetStatistics(ctx)
			return err
		}},
		{"GetTopNodes", "/top", func(ctx context.Context, c *Client) error {
			_, err := c.GetTopNodes(ctx)
			return err
		}},
		{"GetHealth", "/health", func(ctx context.Context, c *Client) error {
			_, err := c.GetHealth(ctx)
			return err
		}},
	}
}

func TestOperations_Errors(t *testing.T) {
	for _, op := range operations() {
		t.Run(op.name+"/problem with server", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusBadRequest, "")
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrAPIError)
			m.AssertHit(t)
		})

		t.Run(op.name+"/wrong json", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, "wrong-return")
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrJSONParseError)
			m.AssertHit(t)
		})

		t.Run(op.name+"/null data", func(t *testing.T) {
			c, _ := newSut(t, op.path, http.StatusOK, `{"data":null}`)
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrJSONParseError)
		})

		t.Run(op.name+"/missing required fields", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, apitest.Envelope(`{"unexpected": 1}`))
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrJSONParseError)
			m.AssertHit(t)
		})

		t.Run(op.name+"/unreachable", func(t *testing.T) {
			c, m := newSut(t, op.path, http.StatusOK, "")
			m.Close()
			err := op.call(context.Background(), c)
			require.ErrorIs(t, err, api.ErrBadRequest)
		})
	}
}

func TestNewClient_DefaultURL(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, api.DefaultLightningURL, c.BaseURL())
	c.SetBaseURL("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", c.BaseURL())
}
