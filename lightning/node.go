package lightning

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// GetNodeDetailsParams names the node to look up.
type GetNodeDetailsParams struct {
	PublicKey string
}

// Feature is one advertised feature bit of a node.
type Feature struct {
	Bit        int32  `json:"bit"`
	Name       string `json:"name"`
	IsRequired bool   `json:"is_required"`
	IsKnown    bool   `json:"is_known"`
}

// NodeCountry is a country name in each supported locale.
type NodeCountry struct {
	DE   string `json:"de"`
	EN   string `json:"en"`
	ES   string `json:"es"`
	FR   string `json:"fr"`
	JA   string `json:"ja"`
	PTBR string `json:"pt-BR"`
	RU   string `json:"ru"`
	ZHCN string `json:"zh-CN"`
}

// ChannelNode is the peer on the other side of a channel.
type ChannelNode struct {
	Alias     string `json:"alias"`
	PublicKey string `json:"public_key"`
	Channels  int32  `json:"channels"`
	Capacity  string `json:"capacity"`
}

// ChannelID is a channel identifier. The service sends it either as a
// string or as a bare number; both decode to the same textual form.
type ChannelID string

func (id *ChannelID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ChannelID(s)
		return nil
	}
	if c := data[0]; c != '-' && (c < '0' || c > '9') {
		return fmt.Errorf("channel id: unexpected %s", data)
	}
	*id = ChannelID(data)
	return nil
}

func (id ChannelID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ChannelID) String() string { return string(id) }

// Channel is one channel of a node.
type Channel struct {
	Status        int32       `json:"status"`
	ClosingReason *string     `json:"closing_reason"`
	ClosingDate   *string     `json:"closing_date"`
	Capacity      int64       `json:"capacity"`
	ShortID       string      `json:"short_id"`
	ID            ChannelID   `json:"id"`
	FeeRate       int64       `json:"fee_rate"`
	Node          ChannelNode `json:"node"`
}

// NodeData describes a Lightning node, its location and its channels.
type NodeData struct {
	PublicKey          string         `json:"public_key" validate:"required"`
	FirstSeen          int64          `json:"first_seen"`
	UpdatedAt          int64          `json:"updated_at"`
	Color              string         `json:"color"`
	Sockets            string         `json:"sockets"`
	ASNumber           int64          `json:"as_number"`
	CityID             *int64         `json:"city_id"`
	CountryID          int64          `json:"country_id"`
	SubdivisionID      *int64         `json:"subdivision_id"`
	Longitude          float64        `json:"longitude"`
	Latitude           float64        `json:"latitude"`
	ISOCode            string         `json:"iso_code"`
	ASOrganization     string         `json:"as_organization"`
	City               *string        `json:"city"`
	Country            NodeCountry    `json:"country"`
	Subdivision        *string        `json:"subdivision"`
	Features           []Feature      `json:"features"`
	FeaturesBits       string         `json:"featuresBits"`
	ActiveChannelCount int32          `json:"active_channel_count"`
	Capacity           string         `json:"capacity"`
	OpenedChannelCount int32          `json:"opened_channel_count"`
	ClosedChannelCount int32          `json:"closed_channel_count"`
	CustomRecords      map[string]any `json:"custom_records"`
	Channels           []Channel      `json:"channels"`
}

// CapacitySats parses the node capacity in satoshis.
func (n NodeData) CapacitySats() (int64, error) {
	return strconv.ParseInt(n.Capacity, 10, 64)
}
