package lightning

// NodeInfo is an entry of a top-nodes ranking. Capacity is set in the
// by-capacity ranking and Channels in the by-channels one.
type NodeInfo struct {
	PublicKey   string            `json:"publicKey" validate:"required"`
	Alias       string            `json:"alias"`
	Capacity    *int64            `json:"capacity,omitempty"`
	Channels    *int64            `json:"channels,omitempty"`
	City        map[string]string `json:"city,omitempty"`
	Country     *NodeCountry      `json:"country,omitempty"`
	ISOCode     *string           `json:"iso_code,omitempty"`
	Subdivision any               `json:"subdivision,omitempty"`
}

// TopNodes holds the largest nodes ranked by capacity and by channel count.
type TopNodes struct {
	TopByCapacity []NodeInfo `json:"topByCapacity"`
	TopByChannels []NodeInfo `json:"topByChannels"`
}
