package lightning

import (
	"fmt"
	"time"
)

// StatisticsData is one snapshot of network-wide Lightning statistics.
type StatisticsData struct {
	ID                uint64 `json:"id"`
	Added             string `json:"added"`
	ChannelCount      uint64 `json:"channel_count"`
	NodeCount         uint64 `json:"node_count"`
	TotalCapacity     uint64 `json:"total_capacity"`
	TorNodes          uint64 `json:"tor_nodes"`
	ClearnetNodes     uint64 `json:"clearnet_nodes"`
	UnannouncedNodes  uint64 `json:"unannounced_nodes"`
	AvgCapacity       uint64 `json:"avg_capacity"`
	AvgFeeRate        uint64 `json:"avg_fee_rate"`
	AvgBaseFeeMtokens uint64 `json:"avg_base_fee_mtokens"`
	MedCapacity       uint64 `json:"med_capacity"`
	MedFeeRate        uint64 `json:"med_fee_rate"`
	MedBaseFeeMtokens uint64 `json:"med_base_fee_mtokens"`
	ClearnetTorNodes  uint64 `json:"clearnet_tor_nodes"`
}

// addedLayouts are tried in order. Timestamps without a zone are UTC.
var addedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// AddedAt parses Added, an ISO 8601 date or timestamp.
func (d StatisticsData) AddedAt() (time.Time, error) {
	for _, layout := range addedLayouts {
		if t, err := time.Parse(layout, d.Added); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized added timestamp %q", d.Added)
}

// Statistics pairs the latest snapshot with the one before it.
type Statistics struct {
	Latest   StatisticsData `json:"latest"`
	Previous StatisticsData `json:"previous"`
}

// CapacityChange returns latest minus previous total capacity, in satoshis.
func (s Statistics) CapacityChange() int64 {
	return int64(s.Latest.TotalCapacity) - int64(s.Previous.TotalCapacity)
}

// NodeCountChange returns latest minus previous node count.
func (s Statistics) NodeCountChange() int64 {
	return int64(s.Latest.NodeCount) - int64(s.Previous.NodeCount)
}
