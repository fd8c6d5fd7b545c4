package blockchain

// FeesRecommended holds the recommended fee rates in sat/vB.
type FeesRecommended struct {
	FastestFee  uint64 `json:"fastestFee"`
	HalfHourFee uint64 `json:"halfHourFee"`
	HourFee     uint64 `json:"hourFee"`
	EconomyFee  uint64 `json:"economyFee"`
	MinimumFee  uint64 `json:"minimumFee"`
}

// MempoolBlock is a projected block built from the current mempool.
type MempoolBlock struct {
	BlockSize  uint32    `json:"blockSize"`
	BlockVSize float64   `json:"blockVSize"`
	NTx        uint32    `json:"nTx"`
	TotalFees  uint64    `json:"totalFees"`
	MedianFee  float64   `json:"medianFee"`
	FeeRange   []float64 `json:"feeRange"`
}
