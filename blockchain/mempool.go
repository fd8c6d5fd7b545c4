package blockchain

// FeeHistogramBucket is a [fee rate, vsize] pair.
type FeeHistogramBucket [2]float64

// FeeRate returns the bucket's fee rate in sat/vB.
func (b FeeHistogramBucket) FeeRate() float64 { return b[0] }

// VSize returns the total vsize of the bucket.
func (b FeeHistogramBucket) VSize() float64 { return b[1] }

// Mempool summarizes the current mempool backlog.
type Mempool struct {
	Count        uint64               `json:"count"`
	VSize        uint64               `json:"vsize"`
	TotalFee     uint64               `json:"total_fee"`
	FeeHistogram []FeeHistogramBucket `json:"fee_histogram"`
}
