package blockchain

// GetBlockParams selects a block by hash, height, both or neither.
// With neither set the service returns the chain tip.
type GetBlockParams struct {
	Hash   *string
	Height *uint32
}

// Block is a block header plus optional mining statistics.
type Block struct {
	ID                string  `json:"id" validate:"required"`
	Height            uint32  `json:"height"`
	Version           uint32  `json:"version"`
	Timestamp         uint32  `json:"timestamp"`
	Bits              uint32  `json:"bits"`
	Nonce             uint32  `json:"nonce"`
	Difficulty        float64 `json:"difficulty"`
	MerkleRoot        string  `json:"merkle_root"`
	TxCount           uint32  `json:"tx_count"`
	Size              uint32  `json:"size"`
	Weight            uint32  `json:"weight"`
	PreviousBlockHash string  `json:"previousblockhash"`
	MedianTime        *uint32 `json:"mediantime,omitempty"`
	Extras            *Extras `json:"extras,omitempty"`
}

// Pool identifies the mining pool that found a block.
type Pool struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Extras holds the indexer-computed statistics of a block. Every field is optional.
type Extras struct {
	AvgFee                 *float64  `json:"avgFee,omitempty"`
	AvgFeeRate             *float64  `json:"avgFeeRate,omitempty"`
	AvgTxSize              *float64  `json:"avgTxSize,omitempty"`
	CoinbaseAddress        *string   `json:"coinbaseAddress,omitempty"`
	CoinbaseRaw            *string   `json:"coinbaseRaw,omitempty"`
	CoinbaseSignature      *string   `json:"coinbaseSignature,omitempty"`
	CoinbaseSignatureASCII *string   `json:"coinbaseSignatureAscii,omitempty"`
	ExpectedFees           *uint64   `json:"expectedFees,omitempty"`
	ExpectedWeight         *uint64   `json:"expectedWeight,omitempty"`
	FeePercentiles         []float64 `json:"feePercentiles,omitempty"`
	FeeRange               []float64 `json:"feeRange,omitempty"`
	Header                 *string   `json:"header,omitempty"`
	MatchRate              *float64  `json:"matchRate,omitempty"`
	MedianFee              *float64  `json:"medianFee,omitempty"`
	MedianFeeAmt           *float64  `json:"medianFeeAmt,omitempty"`
	Orphans                []Block   `json:"orphans,omitempty"`
	Pool                   *Pool     `json:"pool,omitempty"`
	Reward                 *uint64   `json:"reward,omitempty"`
	SegwitTotalSize        *uint64   `json:"segwitTotalSize,omitempty"`
	SegwitTotalTxs         *uint64   `json:"segwitTotalTxs,omitempty"`
	SegwitTotalWeight      *uint64   `json:"segwitTotalWeight,omitempty"`
	Similarity             *float64  `json:"similarity,omitempty"`
	TotalFees              *uint64   `json:"totalFees,omitempty"`
	TotalInputAmt          *float64  `json:"totalInputAmt,omitempty"`
	TotalInputs            *uint64   `json:"totalInputs,omitempty"`
	TotalOutputAmt         *uint64   `json:"totalOutputAmt,omitempty"`
	TotalOutputs           *uint64   `json:"totalOutputs,omitempty"`
	UTXOSetChange          *float64  `json:"utxoSetChange,omitempty"`
	UTXOSetSize            *float64  `json:"utxoSetSize,omitempty"`
	VirtualSize            *float64  `json:"virtualSize,omitempty"`
}

// Block2Time maps a block to its timestamp.
type Block2Time struct {
	Height    uint32 `json:"height"`
	Timestamp uint64 `json:"timestamp"`
	InFuture  bool   `json:"in_future"`
}
