package blockchain

// GetAddressParams names the address to look up.
type GetAddressParams struct {
	Address string
}

// Stats aggregates the funding and spending activity of an address.
type Stats struct {
	FundedTxoCount uint64 `json:"funded_txo_count"`
	FundedTxoSum   uint64 `json:"funded_txo_sum"`
	SpentTxoCount  uint64 `json:"spent_txo_count"`
	SpentTxoSum    uint64 `json:"spent_txo_sum"`
	TxCount        uint32 `json:"tx_count"`
}

// Balance returns funded minus spent, in satoshis.
func (s Stats) Balance() int64 {
	return int64(s.FundedTxoSum) - int64(s.SpentTxoSum)
}

// AddressDetails holds confirmed and mempool stats of an address.
type AddressDetails struct {
	Address      string `json:"address" validate:"required"`
	ChainStats   Stats  `json:"chain_stats"`
	MempoolStats Stats  `json:"mempool_stats"`
}

// Balance returns the confirmed plus unconfirmed balance in satoshis.
func (a AddressDetails) Balance() int64 {
	return a.ChainStats.Balance() + a.MempoolStats.Balance()
}

// UTXO is an unspent output of an address. Mempool entries carry an unconfirmed status.
type UTXO struct {
	TxID   string            `json:"txid" validate:"required"`
	Vout   uint32            `json:"vout"`
	Status TransactionStatus `json:"status"`
	Value  uint64            `json:"value"`
}
