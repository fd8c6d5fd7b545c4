package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// GetTransactionParams names the transaction to look up.
type GetTransactionParams struct {
	TxID string
}

// PostTransactionParams carries a signed raw transaction to broadcast.
type PostTransactionParams struct {
	TxHex string
}

// postTransactionBody is the wire body of POST /tx.
type postTransactionBody struct {
	TxHex string `json:"txHex"`
}

// PostTransaction is the result of a broadcast.
type PostTransaction struct {
	TxID string `json:"txid" validate:"required"`
}

// PreviousOutput is the output an input spends.
type PreviousOutput struct {
	ScriptPubKey        string `json:"scriptpubkey"`
	ScriptPubKeyASM     string `json:"scriptpubkey_asm"`
	ScriptPubKeyType    string `json:"scriptpubkey_type"`
	ScriptPubKeyAddress string `json:"scriptpubkey_address,omitempty"`
	Value               uint64 `json:"value"`
}

// TransactionInput is a single vin entry. Coinbase inputs have no prevout.
type TransactionInput struct {
	TxID         string          `json:"txid"`
	Vout         uint32          `json:"vout"`
	PrevOut      *PreviousOutput `json:"prevout"`
	ScriptSig    string          `json:"scriptsig"`
	ScriptSigASM string          `json:"scriptsig_asm"`
	Witness      []string        `json:"witness,omitempty"`
	IsCoinbase   bool            `json:"is_coinbase"`
	Sequence     uint32          `json:"sequence"`
}

// TransactionOutput is a single vout entry. OP_RETURN outputs have no address.
type TransactionOutput struct {
	ScriptPubKey        string `json:"scriptpubkey"`
	ScriptPubKeyASM     string `json:"scriptpubkey_asm"`
	ScriptPubKeyType    string `json:"scriptpubkey_type"`
	ScriptPubKeyAddress string `json:"scriptpubkey_address,omitempty"`
	Value               uint64 `json:"value"`
}

// TransactionStatus reports confirmation. Block fields are set only when Confirmed.
type TransactionStatus struct {
	Confirmed   bool    `json:"confirmed"`
	BlockHeight *uint32 `json:"block_height,omitempty"`
	BlockHash   *string `json:"block_hash,omitempty"`
	BlockTime   *uint64 `json:"block_time,omitempty"`
}

// Transaction is a full transaction with its inputs, outputs and status.
type Transaction struct {
	TxID     string              `json:"txid" validate:"required"`
	Version  uint32              `json:"version"`
	Locktime uint32              `json:"locktime"`
	Vin      []TransactionInput  `json:"vin"`
	Vout     []TransactionOutput `json:"vout"`
	Size     uint32              `json:"size"`
	Weight   uint32              `json:"weight"`
	SigOps   *uint32             `json:"sigops,omitempty"`
	Fee      uint64              `json:"fee"`
	Status   TransactionStatus   `json:"status"`
}

// Hash parses the txid.
func (t Transaction) Hash() (*chainhash.Hash, error) {
	return chainhash.NewHashFromStr(t.TxID)
}

// VSize returns the virtual size in vbytes.
func (t Transaction) VSize() uint32 {
	return (t.Weight + 3) / 4
}

// FeeRate returns the fee rate in sat/vB, or 0 when the weight is unknown.
func (t Transaction) FeeRate() float64 {
	vsize := t.VSize()
	if vsize == 0 {
		return 0
	}
	return float64(t.Fee) / float64(vsize)
}

// IsCoinbase reports whether the transaction mints new coins.
func (t Transaction) IsCoinbase() bool {
	return len(t.Vin) == 1 && t.Vin[0].IsCoinbase
}
