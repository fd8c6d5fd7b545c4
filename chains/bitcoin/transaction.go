package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// Output is a decoded transaction output
type Output struct {
	Value   btcutil.Amount
	Type    string
	Address string // empty for non-standard and OP_RETURN scripts
}

// Transaction is a locally decoded raw transaction
type Transaction struct {
	TxID     string
	Version  int32
	LockTime uint32
	Size     int
	VSize    int64
	Inputs   []wire.OutPoint
	Outputs  []Output
	msg      *wire.MsgTx
}

// DecodeRawTransaction parses a hex-encoded serialized transaction
func DecodeRawTransaction(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(rawHex))
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hex: %w", err)
	}
	msg := wire.NewMsgTx(wire.TxVersion)
	if err := msg.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to deserialize transaction: %w", err)
	}
	return msg, nil
}

// TxID returns the txid of a hex-encoded transaction
func TxID(rawHex string) (string, error) {
	msg, err := DecodeRawTransaction(rawHex)
	if err != nil {
		return "", err
	}
	return msg.TxHash().String(), nil
}

// Decode parses rawHex and resolves output addresses against params
func Decode(rawHex string, params *chaincfg.Params) (*Transaction, error) {
	msg, err := DecodeRawTransaction(rawHex)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		TxID:     msg.TxHash().String(),
		Version:  msg.Version,
		LockTime: msg.LockTime,
		Size:     msg.SerializeSize(),
		VSize:    VirtualSize(msg),
		msg:      msg,
	}
	for _, in := range msg.TxIn {
		tx.Inputs = append(tx.Inputs, in.PreviousOutPoint)
	}
	for _, out := range msg.TxOut {
		class, addrs, _, err := txscript.ExtractPkScriptAddrs(out.PkScript, params)
		o := Output{Value: btcutil.Amount(out.Value), Type: class.String()}
		if err == nil && len(addrs) == 1 {
			o.Address = addrs[0].EncodeAddress()
		}
		tx.Outputs = append(tx.Outputs, o)
	}
	return tx, nil
}

// TotalOutput sums the output values
func (tx *Transaction) TotalOutput() btcutil.Amount {
	var total btcutil.Amount
	for _, out := range tx.Outputs {
		total += out.Value
	}
	return total
}

// HasWitness reports whether any input carries witness data
func (tx *Transaction) HasWitness() bool {
	return tx.msg != nil && tx.msg.HasWitness()
}

// VirtualSize returns the BIP141 virtual size in vbytes
func VirtualSize(msg *wire.MsgTx) int64 {
	weight := int64(msg.SerializeSizeStripped())*3 + int64(msg.SerializeSize())
	return (weight + 3) / 4
}

// EstimateFee returns the fee paid by vsize vbytes at feeRate sat/vB
func EstimateFee(vsize int64, feeRate float64) btcutil.Amount {
	return btcutil.Amount(float64(vsize) * feeRate)
}
