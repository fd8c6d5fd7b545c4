package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Networks maps CLI network names to chain parameters
var Networks = map[string]*chaincfg.Params{
	"mainnet": &chaincfg.MainNetParams,
	"testnet": &chaincfg.TestNet3Params,
	"signet":  &chaincfg.SigNetParams,
	"regtest": &chaincfg.RegressionNetParams,
}

// NetworkParams looks up a network by name
func NetworkParams(name string) (*chaincfg.Params, error) {
	params, ok := Networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (use mainnet, testnet, signet or regtest)", name)
	}
	return params, nil
}

// ParseAddress parses a Bitcoin address for the given network
func ParseAddress(address string, params *chaincfg.Params) (btcutil.Address, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, fmt.Errorf("invalid address %q: %w", address, err)
	}
	if !addr.IsForNet(params) {
		return nil, fmt.Errorf("address %q is not valid on %s", address, params.Name)
	}
	return addr, nil
}

// ValidateAddress validates a Bitcoin address
func ValidateAddress(address string, params *chaincfg.Params) error {
	_, err := ParseAddress(address, params)
	return err
}

// SatoshisToBTC converts satoshis to BTC
func SatoshisToBTC(satoshis int64) float64 {
	return btcutil.Amount(satoshis).ToBTC()
}

// FormatSatoshis renders an amount in BTC with eight decimals
func FormatSatoshis(satoshis int64) string {
	return fmt.Sprintf("%.8f BTC", SatoshisToBTC(satoshis))
}
