package networks

// networks.go - static registry of supported chains. Profiles are
// process-wide constants; nothing here mutates after init.

import (
	"errors"
	"sort"

	"github.com/grendel/hilbert/pkg/curves"
)

// Network identifies a supported chain
type Network string

// Supported networks
const (
	Ethereum    Network = "ethereum"
	BSC         Network = "bsc"
	OriginTrail Network = "origintrail"
	WorldChain  Network = "worldchain"
	Bitcoin     Network = "bitcoin"
	Cosmos      Network = "cosmos"
	Solana      Network = "solana"
	Tron        Network = "tron"
)

// AddressScheme selects the encoder applied to a derived key
type AddressScheme string

const (
	SchemeEIP55        AddressScheme = "eip55"
	SchemeBech32SegWit AddressScheme = "bech32-segwit"
	SchemeBech32       AddressScheme = "bech32"
	SchemeBase58       AddressScheme = "base58"
	SchemeBase58Check  AddressScheme = "base58check"
)

var ErrUnsupportedNetwork = errors.New("unsupported network")

// Profile holds the fixed derivation parameters for one network
type Profile struct {
	ID          Network
	DisplayName string
	Symbol      string
	CoinType    uint32
	Path        string
	Curve       curves.Curve
	Scheme      AddressScheme

	// Bech32HRP is set only for bech32-family schemes
	Bech32HRP string
}

// The EVM family shares the MetaMask path and the EIP-55 encoder; only
// display metadata differs.
var registry = map[Network]Profile{
	Ethereum: {
		ID: Ethereum, DisplayName: "Ethereum", Symbol: "ETH",
		CoinType: 60, Path: "m/44'/60'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeEIP55,
	},
	BSC: {
		ID: BSC, DisplayName: "BNB Smart Chain", Symbol: "BNB",
		CoinType: 60, Path: "m/44'/60'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeEIP55,
	},
	OriginTrail: {
		ID: OriginTrail, DisplayName: "OriginTrail", Symbol: "TRAC",
		CoinType: 60, Path: "m/44'/60'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeEIP55,
	},
	WorldChain: {
		ID: WorldChain, DisplayName: "World Chain", Symbol: "WLD",
		CoinType: 60, Path: "m/44'/60'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeEIP55,
	},
	Bitcoin: {
		ID: Bitcoin, DisplayName: "Bitcoin", Symbol: "BTC",
		CoinType: 0, Path: "m/84'/0'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeBech32SegWit,
		Bech32HRP: "bc",
	},
	Cosmos: {
		ID: Cosmos, DisplayName: "Cosmos Hub", Symbol: "ATOM",
		CoinType: 118, Path: "m/44'/118'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeBech32,
		Bech32HRP: "cosmos",
	},
	Solana: {
		ID: Solana, DisplayName: "Solana", Symbol: "SOL",
		CoinType: 501, Path: "m/44'/501'/0'/0'",
		Curve: curves.Ed25519, Scheme: SchemeBase58,
	},
	Tron: {
		ID: Tron, DisplayName: "Tron", Symbol: "TRX",
		CoinType: 195, Path: "m/44'/195'/0'/0/0",
		Curve: curves.Secp256k1, Scheme: SchemeBase58Check,
	},
}

// ProfileFor looks up the profile for a network.
func ProfileFor(network Network) (Profile, error) {
	profile, ok := registry[network]
	if !ok {
		return Profile{}, ErrUnsupportedNetwork
	}
	return profile, nil
}

// All returns every profile in stable id order.
func All() []Profile {
	profiles := make([]Profile, 0, len(registry))
	for _, profile := range registry {
		profiles = append(profiles, profile)
	}
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].ID < profiles[j].ID
	})
	return profiles
}
