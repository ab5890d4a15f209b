package address

// solana.go - Solana addresses are simply the Base58 of the Ed25519
// public key, as displayed by Phantom.

import "github.com/grendel/hilbert/pkg/base58"

// EncodeSolana encodes a 32-byte Ed25519 public key as a Base58 address.
func EncodeSolana(pub []byte) (string, error) {
	if len(pub) != 32 {
		return "", ErrInvalidPublicKey
	}
	return base58.Encode(pub), nil
}
