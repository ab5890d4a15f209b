package address

// cosmos.go - Cosmos SDK account addresses: hash160 of the compressed
// public key under plain Bech32 (no witness version), matching Keplr.

import "github.com/grendel/hilbert/pkg/bech32"

// EncodeBech32Account encodes a compressed secp256k1 public key
// (33 bytes) as a Bech32 account address under hrp.
func EncodeBech32Account(compressedPub []byte, hrp string) (string, error) {
	if len(compressedPub) != 33 || (compressedPub[0] != 0x02 && compressedPub[0] != 0x03) {
		return "", ErrInvalidPublicKey
	}

	grouped, err := bech32.ConvertBits(hash160(compressedPub), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(hrp, grouped, bech32.ConstBech32)
}
