package address

// tron.go - Tron addresses reuse the Ethereum account derivation (Keccak
// tail of the public key point) but wrap it in Base58Check behind the
// 0x41 version byte, which is why they all start with 'T'.

import (
	"github.com/grendel/hilbert/pkg/base58"
	"github.com/grendel/hilbert/pkg/keccak"
)

// tronVersion is the mainnet address prefix byte
const tronVersion = 0x41

// EncodeTron encodes an uncompressed secp256k1 public key (65 bytes) as
// a Base58Check Tron address.
func EncodeTron(uncompressedPub []byte) (string, error) {
	if len(uncompressedPub) != 65 || uncompressedPub[0] != 0x04 {
		return "", ErrInvalidPublicKey
	}

	digest := keccak.Sum256(uncompressedPub[1:])
	payload := append([]byte{tronVersion}, digest[12:]...)
	return base58.CheckEncode(payload), nil
}
