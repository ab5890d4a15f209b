package address

// bitcoin.go - native SegWit (P2WPKH) addresses per BIP-84: the witness
// program is hash160 of the compressed public key, encoded as witness
// version 0 under the network HRP.

import (
	"crypto/sha256"

	"github.com/grendel/hilbert/pkg/bech32"
	"github.com/grendel/hilbert/pkg/ripemd160"
)

// hash160 is SHA-256 followed by RIPEMD-160
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	digest := ripemd160.Sum(sha[:])
	return digest[:]
}

// EncodeP2WPKH encodes a compressed secp256k1 public key (33 bytes) as a
// version-0 SegWit address.
func EncodeP2WPKH(compressedPub []byte, hrp string) (string, error) {
	if len(compressedPub) != 33 || (compressedPub[0] != 0x02 && compressedPub[0] != 0x03) {
		return "", ErrInvalidPublicKey
	}
	return bech32.EncodeSegWit(hrp, 0, hash160(compressedPub))
}
