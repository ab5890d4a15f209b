package address

// ethereum.go - EIP-55 checksummed hex addresses for the EVM family
// (Ethereum, BSC, OriginTrail, World Chain). The 20-byte account is the
// tail of the Keccak-256 hash of the raw public key point; per-character
// casing comes from a second Keccak-256 over the lowercase hex.

import (
	"encoding/hex"
	"strings"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/grendel/hilbert/pkg/keccak"
)

// EncodeEIP55 encodes an uncompressed secp256k1 public key (0x04-prefixed,
// 65 bytes) as a checksummed 0x address.
func EncodeEIP55(uncompressedPub []byte) (string, error) {
	if len(uncompressedPub) != 65 || uncompressedPub[0] != 0x04 {
		return "", ErrInvalidPublicKey
	}

	// hash the 64-byte point, keep the last 20 bytes
	digest := keccak.Sum256(uncompressedPub[1:])
	account := digest[12:]

	return checksumHex(account), nil
}

// checksumHex applies EIP-55 casing: bit 3 of each nibble of
// Keccak-256(lowercase hex) selects upper case.
func checksumHex(account []byte) string {
	lower := hex.EncodeToString(account)
	caseMask := keccak.Sum256([]byte(lower))

	var sb strings.Builder
	sb.WriteString("0x")
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && caseMask[i/2]>>(4*uint(1-i%2))&0x08 != 0 {
			c -= 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// ValidateEIP55 reports whether s is a well-formed EVM address. An
// all-lower or all-upper address passes on format alone; a mixed-case
// address must carry the exact EIP-55 casing.
func ValidateEIP55(s string) bool {
	// IsHexAddress accepts bare hex; the 0x prefix is mandatory here
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	if !ethcommon.IsHexAddress(s) {
		return false
	}
	bare := strings.TrimPrefix(s, "0x")
	if bare == strings.ToLower(bare) || bare == strings.ToUpper(bare) {
		return true
	}

	account, err := hex.DecodeString(strings.ToLower(bare))
	if err != nil {
		return false
	}
	return checksumHex(account) == "0x"+bare
}
