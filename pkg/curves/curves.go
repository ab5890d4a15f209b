package curves

// Curve tags the two signature schemes the derivation layer understands.
// secp256k1 keys follow BIP-32 additive derivation; Ed25519 keys follow
// SLIP-10 hardened-only derivation.
type Curve string

const (
	Secp256k1 Curve = "secp256k1"
	Ed25519   Curve = "ed25519"
)

// HMACKey returns the curve-specific HMAC-SHA512 salt used to derive the
// master key from a BIP-39 seed.
func (c Curve) HMACKey() []byte {
	if c == Ed25519 {
		return []byte("ed25519 seed")
	}
	return []byte("Bitcoin seed")
}
