package curves

// ed25519.go - Ed25519 seed expansion for SLIP-10 networks (Solana).
// The standard library implementation is the vetted one here; this layer
// only fixes lengths and the 32-byte seed-as-private-key convention.

import (
	"crypto/ed25519"
	"errors"
)

const (
	// Ed25519SeedLen is the raw seed length, also used as the private
	// key form throughout the derivation layer
	Ed25519SeedLen = 32

	// Ed25519PubKeyLen is the public key length
	Ed25519PubKeyLen = 32
)

var ErrInvalidEd25519Seed = errors.New("invalid ed25519 seed")

// IsValidEd25519Seed reports whether seed can construct a keypair. Any
// 32-byte value expands to a valid key; only the length can fail.
func IsValidEd25519Seed(seed []byte) bool {
	return len(seed) == Ed25519SeedLen
}

// DeriveEd25519Keypair expands a 32-byte seed into (private, public).
// The private half returned is the seed itself, matching the SLIP-10
// convention where IL is carried directly as the child key.
func DeriveEd25519Keypair(seed []byte) (priv, pub []byte, err error) {
	if !IsValidEd25519Seed(seed) {
		return nil, nil, ErrInvalidEd25519Seed
	}

	key := ed25519.NewKeyFromSeed(seed)
	pub = make([]byte, Ed25519PubKeyLen)
	copy(pub, key[Ed25519SeedLen:])

	priv = make([]byte, Ed25519SeedLen)
	copy(priv, seed)
	return priv, pub, nil
}
