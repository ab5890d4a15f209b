package curves

// secp256k1.go - thin facade over btcec. Point and field arithmetic stay
// in the vetted library; this layer pins down key validation, serialized
// forms, scalar addition for BIP-32, and the compact signature format.

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

const (
	// PrivateKeyLen is the raw secp256k1 private key length
	PrivateKeyLen = 32

	// CompressedPubKeyLen is the 0x02/0x03-prefixed form
	CompressedPubKeyLen = 33

	// UncompressedPubKeyLen is the 0x04-prefixed form
	UncompressedPubKeyLen = 65

	// SignatureLen is the compact R||S form
	SignatureLen = 64

	// DigestLen is the length sign/verify expect for hashes
	DigestLen = 32
)

var (
	ErrInvalidPrivateKey = errors.New("invalid secp256k1 private key")
	ErrInvalidPublicKey  = errors.New("invalid secp256k1 public key")
	ErrInvalidDigest     = errors.New("digest must be 32 bytes")
	ErrInvalidSignature  = errors.New("invalid compact signature")
)

// IsValidPrivateKey reports whether k is exactly 32 bytes, non-zero, and
// strictly below the curve order n.
func IsValidPrivateKey(k []byte) bool {
	if len(k) != PrivateKeyLen {
		return false
	}
	var scalar btcec.ModNScalar
	overflow := scalar.SetByteSlice(k)
	return !overflow && !scalar.IsZero()
}

// DerivePublicKey returns the public key for priv, compressed (33 bytes)
// or uncompressed (65 bytes).
func DerivePublicKey(priv []byte, compressed bool) ([]byte, error) {
	if !IsValidPrivateKey(priv) {
		return nil, ErrInvalidPrivateKey
	}
	privKey, _ := btcec.PrivKeyFromBytes(priv)
	defer privKey.Zero()

	if compressed {
		return privKey.PubKey().SerializeCompressed(), nil
	}
	return privKey.PubKey().SerializeUncompressed(), nil
}

// AddModN returns (a + b) mod n as 32 bytes. Both inputs must already be
// below n, so at most one reduction occurs inside the scalar type.
//
// A zero sum is mapped to 1. This is a compatibility rule carried over
// from previously deployed derivations, not a cryptographic requirement:
// callers depend on the output never being the all-zero key.
func AddModN(a, b []byte) ([]byte, error) {
	if len(a) != PrivateKeyLen || len(b) != PrivateKeyLen {
		return nil, ErrInvalidPrivateKey
	}

	var sa, sb btcec.ModNScalar
	sa.SetByteSlice(a)
	sb.SetByteSlice(b)
	sa.Add(&sb)

	if sa.IsZero() {
		sa.SetInt(1)
	}

	sum := make([]byte, PrivateKeyLen)
	sa.PutBytesUnchecked(sum)
	sa.Zero()
	sb.Zero()
	return sum, nil
}

// Sign produces a 64-byte compact R||S ECDSA signature over a 32-byte
// digest. S is always in the lower half of the curve order.
func Sign(digest, priv []byte) ([]byte, error) {
	if len(digest) != DigestLen {
		return nil, ErrInvalidDigest
	}
	if !IsValidPrivateKey(priv) {
		return nil, ErrInvalidPrivateKey
	}

	privKey, _ := btcec.PrivKeyFromBytes(priv)
	defer privKey.Zero()

	// SignCompact prepends a recovery byte; the engine's contract is
	// plain R||S
	withRecovery := ecdsa.SignCompact(privKey, digest, true)
	return withRecovery[1:], nil
}

// Verify checks a compact R||S signature against a 32-byte digest and a
// serialized (compressed or uncompressed) public key.
func Verify(sig, digest, pub []byte) bool {
	if len(sig) != SignatureLen || len(digest) != DigestLen {
		return false
	}
	pubKey, err := btcec.ParsePubKey(pub)
	if err != nil {
		return false
	}

	var r, s btcec.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(digest, pubKey)
}
