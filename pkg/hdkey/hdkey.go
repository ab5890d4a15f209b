package hdkey

// hdkey.go - BIP-32 (secp256k1) and SLIP-10 (Ed25519) master and child
// key derivation from a 64-byte BIP-39 seed. The curve tag selects the
// HMAC salt, the child-key combination rule, and whether non-hardened
// derivation is allowed at all.

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/grendel/hilbert/pkg/curves"
)

// SeedLen is the BIP-39 seed length the derivation layer accepts
const SeedLen = 64

const keyLen = 32

var (
	ErrInvalidSeed      = errors.New("seed must be 64 bytes")
	ErrDerivationFailed = errors.New("key derivation failed")
	ErrHardenedOnly     = errors.New("ed25519 supports hardened derivation only")
)

// ExtendedKey is one link in the derivation chain: a private key and the
// chain code that keys the next HMAC. Each child consumes its parent;
// call Wipe once a key is no longer needed.
type ExtendedKey struct {
	Key       []byte // 32 bytes
	ChainCode []byte // 32 bytes
	Curve     curves.Curve
}

// Wipe zeroizes the key material in place.
func (k *ExtendedKey) Wipe() {
	for i := range k.Key {
		k.Key[i] = 0
	}
	for i := range k.ChainCode {
		k.ChainCode[i] = 0
	}
}

// NewMaster derives the master extended key from a 64-byte seed using
// the curve-specific HMAC-SHA512 salt.
func NewMaster(seed []byte, curve curves.Curve) (*ExtendedKey, error) {
	if len(seed) != SeedLen {
		return nil, ErrInvalidSeed
	}

	mac := hmac.New(sha512.New, curve.HMACKey())
	mac.Write(seed)
	sum := mac.Sum(nil)

	master := &ExtendedKey{
		Key:       sum[:keyLen],
		ChainCode: sum[keyLen:],
		Curve:     curve,
	}
	if err := master.validate(); err != nil {
		master.Wipe()
		return nil, err
	}
	return master, nil
}

// Child derives the child key at index. The parent remains intact; the
// caller decides when to wipe it.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	var message []byte
	if IsHardened(index) {
		// 0x00 || parent private key || be32(index)
		message = make([]byte, 0, 1+keyLen+4)
		message = append(message, 0x00)
		message = append(message, k.Key...)
	} else {
		if k.Curve == curves.Ed25519 {
			return nil, fmt.Errorf("%w: index %d", ErrHardenedOnly, index)
		}
		// parent compressed public key || be32(index)
		parentPub, err := curves.DerivePublicKey(k.Key, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
		}
		message = parentPub
	}
	message = binary.BigEndian.AppendUint32(message, index)

	mac := hmac.New(sha512.New, k.ChainCode)
	mac.Write(message)
	sum := mac.Sum(nil)
	il, ir := sum[:keyLen], sum[keyLen:]

	child := &ExtendedKey{ChainCode: ir, Curve: k.Curve}
	switch k.Curve {
	case curves.Ed25519:
		// SLIP-10: IL is the child key directly, no addition
		child.Key = il
	default:
		// BIP-32: child = (IL + parent) mod n. The optional
		// skip-to-next-index behavior is deliberately not
		// implemented; an out-of-range IL is a hard error.
		if !curves.IsValidPrivateKey(il) {
			return nil, fmt.Errorf("%w: intermediate key out of range at index %d", ErrDerivationFailed, index)
		}
		childKey, err := curves.AddModN(il, k.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, err)
		}
		child.Key = childKey
	}

	if err := child.validate(); err != nil {
		child.Wipe()
		return nil, err
	}
	return child, nil
}

// Derive walks the whole path from a seed, wiping every intermediate
// key. The caller owns (and should eventually wipe) the result.
func Derive(seed []byte, path []uint32, curve curves.Curve) (*ExtendedKey, error) {
	key, err := NewMaster(seed, curve)
	if err != nil {
		return nil, err
	}

	for _, index := range path {
		child, err := key.Child(index)
		key.Wipe()
		if err != nil {
			return nil, err
		}
		key = child
	}
	return key, nil
}

func (k *ExtendedKey) validate() error {
	switch k.Curve {
	case curves.Ed25519:
		if !curves.IsValidEd25519Seed(k.Key) {
			return fmt.Errorf("%w: invalid ed25519 key", ErrDerivationFailed)
		}
	default:
		if !curves.IsValidPrivateKey(k.Key) {
			return fmt.Errorf("%w: invalid secp256k1 key", ErrDerivationFailed)
		}
	}
	return nil
}
