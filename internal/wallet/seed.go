package wallet

// seed.go - BIP-39 mnemonic to 64-byte seed. Phrase validation comes
// from the bip39 wordlist; the PBKDF2 stretch is spelled out here so the
// parameters stay visible.

import (
	"crypto/sha512"
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

// SeedLen is the BIP-39 seed length in bytes
const SeedLen = 64

const (
	pbkdf2Iterations = 2048
	saltPrefix       = "mnemonic"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

// MnemonicToSeed validates mnemonic against the BIP-39 wordlist and
// stretches it into the canonical 64-byte seed. The passphrase extends
// the PBKDF2 salt and is usually empty.
func MnemonicToSeed(mnemonic, passphrase string) ([]byte, error) {
	phrase := normalizeMnemonic(mnemonic)
	if !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}

	seed := pbkdf2.Key(
		[]byte(phrase),
		[]byte(saltPrefix+passphrase),
		pbkdf2Iterations,
		SeedLen,
		sha512.New,
	)
	return seed, nil
}

// normalizeMnemonic collapses whitespace and case so that user-pasted
// phrases compare equal to the wordlist
func normalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(strings.ToLower(mnemonic)), " ")
}

// Zero wipes a byte slice in place. Seeds and private keys pass through
// this layer on the way to platform storage; nothing here retains them.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
