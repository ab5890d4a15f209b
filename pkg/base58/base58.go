package base58

// base58.go - Base58 and Base58Check over the Bitcoin alphabet. Used for
// Solana addresses (raw) and Tron addresses (checked).

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"math/big"
	"strings"
)

// Alphabet is the Bitcoin Base58 alphabet: no 0, O, I, or l
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const checksumLen = 4

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrInvalidChecksum  = errors.New("invalid base58check checksum")
	ErrTooShort         = errors.New("base58check payload too short")
)

var radix = big.NewInt(58)

// Encode returns the Base58 representation of input. Each leading zero
// byte maps to one leading '1'.
func Encode(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(input)
	mod := new(big.Int)

	var sb strings.Builder
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		sb.WriteByte(Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		sb.WriteByte('1')
	}

	// digits were emitted least-significant first
	encoded := []byte(sb.String())
	for i, j := 0, len(encoded)-1; i < j; i, j = i+1, j-1 {
		encoded[i], encoded[j] = encoded[j], encoded[i]
	}
	return string(encoded)
}

// Decode inverts Encode.
func Decode(input string) ([]byte, error) {
	num := big.NewInt(0)
	for _, c := range input {
		idx := strings.IndexRune(Alphabet, c)
		if idx < 0 {
			return nil, ErrInvalidCharacter
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(idx)))
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == '1' {
		zeros++
	}

	return append(make([]byte, zeros), num.Bytes()...), nil
}

// checksum is the first four bytes of double SHA-256
func checksum(payload []byte) [checksumLen]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])

	var sum [checksumLen]byte
	copy(sum[:], second[:checksumLen])
	return sum
}

// CheckEncode appends a 4-byte double-SHA-256 checksum to payload and
// Base58-encodes the result.
func CheckEncode(payload []byte) string {
	sum := checksum(payload)
	return Encode(append(append([]byte{}, payload...), sum[:]...))
}

// CheckDecode decodes a Base58Check string and verifies its checksum,
// returning the payload without the checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLen {
		return nil, ErrTooShort
	}

	payload := decoded[:len(decoded)-checksumLen]
	sum := checksum(payload)
	if !bytes.Equal(sum[:], decoded[len(decoded)-checksumLen:]) {
		return nil, ErrInvalidChecksum
	}
	return payload, nil
}
