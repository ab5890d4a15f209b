package bech32

// bech32.go - Bech32 (BIP-173) and Bech32m (BIP-350) with the checksum
// constant as an explicit parameter. Cosmos account addresses use plain
// Bech32; Bitcoin SegWit selects the constant by witness version.

import (
	"errors"
	"fmt"
	"strings"
)

// Charset is the Bech32 data alphabet, index = 5-bit value
const Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// Checksum constants per BIP-173 and BIP-350
const (
	ConstBech32  uint32 = 1
	ConstBech32m uint32 = 0x2bc830a3
)

const maxLength = 90

var (
	ErrInvalidLength    = errors.New("invalid bech32 length")
	ErrInvalidCharacter = errors.New("invalid bech32 character")
	ErrInvalidChecksum  = errors.New("invalid bech32 checksum")
	ErrMixedCase        = errors.New("bech32 string uses mixed case")
	ErrNoSeparator      = errors.New("missing bech32 separator")
	ErrInvalidPadding   = errors.New("invalid bech32 data padding")
	ErrInvalidWitness   = errors.New("invalid witness version or program")
)

// generator is the BCH code polynomial, one term per carry bit
var generator = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

// hrpExpand maps the human-readable part into checksum input: character
// high bits, a zero separator, then character low bits
func hrpExpand(hrp string) []byte {
	expanded := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]>>5)
	}
	expanded = append(expanded, 0)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]&31)
	}
	return expanded
}

func createChecksum(hrp string, data []byte, checksumConst uint32) []byte {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ checksumConst

	sum := make([]byte, 6)
	for i := range sum {
		sum[i] = byte(mod >> uint(5*(5-i)) & 31)
	}
	return sum
}

// Encode assembles hrp + '1' + data + checksum. data must already be in
// 5-bit groups (see ConvertBits).
func Encode(hrp string, data []byte, checksumConst uint32) (string, error) {
	if len(hrp) < 1 || len(hrp)+len(data)+7 > maxLength {
		return "", ErrInvalidLength
	}
	for _, v := range data {
		if v > 31 {
			return "", ErrInvalidCharacter
		}
	}

	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, v := range append(data, createChecksum(hrp, data, checksumConst)...) {
		sb.WriteByte(Charset[v])
	}
	return sb.String(), nil
}

// Decode splits and checksum-verifies a Bech32 string, returning the hrp
// and the 5-bit data groups without the checksum.
func Decode(encoded string, checksumConst uint32) (string, []byte, error) {
	if len(encoded) > maxLength {
		return "", nil, ErrInvalidLength
	}
	if strings.ToLower(encoded) != encoded && strings.ToUpper(encoded) != encoded {
		return "", nil, ErrMixedCase
	}
	encoded = strings.ToLower(encoded)

	sep := strings.LastIndexByte(encoded, '1')
	if sep < 0 {
		return "", nil, ErrNoSeparator
	}
	hrp, dataPart := encoded[:sep], encoded[sep+1:]
	if len(hrp) < 1 || len(dataPart) < 6 {
		return "", nil, ErrInvalidLength
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", nil, ErrInvalidCharacter
		}
	}

	data := make([]byte, 0, len(dataPart))
	for i := 0; i < len(dataPart); i++ {
		idx := strings.IndexByte(Charset, dataPart[i])
		if idx < 0 {
			return "", nil, ErrInvalidCharacter
		}
		data = append(data, byte(idx))
	}

	if polymod(append(hrpExpand(hrp), data...)) != checksumConst {
		return "", nil, ErrInvalidChecksum
	}
	return hrp, data[:len(data)-6], nil
}

// ConvertBits regroups data from fromBits-wide to toBits-wide groups.
// With pad set, a trailing partial group is zero-padded; without it, a
// non-zero or over-wide trailing group is an error.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, fmt.Errorf("convertbits: unsupported group widths %d->%d", fromBits, toBits)
	}

	var acc uint32
	var bits uint
	maxVal := uint32(1)<<toBits - 1
	out := make([]byte, 0, (len(data)*int(fromBits)+int(toBits)-1)/int(toBits))

	for _, v := range data {
		if uint32(v)>>fromBits != 0 {
			return nil, fmt.Errorf("convertbits: value %d exceeds %d bits", v, fromBits)
		}
		acc = acc<<fromBits | uint32(v)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxVal))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxVal))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxVal != 0 {
		return nil, ErrInvalidPadding
	}
	return out, nil
}

// EncodeSegWit encodes a witness program as a SegWit address. The
// checksum constant follows the witness version: Bech32 for version 0,
// Bech32m for version 1 and up.
func EncodeSegWit(hrp string, witnessVersion byte, program []byte) (string, error) {
	if witnessVersion > 16 {
		return "", ErrInvalidWitness
	}
	if len(program) < 2 || len(program) > 40 {
		return "", ErrInvalidWitness
	}
	if witnessVersion == 0 && len(program) != 20 && len(program) != 32 {
		return "", ErrInvalidWitness
	}

	grouped, err := ConvertBits(program, 8, 5, true)
	if err != nil {
		return "", err
	}
	return Encode(hrp, append([]byte{witnessVersion}, grouped...), segwitConst(witnessVersion))
}

// DecodeSegWit inverts EncodeSegWit, returning the witness version and
// program.
func DecodeSegWit(hrp, encoded string) (byte, []byte, error) {
	// version is unknown until decoded, so try the v0 constant first
	gotHRP, data, err := Decode(encoded, ConstBech32)
	if err != nil {
		gotHRP, data, err = Decode(encoded, ConstBech32m)
	}
	if err != nil {
		return 0, nil, err
	}
	if gotHRP != hrp {
		return 0, nil, fmt.Errorf("segwit: unexpected prefix %q", gotHRP)
	}
	if len(data) < 1 || data[0] > 16 {
		return 0, nil, ErrInvalidWitness
	}

	version := data[0]
	// re-verify with the constant the version mandates
	if _, _, err := Decode(encoded, segwitConst(version)); err != nil {
		return 0, nil, err
	}

	program, err := ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if len(program) < 2 || len(program) > 40 {
		return 0, nil, ErrInvalidWitness
	}
	if version == 0 && len(program) != 20 && len(program) != 32 {
		return 0, nil, ErrInvalidWitness
	}
	return version, program, nil
}

func segwitConst(witnessVersion byte) uint32 {
	if witnessVersion == 0 {
		return ConstBech32
	}
	return ConstBech32m
}
