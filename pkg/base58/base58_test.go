package base58_test

import (
	"encoding/hex"
	"math/rand"
	"testing"

	reference "github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendel/hilbert/pkg/base58"
)

func TestEncodeKnownVectors(t *testing.T) {
	tests := []struct {
		hexInput string
		want     string
	}{
		{"", ""},
		{"61", "2g"},
		{"626262", "a3gV"},
		{"636363", "aPEr"},
		{"73696d706c792061206c6f6e6720737472696e67", "2cFupjhnEsSn59qHXstmK2ffpLv2"},
		{"00eb15231dfceb60925886b67d065299925915aeb172c06647", "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L"},
		{"516b6fcd0f", "ABnLTmg"},
		{"00000000000000000000", "1111111111"},
	}

	for _, tc := range tests {
		input, err := hex.DecodeString(tc.hexInput)
		require.NoError(t, err)
		assert.Equal(t, tc.want, base58.Encode(input), "input %s", tc.hexInput)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(58))
	for i := 0; i < 200; i++ {
		input := make([]byte, rng.Intn(64))
		rng.Read(input)
		if rng.Intn(4) == 0 && len(input) > 0 {
			input[0] = 0 // exercise leading-zero handling
		}

		encoded := base58.Encode(input)
		assert.Equal(t, reference.Encode(input), encoded)

		decoded, err := base58.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, input, decoded)
	}
}

func TestDecodeRejectsInvalidCharacters(t *testing.T) {
	for _, s := range []string{"0", "O", "I", "l", "2g!", "a3gV+"} {
		_, err := base58.Decode(s)
		assert.ErrorIs(t, err, base58.ErrInvalidCharacter, "input %q", s)
	}
}

func TestCheckEncodeDecode(t *testing.T) {
	payload := []byte{0x41, 0x01, 0x02, 0x03, 0x04, 0x05}

	encoded := base58.CheckEncode(payload)
	decoded, err := base58.CheckDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestCheckDecodeRejectsCorruption(t *testing.T) {
	encoded := base58.CheckEncode([]byte{0x41, 0xde, 0xad, 0xbe, 0xef})

	// flip one character to another alphabet character
	corrupted := []byte(encoded)
	if corrupted[2] == 'x' {
		corrupted[2] = 'y'
	} else {
		corrupted[2] = 'x'
	}

	_, err := base58.CheckDecode(string(corrupted))
	assert.ErrorIs(t, err, base58.ErrInvalidChecksum)
}

func TestCheckDecodeRejectsShortInput(t *testing.T) {
	_, err := base58.CheckDecode("2g")
	assert.ErrorIs(t, err, base58.ErrTooShort)
}
