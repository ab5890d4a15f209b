package keccak_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/grendel/hilbert/pkg/keccak"
)

func TestSum256KnownVectors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"hello", "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
		{"The quick brown fox jumps over the lazy dog", "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15"},
	}

	for _, tc := range tests {
		got := keccak.Sum256([]byte(tc.input))
		assert.Equal(t, tc.want, hex.EncodeToString(got[:]), "input %q", tc.input)
	}
}

// Keccak-256 must not collapse into SHA3-256: the padding byte differs
func TestSum256IsNotSHA3(t *testing.T) {
	got := keccak.Sum256([]byte("abc"))
	sha3Digest := sha3.Sum256([]byte("abc"))
	assert.NotEqual(t, sha3Digest[:], got[:])
}

// Compare against the vetted legacy-Keccak implementation across input
// sizes that straddle the 136-byte rate boundary.
func TestSum256MatchesReference(t *testing.T) {
	input := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		input = append(input, byte(i*7+3))

		got := keccak.Sum256(input)

		ref := sha3.NewLegacyKeccak256()
		_, err := ref.Write(input)
		require.NoError(t, err)

		if !bytes.Equal(ref.Sum(nil), got[:]) {
			t.Fatalf("mismatch against reference at input length %d", len(input))
		}
	}
}

func TestSum256ExactRateBoundaries(t *testing.T) {
	for _, n := range []int{135, 136, 137, 271, 272, 273} {
		input := bytes.Repeat([]byte{0xa5}, n)
		got := keccak.Sum256(input)

		ref := sha3.NewLegacyKeccak256()
		ref.Write(input)
		assert.Equal(t, ref.Sum(nil), got[:], "length %d", n)
	}
}
