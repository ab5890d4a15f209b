package keccak

// keccak.go - Keccak-256 as used by Ethereum and Tron address derivation.
// This is the original Keccak submission (0x01 domain padding), NOT the
// standardized SHA3-256 (0x06 padding). Mixing the two produces addresses
// that no reference wallet will recognize.

import (
	"encoding/binary"
	"math/bits"
)

const (
	// rate for Keccak-256: 1600-bit state minus 512-bit capacity
	rate = 136

	// Size is the digest size in bytes
	Size = 32

	rounds = 24
)

// roundConstants are the iota step constants for Keccak-f[1600]
var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets are the rho step rotations, ordered to match the pi
// lane permutation below
var rotationOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLanes is the lane order for the combined rho+pi step
var piLanes = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// permute runs the 24-round Keccak-f[1600] permutation in place.
// The state is 25 lanes of 64 bits arranged as a 5x5 matrix in
// row-major order (index = x + 5*y).
func permute(a *[25]uint64) {
	var bc [5]uint64

	for r := 0; r < rounds; r++ {
		// theta: column parities folded back into every lane
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho + pi: rotate each lane and move it to its permuted slot
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piLanes[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotationOffsets[i])
			t = bc[0]
		}

		// chi: nonlinear row mixing
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[r]
	}
}

// Sum256 returns the Keccak-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var state [25]uint64

	// Pad to a whole number of rate-sized blocks: 0x01 domain byte,
	// zero fill, 0x80 into the final byte. The two can land on the
	// same byte when the message is one short of a block boundary,
	// which is why the last byte is OR-ed rather than assigned.
	padded := make([]byte, (len(data)/rate+1)*rate)
	copy(padded, data)
	padded[len(data)] = 0x01
	padded[len(padded)-1] |= 0x80

	// Absorb each block into the first rate/8 lanes, little-endian
	for off := 0; off < len(padded); off += rate {
		block := padded[off : off+rate]
		for i := 0; i < rate/8; i++ {
			state[i] ^= binary.LittleEndian.Uint64(block[i*8:])
		}
		permute(&state)
	}

	// Squeeze: 32 bytes fit inside one rate, so no extra permutations
	var digest [Size]byte
	for i := 0; i < Size/8; i++ {
		binary.LittleEndian.PutUint64(digest[i*8:], state[i])
	}
	return digest
}
