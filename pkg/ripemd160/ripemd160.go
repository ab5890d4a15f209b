package ripemd160

// ripemd160.go - RIPEMD-160 for hash160 (SHA-256 then RIPEMD-160) address
// derivation on Bitcoin and Cosmos. Dual-line Merkle-Damgard construction:
// two independent 80-round lines over the same message block, combined into
// the five-word chaining state at the end of each block.

import (
	"encoding/binary"
	"math/bits"
)

// Size is the digest size in bytes
const Size = 20

const blockSize = 64

// Per-round message word selection, left line then right line
var selectLeft = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var selectRight = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

// Per-round left rotation amounts, left line then right line
var rotateLeftLine = [80]int{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var rotateRightLine = [80]int{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

// Round constants: one per 16-round group
var constLeft = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var constRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

// boolean selection function for round group g
func f(g int, x, y, z uint32) uint32 {
	switch g {
	case 0:
		return x ^ y ^ z
	case 1:
		return (x & y) | (^x & z)
	case 2:
		return (x | ^y) ^ z
	case 3:
		return (x & z) | (y & ^z)
	default:
		return x ^ (y | ^z)
	}
}

// compress folds one 64-byte block into the chaining state
func compress(state *[5]uint32, block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d, e := state[0], state[1], state[2], state[3], state[4]
	ap, bp, cp, dp, ep := state[0], state[1], state[2], state[3], state[4]

	for j := 0; j < 80; j++ {
		g := j / 16

		t := bits.RotateLeft32(a+f(g, b, c, d)+x[selectLeft[j]]+constLeft[g], rotateLeftLine[j]) + e
		a, e, d, c, b = e, d, bits.RotateLeft32(c, 10), b, t

		// right line runs the group functions in reverse order
		t = bits.RotateLeft32(ap+f(4-g, bp, cp, dp)+x[selectRight[j]]+constRight[g], rotateRightLine[j]) + ep
		ap, ep, dp, cp, bp = ep, dp, bits.RotateLeft32(cp, 10), bp, t
	}

	t := state[1] + c + dp
	state[1] = state[2] + d + ep
	state[2] = state[3] + e + ap
	state[3] = state[4] + a + bp
	state[4] = state[0] + b + cp
	state[0] = t
}

// Sum returns the RIPEMD-160 digest of data.
func Sum(data []byte) [Size]byte {
	state := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

	// MD strengthening: 0x80, zero fill, 64-bit little-endian bit count
	padLen := blockSize - (len(data)+8)%blockSize
	padded := make([]byte, len(data)+padLen+8)
	copy(padded, data)
	padded[len(data)] = 0x80
	binary.LittleEndian.PutUint64(padded[len(padded)-8:], uint64(len(data))*8)

	for off := 0; off < len(padded); off += blockSize {
		compress(&state, padded[off:off+blockSize])
	}

	var digest [Size]byte
	for i, w := range state {
		binary.LittleEndian.PutUint32(digest[i*4:], w)
	}
	return digest
}
