package hdkey

// path.go - BIP-44 style derivation path parsing. Paths are written the
// usual way ("m/44'/60'/0'/0/0"); hardened segments carry bit 31.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedOffset marks a hardened index (bit 31 set)
const HardenedOffset uint32 = 0x80000000

var ErrInvalidPath = errors.New("invalid derivation path")

// ParsePath converts a textual derivation path into index form. Both the
// apostrophe and the letter h mark hardened segments.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "m" {
		return []uint32{}, nil
	}
	if !strings.HasPrefix(path, "m/") {
		return nil, fmt.Errorf("%w: %q must start with m/", ErrInvalidPath, path)
	}

	segments := strings.Split(path[2:], "/")
	indices := make([]uint32, 0, len(segments))
	for _, segment := range segments {
		hardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			hardened = true
			segment = segment[:len(segment)-1]
		}

		value, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, segment)
		}
		if value >= uint64(HardenedOffset) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidPath, value)
		}

		index := uint32(value)
		if hardened {
			index |= HardenedOffset
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// IsHardened reports whether index has the hardened bit set.
func IsHardened(index uint32) bool {
	return index&HardenedOffset != 0
}

// FormatPath renders indices back to the textual form, hardened segments
// marked with an apostrophe.
func FormatPath(indices []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, index := range indices {
		sb.WriteString("/")
		sb.WriteString(strconv.FormatUint(uint64(index&^HardenedOffset), 10))
		if IsHardened(index) {
			sb.WriteString("'")
		}
	}
	return sb.String()
}
