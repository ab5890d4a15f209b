package hdkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendel/hilbert/pkg/hdkey"
)

func TestParsePath(t *testing.T) {
	h := hdkey.HardenedOffset

	tests := []struct {
		path string
		want []uint32
	}{
		{"m", []uint32{}},
		{"m/0", []uint32{0}},
		{"m/0'", []uint32{h}},
		{"m/0h", []uint32{h}},
		{"m/44'/60'/0'/0/0", []uint32{44 | h, 60 | h, 0 | h, 0, 0}},
		{"m/84'/0'/0'/0/0", []uint32{84 | h, 0 | h, 0 | h, 0, 0}},
		{"m/44'/501'/0'/0'", []uint32{44 | h, 501 | h, 0 | h, 0 | h}},
		{"m/2147483647'", []uint32{2147483647 | h}},
	}

	for _, tc := range tests {
		got, err := hdkey.ParsePath(tc.path)
		require.NoError(t, err, "path %q", tc.path)
		assert.Equal(t, tc.want, got, "path %q", tc.path)
	}
}

func TestParsePathRejectsMalformed(t *testing.T) {
	invalid := []string{
		"",
		"44'/60'",
		"m/",
		"m//0",
		"m/abc",
		"m/-1",
		"m/2147483648",
		"m/0''",
	}

	for _, path := range invalid {
		_, err := hdkey.ParsePath(path)
		assert.ErrorIs(t, err, hdkey.ErrInvalidPath, "path %q", path)
	}
}

func TestFormatPathRoundTrip(t *testing.T) {
	for _, path := range []string{"m", "m/44'/60'/0'/0/0", "m/44'/501'/0'/0'", "m/84'/0'/0'/0/0"} {
		indices, err := hdkey.ParsePath(path)
		require.NoError(t, err)
		assert.Equal(t, path, hdkey.FormatPath(indices))
	}
}

func TestIsHardened(t *testing.T) {
	assert.True(t, hdkey.IsHardened(hdkey.HardenedOffset))
	assert.True(t, hdkey.IsHardened(hdkey.HardenedOffset|44))
	assert.False(t, hdkey.IsHardened(44))
	assert.False(t, hdkey.IsHardened(0))
}
