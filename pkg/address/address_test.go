package address_test

import (
	"encoding/hex"
	"strings"
	"testing"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendel/hilbert/pkg/address"
	"github.com/grendel/hilbert/pkg/base58"
	"github.com/grendel/hilbert/pkg/curves"
)

// private key for mnemonic "crawl boost shadow ..." at m/44'/60'/0'/0/0
const crawlPrivHex = "35427bdc4aad663235b6b06a60c83236e27767901f727cf0379e51695cb61fd4"

func uncompressedPub(t *testing.T, privHex string) []byte {
	t.Helper()
	priv, err := hex.DecodeString(privHex)
	require.NoError(t, err)
	pub, err := curves.DerivePublicKey(priv, false)
	require.NoError(t, err)
	return pub
}

func compressedPub(t *testing.T, privHex string) []byte {
	t.Helper()
	priv, err := hex.DecodeString(privHex)
	require.NoError(t, err)
	pub, err := curves.DerivePublicKey(priv, true)
	require.NoError(t, err)
	return pub
}

func TestEncodeEIP55(t *testing.T) {
	got, err := address.EncodeEIP55(uncompressedPub(t, crawlPrivHex))
	require.NoError(t, err)
	assert.Equal(t, "0x879DF5268D9343A703D33e55153c26A24FA369f4", got)
}

// The encoder must agree with go-ethereum for arbitrary keys
func TestEncodeEIP55MatchesGoEthereum(t *testing.T) {
	for i := byte(1); i <= 16; i++ {
		priv := make([]byte, 32)
		priv[31] = i
		priv[0] = i * 3

		got, err := address.EncodeEIP55(uncompressedPub(t, hex.EncodeToString(priv)))
		require.NoError(t, err)

		key, err := ethcrypto.ToECDSA(priv)
		require.NoError(t, err)
		assert.Equal(t, ethcrypto.PubkeyToAddress(key.PublicKey).Hex(), got)
	}
}

func TestEncodeEIP55RejectsWrongForm(t *testing.T) {
	_, err := address.EncodeEIP55(compressedPub(t, crawlPrivHex))
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)

	_, err = address.EncodeEIP55(make([]byte, 65))
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)
}

func TestValidateEIP55(t *testing.T) {
	valid := "0x879DF5268D9343A703D33e55153c26A24FA369f4"
	assert.True(t, address.ValidateEIP55(valid))
	assert.True(t, address.ValidateEIP55(strings.ToLower(valid)))

	// one casing flip breaks the checksum
	broken := strings.Replace(valid, "D9343", "d9343", 1)
	assert.False(t, address.ValidateEIP55(broken))

	assert.False(t, address.ValidateEIP55("879DF5268D9343A703D33e55153c26A24FA369f4"))
	assert.False(t, address.ValidateEIP55("0x1234"))
}

func TestEncodeP2WPKH(t *testing.T) {
	// BIP-173 example key hash: address for the generator point pubkey
	pub, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	got, err := address.EncodeP2WPKH(pub, "bc")
	require.NoError(t, err)
	assert.Equal(t, "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4", got)

	_, err = address.EncodeP2WPKH(pub[1:], "bc")
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)
}

func TestEncodeBech32Account(t *testing.T) {
	got, err := address.EncodeBech32Account(compressedPub(t, crawlPrivHex), "cosmos")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "cosmos1"), "got %s", got)

	_, err = address.EncodeBech32Account(uncompressedPub(t, crawlPrivHex), "cosmos")
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)
}

func TestEncodeSolana(t *testing.T) {
	pub := make([]byte, 32)
	pub[0] = 0x01
	pub[31] = 0xff

	got, err := address.EncodeSolana(pub)
	require.NoError(t, err)

	decoded, err := base58.Decode(got)
	require.NoError(t, err)
	assert.Equal(t, pub, decoded)

	_, err = address.EncodeSolana(make([]byte, 33))
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)
}

func TestEncodeTron(t *testing.T) {
	got, err := address.EncodeTron(uncompressedPub(t, crawlPrivHex))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "T"), "got %s", got)

	// checksum must verify and expose the 0x41 version byte
	payload, err := base58.CheckDecode(got)
	require.NoError(t, err)
	require.Len(t, payload, 21)
	assert.Equal(t, byte(0x41), payload[0])

	// the 20-byte account must match the EVM derivation of the same key
	evm, err := address.EncodeEIP55(uncompressedPub(t, crawlPrivHex))
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(evm[2:]), hex.EncodeToString(payload[1:]))

	_, err = address.EncodeTron(compressedPub(t, crawlPrivHex))
	assert.ErrorIs(t, err, address.ErrInvalidPublicKey)
}
