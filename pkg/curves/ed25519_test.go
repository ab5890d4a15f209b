package curves_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grendel/hilbert/pkg/curves"
)

func TestDeriveEd25519Keypair(t *testing.T) {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i)
	}

	priv, pub, err := curves.DeriveEd25519Keypair(seed)
	require.NoError(t, err)
	assert.Equal(t, seed, priv)
	assert.Len(t, pub, curves.Ed25519PubKeyLen)

	// deterministic and consistent with the standard library
	expected := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	assert.Equal(t, []byte(expected), pub)

	privAgain, pubAgain, err := curves.DeriveEd25519Keypair(seed)
	require.NoError(t, err)
	assert.Equal(t, priv, privAgain)
	assert.Equal(t, pub, pubAgain)
}

func TestDeriveEd25519KeypairRejectsBadSeed(t *testing.T) {
	_, _, err := curves.DeriveEd25519Keypair(make([]byte, 31))
	assert.ErrorIs(t, err, curves.ErrInvalidEd25519Seed)

	assert.False(t, curves.IsValidEd25519Seed(nil))
	assert.True(t, curves.IsValidEd25519Seed(make([]byte, 32)))
}
