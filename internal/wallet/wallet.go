package wallet

// wallet.go - orchestration from mnemonic to per-network keys and
// addresses. Each call is an independent pure transform; the only shared
// state is the read-only network registry.

import (
	"errors"
	"fmt"
	"sync"

	"github.com/grendel/hilbert/pkg/address"
	"github.com/grendel/hilbert/pkg/curves"
	"github.com/grendel/hilbert/pkg/hdkey"
	"github.com/grendel/hilbert/pkg/networks"
)

var (
	ErrAddressGeneration = errors.New("address generation failed")

	// ErrInvalidDerivationPath is the path error surfaced by this
	// package; it aliases the derivation layer's sentinel so callers
	// can match either name.
	ErrInvalidDerivationPath = hdkey.ErrInvalidPath
)

// KeyResult is the outcome of a single-network derivation. PrivateKey is
// owned by the caller, who should Zero it when done.
type KeyResult struct {
	Network    networks.Network
	PrivateKey []byte
	Address    string
}

// GenerateKeysForNetwork derives the private key and address for one
// network from a mnemonic.
func GenerateKeysForNetwork(mnemonic string, network networks.Network) (*KeyResult, error) {
	profile, err := networks.ProfileFor(network)
	if err != nil {
		return nil, err
	}

	seed, err := MnemonicToSeed(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer Zero(seed)

	return deriveForProfile(seed, profile)
}

// GenerateAllAddresses derives an address for every registered network.
// Networks are mutually independent, so derivation fans out across
// goroutines; any single failure fails the whole call with no partial
// result.
func GenerateAllAddresses(mnemonic string) (map[networks.Network]string, error) {
	seed, err := MnemonicToSeed(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer Zero(seed)

	profiles := networks.All()

	type outcome struct {
		network networks.Network
		addr    string
		err     error
	}
	results := make(chan outcome, len(profiles))

	var wg sync.WaitGroup
	for _, profile := range profiles {
		wg.Add(1)
		go func(p networks.Profile) {
			defer wg.Done()
			result, err := deriveForProfile(seed, p)
			if err != nil {
				results <- outcome{network: p.ID, err: err}
				return
			}
			Zero(result.PrivateKey)
			results <- outcome{network: p.ID, addr: result.Address}
		}(profile)
	}
	wg.Wait()
	close(results)

	addresses := make(map[networks.Network]string, len(profiles))
	for r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("network %s: %w", r.network, r.err)
		}
		addresses[r.network] = r.addr
	}
	return addresses, nil
}

// deriveForProfile walks the profile path and encodes the address for
// its scheme.
func deriveForProfile(seed []byte, profile networks.Profile) (*KeyResult, error) {
	path, err := hdkey.ParsePath(profile.Path)
	if err != nil {
		return nil, err
	}

	key, err := hdkey.Derive(seed, path, profile.Curve)
	if err != nil {
		return nil, err
	}
	defer key.Wipe()

	addr, err := encodeAddress(key, profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAddressGeneration, err)
	}

	privateKey := make([]byte, len(key.Key))
	copy(privateKey, key.Key)

	return &KeyResult{
		Network:    profile.ID,
		PrivateKey: privateKey,
		Address:    addr,
	}, nil
}

func encodeAddress(key *hdkey.ExtendedKey, profile networks.Profile) (string, error) {
	switch profile.Scheme {
	case networks.SchemeEIP55:
		pub, err := curves.DerivePublicKey(key.Key, false)
		if err != nil {
			return "", err
		}
		return address.EncodeEIP55(pub)

	case networks.SchemeBech32SegWit:
		pub, err := curves.DerivePublicKey(key.Key, true)
		if err != nil {
			return "", err
		}
		return address.EncodeP2WPKH(pub, profile.Bech32HRP)

	case networks.SchemeBech32:
		pub, err := curves.DerivePublicKey(key.Key, true)
		if err != nil {
			return "", err
		}
		return address.EncodeBech32Account(pub, profile.Bech32HRP)

	case networks.SchemeBase58:
		_, pub, err := curves.DeriveEd25519Keypair(key.Key)
		if err != nil {
			return "", err
		}
		return address.EncodeSolana(pub)

	case networks.SchemeBase58Check:
		pub, err := curves.DerivePublicKey(key.Key, false)
		if err != nil {
			return "", err
		}
		return address.EncodeTron(pub)

	default:
		return "", fmt.Errorf("no encoder for scheme %q", profile.Scheme)
	}
}

// Sign produces a compact ECDSA signature over a 32-byte digest with a
// secp256k1 key.
func Sign(digest, key []byte) ([]byte, error) {
	return curves.Sign(digest, key)
}

// Verify checks a compact signature against a digest and a serialized
// secp256k1 public key.
func Verify(sig, digest, pub []byte) bool {
	return curves.Verify(sig, digest, pub)
}
