// Package address turns derived public keys into the printable address
// form each network expects. Encoders are pure functions over serialized
// public keys; key derivation lives one layer up.
package address

import "errors"

var (
	ErrInvalidPublicKey = errors.New("public key has wrong length or prefix for this encoder")
	ErrGeneration       = errors.New("address generation failed")
)
