package multikeytest

import (
	"crypto/ed25519"
	"crypto/elliptic"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/multisig"
)

// Ed25519Key returns a deterministic, scheme flagged ed25519 public key.
// The seed byte fills the private key seed, so equal seeds produce equal
// keys.
func Ed25519Key(seed byte) crypto.PublicKey {
	var s [ed25519.SeedSize]byte
	for i := range s {
		s[i] = seed
	}
	pub := ed25519.NewKeyFromSeed(s[:]).Public().(ed25519.PublicKey)
	return crypto.NewEd25519PublicKey(pub)
}

// Secp256k1Key returns a deterministic, scheme flagged secp256k1 public
// key. The seed byte fills the private scalar, with the lowest byte
// forced odd so the scalar is never zero.
func Secp256k1Key(seed byte) crypto.PublicKey {
	var s [32]byte
	for i := range s {
		s[i] = seed
	}
	s[31] |= 1
	_, pub := btcec.PrivKeyFromBytes(s[:])
	return crypto.NewSecp256k1PublicKey(pub)
}

// Secp256r1Key returns a deterministic, scheme flagged secp256r1 public
// key, built the same way as Secp256k1Key.
func Secp256r1Key(seed byte) crypto.PublicKey {
	var s [32]byte
	for i := range s {
		s[i] = seed
	}
	s[31] |= 1
	x, y := elliptic.P256().ScalarBaseMult(s[:])
	return crypto.NewSecp256r1PublicKey(x, y)
}

// Keyset returns a three key specification covering every supported
// scheme, with unit weights and a threshold of two. It is the default
// fixture for multisig derivation tests.
func Keyset() multisig.Spec {
	return multisig.Spec{
		Keys: []crypto.PublicKey{
			Ed25519Key(1),
			Secp256k1Key(2),
			Secp256r1Key(3),
		},
		Weights:   []multisig.Weight{1, 1, 1},
		Threshold: 2,
	}
}
