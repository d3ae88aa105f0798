package crypto

import (
	"crypto/ed25519"

	"github.com/iov-one/multikey"
)

// Ed25519Address derives the single key account address of an ed25519
// public key. The key must be 33 bytes: the 0x00 scheme flag followed by
// the 32 byte point encoding.
func Ed25519Address(pk PublicKey) (multikey.Address, error) {
	return keyAddress(pk, Ed25519KeyLength, Ed25519Flag)
}

// NewEd25519PublicKey wraps a raw ed25519 public key into a scheme
// flagged key.
func NewEd25519PublicKey(pub ed25519.PublicKey) PublicKey {
	pk := make(PublicKey, 0, Ed25519KeyLength)
	pk = append(pk, Ed25519Flag)
	return append(pk, pub...)
}
