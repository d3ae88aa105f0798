package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/errors"
)

// Secp256k1Address derives the single key account address of a secp256k1
// public key. The key must be 34 bytes: the 0x01 scheme flag followed by
// the 33 byte compressed point encoding.
func Secp256k1Address(pk PublicKey) (multikey.Address, error) {
	return keyAddress(pk, Secp256k1KeyLength, Secp256k1Flag)
}

// NewSecp256k1PublicKey wraps a secp256k1 public key into a scheme
// flagged key using its compressed encoding.
func NewSecp256k1PublicKey(pub *btcec.PublicKey) PublicKey {
	pk := make(PublicKey, 0, Secp256k1KeyLength)
	pk = append(pk, Secp256k1Flag)
	return append(pk, pub.SerializeCompressed()...)
}

func parseSecp256k1(material []byte) error {
	if _, err := btcec.ParsePubKey(material); err != nil {
		return errors.Wrapf(errors.ErrInput, "secp256k1: %s", err)
	}
	return nil
}
