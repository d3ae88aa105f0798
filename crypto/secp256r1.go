package crypto

import (
	"crypto/elliptic"
	"math/big"

	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/errors"
)

// Secp256r1Address derives the single key account address of a secp256r1
// (NIST P-256) public key. The key must be 34 bytes: the 0x02 scheme flag
// followed by the 33 byte compressed point encoding.
func Secp256r1Address(pk PublicKey) (multikey.Address, error) {
	return keyAddress(pk, Secp256r1KeyLength, Secp256r1Flag)
}

// NewSecp256r1PublicKey wraps a P-256 point into a scheme flagged key
// using its compressed encoding.
func NewSecp256r1PublicKey(x, y *big.Int) PublicKey {
	pk := make(PublicKey, 0, Secp256r1KeyLength)
	pk = append(pk, Secp256r1Flag)
	return append(pk, elliptic.MarshalCompressed(elliptic.P256(), x, y)...)
}

func parseSecp256r1(material []byte) error {
	x, _ := elliptic.UnmarshalCompressed(elliptic.P256(), material)
	if x == nil {
		return errors.Wrap(errors.ErrInput, "secp256r1: not a point on the curve")
	}
	return nil
}
