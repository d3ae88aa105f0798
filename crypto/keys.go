package crypto

import (
	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/errors"
)

// Flag bytes identify the signature scheme a public key or an address
// derivation belongs to. Every public key carries its flag as the first
// byte. The multisig flag never prefixes a key, it opens the canonical
// multisig address preimage.
const (
	Ed25519Flag   byte = 0x00
	Secp256k1Flag byte = 0x01
	Secp256r1Flag byte = 0x02
	MultisigFlag  byte = 0x03
)

// Public key lengths per scheme, the flag byte included. The canonical
// multisig encoding appends keys without any length prefix, so key
// boundaries rely on these lengths being fixed per scheme.
const (
	Ed25519KeyLength   = 33
	Secp256k1KeyLength = 34
	Secp256r1KeyLength = 34
)

// PublicKey is a scheme flagged public key: the flag byte followed by the
// scheme specific key material. It is a value, never mutated after
// creation.
type PublicKey []byte

// Validate returns an error unless the key has a known scheme flag and
// the exact byte length that scheme dictates. This is a shape check only,
// use Parse to additionally verify the key material.
func (pk PublicKey) Validate() error {
	if len(pk) == 0 {
		return errors.Wrap(errors.ErrKeyLength, "empty key")
	}
	switch pk[0] {
	case Ed25519Flag:
		if len(pk) != Ed25519KeyLength {
			return errors.Wrapf(errors.ErrKeyLength, "ed25519 key must be %d bytes, got %d", Ed25519KeyLength, len(pk))
		}
	case Secp256k1Flag:
		if len(pk) != Secp256k1KeyLength {
			return errors.Wrapf(errors.ErrKeyLength, "secp256k1 key must be %d bytes, got %d", Secp256k1KeyLength, len(pk))
		}
	case Secp256r1Flag:
		if len(pk) != Secp256r1KeyLength {
			return errors.Wrapf(errors.ErrKeyLength, "secp256r1 key must be %d bytes, got %d", Secp256r1KeyLength, len(pk))
		}
	default:
		return errors.Wrapf(errors.ErrKeyFlag, "unknown scheme flag %#x", pk[0])
	}
	return nil
}

// Clone returns an independent copy of the key bytes.
func (pk PublicKey) Clone() PublicKey {
	if pk == nil {
		return nil
	}
	cpy := make(PublicKey, len(pk))
	copy(cpy, pk)
	return cpy
}

// keyAddress hashes a single flagged public key into an address. The key
// must be of the expected length and carry the expected scheme flag. The
// address is the digest of the key bytes alone, the embedded flag is the
// only scheme marker.
func keyAddress(pk PublicKey, length int, flag byte) (multikey.Address, error) {
	if len(pk) != length {
		return nil, errors.Wrapf(errors.ErrKeyLength, "%d bytes, want %d", len(pk), length)
	}
	if pk[0] != flag {
		return nil, errors.Wrapf(errors.ErrKeyFlag, "flag %#x, want %#x", pk[0], flag)
	}
	return multikey.NewAddress(pk), nil
}

// Address derives the single key account address for this key, routed by
// its scheme flag.
func (pk PublicKey) Address() (multikey.Address, error) {
	if len(pk) == 0 {
		return nil, errors.Wrap(errors.ErrKeyLength, "empty key")
	}
	switch pk[0] {
	case Ed25519Flag:
		return Ed25519Address(pk)
	case Secp256k1Flag:
		return Secp256k1Address(pk)
	case Secp256r1Flag:
		return Secp256r1Address(pk)
	default:
		return nil, errors.Wrapf(errors.ErrKeyFlag, "unknown scheme flag %#x", pk[0])
	}
}

// Parse checks that the key is well formed and that the key material
// decodes under its scheme. For the ECDSA schemes this verifies the
// compressed encoding names a point on the curve. Address derivation does
// not depend on this check, the wire contract is shape only. Hosts should
// parse keys once, when they are registered.
func Parse(pk PublicKey) error {
	if err := pk.Validate(); err != nil {
		return err
	}
	switch pk[0] {
	case Ed25519Flag:
		// Every 32 byte value is a valid ed25519 point encoding as
		// far as addressing is concerned.
		return nil
	case Secp256k1Flag:
		return parseSecp256k1(pk[1:])
	default:
		return parseSecp256r1(pk[1:])
	}
}
