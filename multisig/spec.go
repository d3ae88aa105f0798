package multisig

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/errors"
)

// Weight represents the strength of a single key. A weight of zero is
// structurally legal but contributes nothing towards the threshold.
type Weight uint8

// Threshold is the minimum total weight of participating signers required
// for the account to authorize an action.
type Threshold uint16

// Spec is a weighted multisig account specification: an ordered key
// sequence, the parallel weight sequence and the approval threshold.
// Weights pair with keys by index.
type Spec struct {
	Keys      []crypto.PublicKey
	Weights   []Weight
	Threshold Threshold
}

// Validate enforces the weight and threshold boundaries. Key shapes are
// deliberately not checked here: the canonical encoding is defined over
// raw key bytes and hosts validate keys when they are registered.
func (s Spec) Validate() error {
	if len(s.Keys) != len(s.Weights) {
		return errors.Wrapf(errors.ErrLengthMismatch, "%d keys, %d weights", len(s.Keys), len(s.Weights))
	}
	sum := s.weightSum()
	if sum > math.MaxUint16 {
		return errors.Wrapf(errors.ErrOverflow, "total weight %d exceeds 16 bit range", sum)
	}
	if s.Threshold == 0 {
		return errors.Wrap(errors.ErrThreshold, "threshold must be greater than zero")
	}
	if uint32(s.Threshold) > sum {
		return errors.Wrapf(errors.ErrThreshold, "threshold %d greater than total weight %d", s.Threshold, sum)
	}
	return nil
}

// weightSum is computed in 32 bit arithmetic so that an over-weighted key
// set is detected instead of silently wrapping the 16 bit threshold
// comparison.
func (s Spec) weightSum() uint32 {
	var sum uint32
	for _, w := range s.Weights {
		sum += uint32(w)
	}
	return sum
}

// Encode returns the canonical byte encoding that is hashed into the
// account address: the multisig flag byte, the threshold as two little
// endian bytes, then every key's raw bytes followed by its weight byte,
// in input order. Keys carry no length prefix, boundaries rely on the
// fixed per scheme key lengths.
//
// This is a pure serialization of the input sequence, no validation
// happens here.
func (s Spec) Encode() []byte {
	size := 3
	for _, pk := range s.Keys {
		size += len(pk) + 1
	}
	buf := make([]byte, 0, size)
	buf = append(buf, crypto.MultisigFlag)
	buf = binary.LittleEndian.AppendUint16(buf, uint16(s.Threshold))
	for i, pk := range s.Keys {
		buf = append(buf, pk...)
		buf = append(buf, byte(s.Weights[i]))
	}
	return buf
}
