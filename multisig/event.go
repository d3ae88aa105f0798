package multisig

import (
	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/crypto"
)

// AddressEvent is the audit record produced by Announce. It repeats the
// derivation input next to the derived address and is write-once: the
// fields are copies, detached from the caller's slices.
type AddressEvent struct {
	Keys      []crypto.PublicKey
	Weights   []Weight
	Threshold Threshold
	Address   multikey.Address
}

// Emitter consumes audit events. The host wires its event sink into the
// context with WithEmitter before invoking Announce.
type Emitter interface {
	Emit(AddressEvent)
}

func newAddressEvent(s Spec, addr multikey.Address) AddressEvent {
	keys := make([]crypto.PublicKey, len(s.Keys))
	for i, pk := range s.Keys {
		keys[i] = pk.Clone()
	}
	weights := make([]Weight, len(s.Weights))
	copy(weights, s.Weights)
	return AddressEvent{
		Keys:      keys,
		Weights:   weights,
		Threshold: s.Threshold,
		Address:   addr.Clone(),
	}
}
