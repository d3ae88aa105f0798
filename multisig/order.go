package multisig

import (
	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/errors"
)

// Order recovers the key arrangement whose derived address equals the
// expected one. The weight sequence is never rearranged: each candidate
// pairs the weight at position i with whatever key occupies position i in
// that arrangement, so the search runs over key orderings relative to the
// fixed weight sequence.
//
// Arrangements are tried in the deterministic Permuter sequence and the
// first match is returned immediately. When no arrangement reproduces the
// address the search fails with ErrNoMatch. Validation failures of the
// specification itself (length mismatch, bad threshold) are reported as
// such, they do not count as a failed search.
//
// The cost is O(n! * n), acceptable only for the small key sets multisig
// accounts use in practice. Hosts should bound n before calling.
func Order(expected multikey.Address, keys []crypto.PublicKey, weights []Weight, threshold Threshold) ([]crypto.PublicKey, error) {
	spec := Spec{
		Weights:   weights,
		Threshold: threshold,
	}
	perm := NewPermuter(keys)
	for perm.Next() {
		spec.Keys = perm.Current()
		addr, err := spec.Address()
		if err != nil {
			// Validation does not depend on the arrangement, the
			// first failure settles every other one.
			return nil, err
		}
		if addr.Equals(expected) {
			return perm.Keys(), nil
		}
	}
	return nil, errors.Wrapf(errors.ErrNoMatch, "checked every arrangement of %d keys", len(keys))
}
