package multisig

import (
	"github.com/iov-one/multikey/crypto"
)

// Permuter enumerates every arrangement of a key sequence, producing
// exactly n! arrangements for n keys, the input order first. It is an
// iterative form of Heap's algorithm driven by a counter array, so the
// enumeration runs in constant stack space no matter how many keys are
// permuted.
//
// The enumeration order is not lexicographic but it is fixed: for three
// keys A B C the arrangements come out as ABC, BAC, CAB, ACB, BCA, CBA.
// Callers rely on this sequence being deterministic.
type Permuter struct {
	keys    []crypto.PublicKey
	counter []int
	i       int
	started bool
}

// NewPermuter returns a Permuter over a private copy of the given key
// sequence. Call Next to step to the first arrangement.
func NewPermuter(keys []crypto.PublicKey) *Permuter {
	p := &Permuter{}
	p.Reset(keys)
	return p
}

// Reset rewinds the Permuter and points it at a fresh copy of the given
// key sequence, allowing a single value to drive several searches.
func (p *Permuter) Reset(keys []crypto.PublicKey) {
	p.keys = append(p.keys[:0], keys...)
	p.counter = make([]int, len(keys))
	p.i = 1
	p.started = false
}

// Next advances to the following arrangement and reports whether one is
// available. The first call makes the unchanged input order current. Once
// all n! arrangements have been produced it returns false.
func (p *Permuter) Next() bool {
	if !p.started {
		p.started = true
		return true
	}
	n := len(p.keys)
	for p.i < n {
		if p.counter[p.i] < p.i {
			if p.i%2 == 0 {
				p.keys[0], p.keys[p.i] = p.keys[p.i], p.keys[0]
			} else {
				p.keys[p.counter[p.i]], p.keys[p.i] = p.keys[p.i], p.keys[p.counter[p.i]]
			}
			p.counter[p.i]++
			p.i = 1
			return true
		}
		p.counter[p.i] = 0
		p.i++
	}
	return false
}

// Current returns the arrangement produced by the last successful Next
// call. The returned slice is the Permuter's working buffer and is
// rearranged in place by the following Next call. Use Keys for a copy
// that survives iteration.
func (p *Permuter) Current() []crypto.PublicKey {
	return p.keys
}

// Keys returns an independent copy of the current arrangement.
func (p *Permuter) Keys() []crypto.PublicKey {
	cpy := make([]crypto.PublicKey, len(p.keys))
	copy(cpy, p.keys)
	return cpy
}
