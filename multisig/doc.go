/*
Package multisig derives deterministic account addresses for weighted
multi-signature key sets and recovers the canonical key ordering that
reproduces a known address.

An address is the blake2b-256 digest of the canonical encoding

	[multisig flag] [threshold, 2 bytes little endian] [key 0] [weight 0] ...

with keys appended raw, in caller supplied order. The order of the key
sequence is load bearing: two specifications holding the same set of
(key, weight) pairs in different order hash to different addresses. Order
walks every arrangement of a key set to find the one matching a target
address, which is the verification primitive behind "is this sender a
legitimate M-of-N multisig account" checks.

Everything in this package is a pure function of its inputs. Announce is
the only operation with an effect, delivering a single audit event to the
emitter the host registered on the context.
*/
package multisig
