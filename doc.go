/*
Package multikey implements deterministic account address derivation for
weighted multi-signature key sets, and the reverse search that recovers
the canonical key ordering reproducing a known address.

The root package defines the Address type shared by all subpackages.
Scheme flagged public keys and single key addresses live in the crypto
package. The multisig package holds the canonical encoding, the weighted
address derivation and the permutation based order resolver.

We pass context through context.Context between the host environment and
the library. The host enriches the context with request scoped data, such
as the sender identity. There exist two functions for every XYZ of type T
that we support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)
*/
package multikey
