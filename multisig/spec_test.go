package multisig_test

import (
	"testing"

	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/errors"
	"github.com/iov-one/multikey/multikeytest"
	"github.com/iov-one/multikey/multisig"
)

func TestSpecValidate(t *testing.T) {
	keys := []crypto.PublicKey{
		multikeytest.Ed25519Key(1),
		multikeytest.Secp256k1Key(2),
		multikeytest.Secp256r1Key(3),
	}

	cases := map[string]struct {
		spec    multisig.Spec
		wantErr *errors.Error
	}{
		"valid three key spec": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{1, 1, 1},
				Threshold: 2,
			},
		},
		"threshold may equal the total weight": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{1, 2, 3},
				Threshold: 6,
			},
		},
		"single key spec": {
			spec: multisig.Spec{
				Keys:      keys[:1],
				Weights:   []multisig.Weight{1},
				Threshold: 1,
			},
		},
		"zero weight keys are legal": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{0, 0, 1},
				Threshold: 1,
			},
		},
		"more keys than weights": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{1, 1},
				Threshold: 1,
			},
			wantErr: errors.ErrLengthMismatch,
		},
		"more weights than keys": {
			spec: multisig.Spec{
				Keys:      keys[:1],
				Weights:   []multisig.Weight{1, 1},
				Threshold: 1,
			},
			wantErr: errors.ErrLengthMismatch,
		},
		"zero threshold": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{1, 1, 1},
				Threshold: 0,
			},
			wantErr: errors.ErrThreshold,
		},
		"threshold above the total weight": {
			spec: multisig.Spec{
				Keys:      keys,
				Weights:   []multisig.Weight{1, 1, 1},
				Threshold: 4,
			},
			wantErr: errors.ErrThreshold,
		},
		"empty spec has nothing to reach a threshold with": {
			spec: multisig.Spec{
				Threshold: 1,
			},
			wantErr: errors.ErrThreshold,
		},
		"weight sum breaking 16 bit range": {
			spec:    overweightSpec(),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.spec.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected validation error: %+v", err)
			}
		})
	}
}

// overweightSpec returns a specification whose true weight sum does not
// fit into 16 bits: 258 keys of weight 255 sum to 65790.
func overweightSpec() multisig.Spec {
	const n = 258
	spec := multisig.Spec{
		Keys:      make([]crypto.PublicKey, n),
		Weights:   make([]multisig.Weight, n),
		Threshold: 1,
	}
	pk := multikeytest.Ed25519Key(1)
	for i := 0; i < n; i++ {
		spec.Keys[i] = pk
		spec.Weights[i] = 255
	}
	return spec
}

func TestSpecEncode(t *testing.T) {
	// Two tiny fake keys: the encoder serializes raw bytes and must not
	// inspect key shapes.
	keyA := crypto.PublicKey{0x00, 0xaa, 0xab}
	keyB := crypto.PublicKey{0x01, 0xba}

	spec := multisig.Spec{
		Keys:      []crypto.PublicKey{keyA, keyB},
		Weights:   []multisig.Weight{3, 200},
		Threshold: 0x0102,
	}

	want := []byte{
		0x03,       // multisig flag
		0x02, 0x01, // threshold, little endian
		0x00, 0xaa, 0xab, // key A, raw
		3,          // weight A
		0x01, 0xba, // key B, raw
		200, // weight B
	}

	got := spec.Encode()
	if len(got) != len(want) {
		t.Fatalf("unexpected encoding length: %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("encoding mismatch at byte %d: %x", i, got)
		}
	}
}

func TestSpecEncodeOrderSensitive(t *testing.T) {
	spec := multikeytest.Keyset()

	flipped := multisig.Spec{
		Keys:      []crypto.PublicKey{spec.Keys[1], spec.Keys[0], spec.Keys[2]},
		Weights:   spec.Weights,
		Threshold: spec.Threshold,
	}

	a := spec.Encode()
	b := flipped.Encode()
	if len(a) == len(b) {
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Fatal("swapping keys must change the canonical encoding")
		}
	}
}
