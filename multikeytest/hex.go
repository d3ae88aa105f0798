package multikeytest

import (
	"encoding/hex"
	"strings"
	"testing"
)

// ParseHex decodes a hex string, accepting an optional 0x prefix, and
// fails the test on malformed input.
func ParseHex(t testing.TB, enc string) []byte {
	t.Helper()

	enc = strings.TrimPrefix(enc, "0x")
	raw, err := hex.DecodeString(enc)
	if err != nil {
		t.Fatalf("cannot decode %q hex: %s", enc, err)
	}
	return raw
}
