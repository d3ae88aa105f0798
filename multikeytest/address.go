package multikeytest

import (
	"testing"

	"github.com/iov-one/multikey"
)

// ParseAddress takes an address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// multikey.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) multikey.Address {
	t.Helper()

	addr, err := multikey.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
