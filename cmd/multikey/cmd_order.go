package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/multikey/multisig"
)

func cmdOrder(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Recover the canonical key ordering of a multisig account. Given the
account address and the key set in any order, print the keys in the order
that reproduces the address, one per line.

The search tries every arrangement of the key set, so it is meant for the
small key counts multisig accounts use in practice.
		`)
		fl.PrintDefaults()
	}
	var (
		addressFl   = flAddress(fl, "address", "The multisig account address to reproduce.")
		thresholdFl = fl.Uint("threshold", 0, "Approval threshold. Must be greater than 0.")
		maxKeysFl   = fl.Uint("max-keys", 10, "Refuse key sets larger than this, the search cost grows with the factorial of the key count.")
		keysFl      = flKeys(fl, "key", "Flagged public key with its weight, as <hexkey>:<weight>. Repeatable, any order.")
	)
	fl.Parse(args)

	if len(addressFl.addr) == 0 {
		flagDie("an address is required")
	}
	if n := len(keysFl.keys); uint(n) > *maxKeysFl {
		flagDie("refusing to permute %d keys, the limit is %d", n, *maxKeysFl)
	}

	ordered, err := multisig.Order(addressFl.addr, keysFl.keys, keysFl.weights, multisig.Threshold(*thresholdFl))
	if err != nil {
		return fmt.Errorf("cannot order keys: %s", err)
	}
	for _, pk := range ordered {
		fmt.Fprintf(output, "%x\n", []byte(pk))
	}
	return nil
}
