package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/multisig"
)

func cmdDerive(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Derive the multisig account address of a weighted key set. Keys are given
in canonical order, each as a flagged public key with its weight:

	derive -threshold 2 \
		-key 00AB..CD:1 \
		-key 01EF..99:1
		`)
		fl.PrintDefaults()
	}
	var (
		thresholdFl = fl.Uint("threshold", 0, "Approval threshold. Must be greater than 0.")
		strictFl    = fl.Bool("strict", false, "Verify that every key decodes under its scheme before deriving.")
		keysFl      = flKeys(fl, "key", "Flagged public key with its weight, as <hexkey>:<weight>. Repeatable, order matters.")
	)
	fl.Parse(args)

	spec := multisig.Spec{
		Keys:      keysFl.keys,
		Weights:   keysFl.weights,
		Threshold: multisig.Threshold(*thresholdFl),
	}

	if *strictFl {
		for i, pk := range spec.Keys {
			if err := crypto.Parse(pk); err != nil {
				return fmt.Errorf("key %d: %s", i, err)
			}
		}
	}

	addr, err := spec.Address()
	if err != nil {
		return fmt.Errorf("cannot derive address: %s", err)
	}
	fmt.Fprintln(output, addr)
	return nil
}
