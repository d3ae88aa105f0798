package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iov-one/multikey/crypto"
)

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the single key account address of a flagged public key. The scheme
is read from the key's first byte.
		`)
		fl.PrintDefaults()
	}
	var (
		keyFl = fl.String("key", "", "Hex encoded, flagged public key.")
	)
	fl.Parse(args)

	raw, err := hex.DecodeString(strings.TrimPrefix(*keyFl, "0x"))
	if err != nil {
		flagDie("cannot decode key hex: %s", err)
	}

	addr, err := crypto.PublicKey(raw).Address()
	if err != nil {
		return fmt.Errorf("cannot derive address: %s", err)
	}
	fmt.Fprintln(output, addr)
	return nil
}

// flagDie reports a flag validation error the same way the flag package
// does and terminates.
func flagDie(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
