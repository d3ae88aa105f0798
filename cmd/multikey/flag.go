package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/crypto"
	"github.com/iov-one/multikey/multisig"
)

// flKeys registers a repeatable -key flag holding "hexkey:weight" pairs.
// The order of the flags on the command line is the order of the keys.
func flKeys(fl *flag.FlagSet, name, usage string) *keyList {
	var list keyList
	fl.Var(&list, name, usage)
	return &list
}

type keyList struct {
	keys    []crypto.PublicKey
	weights []multisig.Weight
}

var _ flag.Value = (*keyList)(nil)

func (l *keyList) String() string {
	return fmt.Sprintf("%d keys", len(l.keys))
}

func (l *keyList) Set(raw string) error {
	chunks := strings.SplitN(raw, ":", 2)
	if len(chunks) != 2 {
		return fmt.Errorf("expected <hexkey>:<weight>, got %q", raw)
	}
	key, err := hex.DecodeString(strings.TrimPrefix(chunks[0], "0x"))
	if err != nil {
		return fmt.Errorf("cannot decode key hex: %s", err)
	}
	weight, err := strconv.ParseUint(chunks[1], 10, 8)
	if err != nil {
		return fmt.Errorf("cannot parse weight: %s", err)
	}
	l.keys = append(l.keys, crypto.PublicKey(key))
	l.weights = append(l.weights, multisig.Weight(weight))
	return nil
}

// flAddress registers an address flag, hex encoded with an optional 0x
// prefix.
func flAddress(fl *flag.FlagSet, name, usage string) *addressFlag {
	var a addressFlag
	fl.Var(&a, name, usage)
	return &a
}

type addressFlag struct {
	addr multikey.Address
}

var _ flag.Value = (*addressFlag)(nil)

func (a *addressFlag) String() string {
	return a.addr.String()
}

func (a *addressFlag) Set(raw string) error {
	addr, err := multikey.ParseAddress(raw)
	if err != nil {
		return fmt.Errorf("cannot parse address: %s", err)
	}
	a.addr = addr
	return nil
}
