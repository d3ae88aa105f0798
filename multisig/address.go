package multisig

import (
	"github.com/iov-one/multikey"
	"github.com/iov-one/multikey/errors"
)

// Address derives the account address of this specification. This is the
// quiet variant: identical input, including key order, always yields an
// identical address and nothing else happens.
func (s Spec) Address() (multikey.Address, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return multikey.NewAddress(s.Encode()), nil
}

// Announce derives the account address exactly like Address and
// additionally delivers one AddressEvent to the emitter registered on the
// context. The returned address is always equal to what the quiet variant
// returns for the same specification.
func Announce(ctx multikey.Context, s Spec) (multikey.Address, error) {
	addr, err := s.Address()
	if err != nil {
		return nil, err
	}
	if emitter, ok := getEmitter(ctx); ok {
		emitter.Emit(newAddressEvent(s, addr))
	}
	return addr, nil
}

// MatchesAddress derives the address of this specification and compares
// it with the expected one. There is no validation beyond what Address
// performs.
func (s Spec) MatchesAddress(expected multikey.Address) (bool, error) {
	addr, err := s.Address()
	if err != nil {
		return false, err
	}
	return addr.Equals(expected), nil
}

// SenderIsMultisig reports whether the sender of the current call, as set
// on the context by the host, is the account this specification derives
// to.
func SenderIsMultisig(ctx multikey.Context, s Spec) (bool, error) {
	sender, ok := multikey.GetSender(ctx)
	if !ok {
		return false, errors.Wrap(errors.ErrInput, "no sender in context")
	}
	return s.MatchesAddress(sender)
}
