package multikey

import (
	"context"
)

// Context is an alias of the standard context, used to mark the request
// scoped data passed in by the host environment.
type Context = context.Context

type contextKey int // local to the multikey module

const (
	contextKeySender contextKey = iota
)

// WithSender stores the address of the principal invoking the current call.
// The host environment is expected to set it once, before handing the
// context over to the library.
func WithSender(ctx Context, sender Address) Context {
	return context.WithValue(ctx, contextKeySender, sender)
}

// GetSender returns the sender address previously set on this context.
func GetSender(ctx Context) (Address, bool) {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeySender).(Address)
	if val == nil {
		return nil, false
	}
	return val, true
}
