package multisig

import (
	"context"

	"github.com/iov-one/multikey"
)

type contextKey int // local to the multisig package

const (
	contextKeyEmitter contextKey = iota
)

// WithEmitter registers the event sink that Announce delivers audit
// events to.
func WithEmitter(ctx multikey.Context, emitter Emitter) multikey.Context {
	return context.WithValue(ctx, contextKeyEmitter, emitter)
}

func getEmitter(ctx multikey.Context) (Emitter, bool) {
	// (val, ok) form to return nil instead of panic if unset
	val, _ := ctx.Value(contextKeyEmitter).(Emitter)
	if val == nil {
		return nil, false
	}
	return val, true
}
