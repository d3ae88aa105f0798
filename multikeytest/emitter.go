package multikeytest

import (
	"github.com/iov-one/multikey/multisig"
)

// EventRecorder is a multisig.Emitter collecting every delivered event,
// in order.
type EventRecorder struct {
	Events []multisig.AddressEvent
}

var _ multisig.Emitter = (*EventRecorder)(nil)

func (r *EventRecorder) Emit(ev multisig.AddressEvent) {
	r.Events = append(r.Events, ev)
}
