// Package signal implements SignalValue (SPEC_FULL.md §4.A): the mutable
// value cell shared by every whole signal in a net, and the sole
// mechanism by which value changes fan out to registered combinational
// callbacks.
package signal

import (
	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/rtlerr"
)

// RegisterSink receives at-most-once-per-cycle notifications that a
// sequential destination was touched via WriteNext. The Cycle Engine
// implements this with its per-cycle register queue; SignalValue itself
// never owns that queue (SPEC_FULL.md §5: "The EventQueue and register
// queue are owned exclusively by the Cycle Engine").
type RegisterSink interface {
	Touch(v *Value)
}

// ChangeSink receives a notification every time Write actually changes a
// SignalValue's committed bits — whether the write happened during
// settle (a combinational or slice-bridge callback) or during flop (a
// register commit, since Flop writes through Write too). This is how
// VCD/waveform tracing (SPEC_FULL.md §6) sees both kinds of value
// change through one mechanism instead of two.
type ChangeSink interface {
	NoteChange(v *Value)
}

type callbackEntry struct {
	id rtlerr.BlockID
	cb eventqueue.Callback
}

// Value is the SignalValue of SPEC_FULL.md §4.A.
type Value struct {
	name   string
	bits   bitvec.Vec
	shadow *bitvec.Vec

	callbacks []callbackEntry

	queue       *eventqueue.Queue
	regSink     RegisterSink
	changeSink  ChangeSink
	touchedThis bool
}

// New allocates a SignalValue of the given width, owned by queue (the
// Cycle Engine's EventQueue). name is used only for error messages.
func New(name string, nbits int, queue *eventqueue.Queue) *Value {
	return &Value{
		name:  name,
		bits:  bitvec.New(nbits),
		queue: queue,
	}
}

// Name returns the net's canonical name, used in diagnostics.
func (v *Value) Name() string { return v.name }

// Width returns the net's declared width.
func (v *Value) Width() int { return v.bits.Width() }

// Read returns the current value. No side effects.
func (v *Value) Read() bitvec.Vec {
	return v.bits
}

// Write sets the current value. If it differs from the previous value in
// any bit, every registered callback is enqueued (deduplicated) on the
// owning EventQueue, and changeSink (if set) is notified, before Write
// returns. Equal writes fire neither.
func (v *Value) Write(bits bitvec.Vec) error {
	if bits.Width() != v.bits.Width() {
		return &rtlerr.WidthError{Signal: v.name, Want: v.bits.Width(), Got: bits.Width()}
	}

	if v.bits.Equal(bits) {
		return nil
	}

	v.bits = bits
	v.enqueueCallbacks()

	if v.changeSink != nil {
		v.changeSink.NoteChange(v)
	}

	return nil
}

// SetChangeSink wires s to receive a NoteChange call on every value
// change. Called once per net by the Cycle Engine's Builder after
// construction; nil (the default) disables tracing entirely.
func (v *Value) SetChangeSink(s ChangeSink) {
	v.changeSink = s
}

func (v *Value) enqueueCallbacks() {
	for _, c := range v.callbacks {
		v.queue.Enq(c.id, c.cb)
	}
}

// AllocateShadow allocates the secondary cell WriteNext writes into,
// wiring regSink as the per-cycle register-queue notification target.
// Called once by the Sequential Registrar (SPEC_FULL.md §4.E) for every
// signal that appears as an edge-triggered assignment destination.
func (v *Value) AllocateShadow(regSink RegisterSink) {
	if v.shadow == nil {
		shadow := bitvec.New(v.bits.Width())
		v.shadow = &shadow
	}
	v.regSink = regSink
}

// HasShadow reports whether this signal is a sequential destination.
func (v *Value) HasShadow() bool {
	return v.shadow != nil
}

// WriteNext writes into the shadow cell, not the live cell, and records
// this SignalValue on the cycle engine's register queue at most once per
// cycle. Fails with NotASequentialDestinationError if no shadow has been
// allocated.
func (v *Value) WriteNext(bits bitvec.Vec) error {
	if v.shadow == nil {
		return &rtlerr.NotASequentialDestinationError{Signal: v.name}
	}
	if bits.Width() != v.shadow.Width() {
		return &rtlerr.WidthError{Signal: v.name, Want: v.shadow.Width(), Got: bits.Width()}
	}

	v.shadow.CopyFrom(bits)

	if !v.touchedThis {
		v.touchedThis = true
		v.regSink.Touch(v)
	}

	return nil
}

// Flop copies the shadow cell into the live cell, applying normal Write
// semantics (i.e. enqueuing callbacks on change). Called by the Cycle
// Engine while draining the register queue (SPEC_FULL.md §4.G step 4).
func (v *Value) Flop() {
	_ = v.Write(v.shadow.Clone())
	v.touchedThis = false
}

// RegisterCallback appends block (id, cb) to this SignalValue's callback
// list. Called by the Combinational Registrar and the Slice Bridge.
func (v *Value) RegisterCallback(id rtlerr.BlockID, cb eventqueue.Callback) {
	v.callbacks = append(v.callbacks, callbackEntry{id: id, cb: cb})
}
