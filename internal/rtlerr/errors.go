// Package rtlerr defines the fatal error kinds the simulator core can
// return. Errors are plain structs, not sentinels: callers match on type
// with errors.As, the way akita's *SendError is returned (not panicked)
// for conditions the caller is expected to handle.
package rtlerr

import "fmt"

// Phase identifies which part of the two-phase cycle protocol an error was
// raised in.
type Phase string

// The four phases a cycle() invocation passes through, in order.
const (
	PhasePreSettle  Phase = "pre-settle"
	PhaseTick       Phase = "tick"
	PhaseFlop       Phase = "flop"
	PhasePostSettle Phase = "post-settle"
)

// NotElaboratedError is returned when the Cycle Engine is constructed, or
// Cycle/Reset/EvalCombinational is called, against a model that has not
// completed elaboration.
type NotElaboratedError struct {
	Model string
}

func (e *NotElaboratedError) Error() string {
	return fmt.Sprintf("rtlsim: model %q is not elaborated", e.Model)
}

// NetWidthMismatchError is returned by the Net Builder when two whole
// signals unioned into the same net declare different widths.
type NetWidthMismatchError struct {
	NetName string
	A, B    string
	WidthA  int
	WidthB  int
}

func (e *NetWidthMismatchError) Error() string {
	return fmt.Sprintf(
		"rtlsim: net %q width mismatch: %s is %d bits, %s is %d bits",
		e.NetName, e.A, e.WidthA, e.B, e.WidthB,
	)
}

// WidthError is returned by SignalValue.Write when the supplied value's
// width does not match the net's declared width.
type WidthError struct {
	Signal string
	Want   int
	Got    int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("rtlsim: signal %q expects width %d, got %d", e.Signal, e.Want, e.Got)
}

// NotASequentialDestinationError is returned by SignalValue.WriteNext when
// no shadow cell has been allocated for the signal, i.e. the signal was
// never registered as an edge-triggered assignment destination.
type NotASequentialDestinationError struct {
	Signal string
}

func (e *NotASequentialDestinationError) Error() string {
	return fmt.Sprintf("rtlsim: signal %q has no shadow cell; it is not a sequential destination", e.Signal)
}

// BlockID identifies a registered CombBlock for diagnostics.
type BlockID int

// CombinationalLoopError is returned when eval_combinational fails to drain
// the event queue within the configured iteration bound.
type CombinationalLoopError struct {
	Cycle       uint64
	Phase       Phase
	Bound       int
	LastDrained []BlockID
}

func (e *CombinationalLoopError) Error() string {
	return fmt.Sprintf(
		"rtlsim: combinational loop detected at cycle %d (phase %s): exceeded %d drains; last drained blocks: %v",
		e.Cycle, e.Phase, e.Bound, e.LastDrained,
	)
}

// CycleError wraps a failure returned by a registered block's closure
// (such as a *WidthError) with the cycle number and phase it was raised
// in. NotElaboratedError and CombinationalLoopError are returned
// unwrapped.
type CycleError struct {
	Cycle  uint64
	Phase  Phase
	Signal string
	Block  BlockID
	Err    error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("rtlsim: cycle %d (%s): %v", e.Cycle, e.Phase, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}
