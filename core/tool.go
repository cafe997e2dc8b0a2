// Package core implements the Cycle Engine (SPEC_FULL.md §4.G): the
// two-phase settle/tick/flop/settle driver that turns a built net list
// and a set of registered blocks into a runnable simulation.
package core

import (
	"context"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/hooks"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/rtlerr"
	"github.com/sarchlab/rtlsim/internal/signal"
)

// diagRingSize bounds the number of recently-drained block ids kept for
// CombinationalLoopError diagnostics.
const diagRingSize = 32

// SimulationTool drives one elaborated model, cycle by cycle. The name
// follows the source's own SimulationTool; everything it owns — the
// EventQueue, the register queue, the SignalValue table — is private to
// one instance, so multiple SimulationTools never share state.
type SimulationTool struct {
	sim.HookableBase

	model  *model.Model
	values map[model.SignalID]*signal.Value
	idOf   map[*signal.Value]model.SignalID
	queue  *eventqueue.Queue

	seqOrder      []func() error
	registerQueue []*signal.Value

	loopBound   int
	lastDrained []rtlerr.BlockID

	metrics hooks.MetricsCounter
	vcd     hooks.VCDWriter
	stats   hooks.StatsCollector

	nCycles     uint64
	currentTick uint64
}

// Touch implements signal.RegisterSink: it appends v to the per-cycle
// register queue. SignalValue itself guards against a signal being
// touched more than once per cycle (SPEC_FULL.md §4.A), so Touch never
// needs to check for duplicates.
func (t *SimulationTool) Touch(v *signal.Value) {
	t.registerQueue = append(t.registerQueue, v)
}

// NoteChange implements signal.ChangeSink: every value change, whether
// from a settle-phase write or a flop commit, is forwarded to the VCD
// writer (if any) tagged with the cycle currently being driven
// (SPEC_FULL.md §6, "invoked after each flop and each settle").
func (t *SimulationTool) NoteChange(v *signal.Value) {
	if t.vcd == nil {
		return
	}
	t.vcd.WriteValueChange(t.currentTick, t.idOf[v], v.Read())
}

// NCycles reports how many full Cycle() calls have completed.
func (t *SimulationTool) NCycles() uint64 { return t.nCycles }

// ReadSignal returns the current value bound to id.
func (t *SimulationTool) ReadSignal(id model.SignalID) bitvec.Vec {
	return t.values[id].Read()
}

// Uint64 narrows id's current value to a uint64, for collaborators (such
// as internal/tracedb) that snapshot nets without caring about width.
func (t *SimulationTool) Uint64(id model.SignalID) uint64 {
	v := t.values[id].Read()
	if v.Width() > 64 {
		return v.Slice(0, 64).Uint64()
	}
	return v.Uint64()
}

// WriteSignal drives id to bits from outside the model (a testbench
// poking a top-level input). It goes through SignalValue.Write, so a
// changed value fans out on the next settle, not immediately.
func (t *SimulationTool) WriteSignal(id model.SignalID, bits bitvec.Vec) error {
	return t.values[id].Write(bits)
}

// Reset drives the model's reset signal high for two full cycles, then
// releases it, per SPEC_FULL.md §4.G's reset protocol.
func (t *SimulationTool) Reset() error {
	if !t.model.IsElaborated() {
		return &rtlerr.NotElaboratedError{Model: t.model.Name}
	}

	one := bitvec.FromUint64(1, 1)
	if err := t.WriteSignal(t.model.Reset(), one); err != nil {
		return err
	}
	if err := t.Cycle(); err != nil {
		return err
	}
	if err := t.Cycle(); err != nil {
		return err
	}

	zero := bitvec.FromUint64(1, 0)
	return t.WriteSignal(t.model.Reset(), zero)
}

// Cycle runs one full settle/tick/flop/settle pass (SPEC_FULL.md §4.G). A
// write failure anywhere in the pass (a mis-widthed combinational write,
// a write to a signal with no shadow cell) is a runtime hardware-
// described failure, not programmer misuse: it aborts the cycle and
// comes back as a *rtlerr.CycleError, never a panic (SPEC_FULL.md §7,
// §7.1).
func (t *SimulationTool) Cycle() error {
	if !t.model.IsElaborated() {
		return &rtlerr.NotElaboratedError{Model: t.model.Name}
	}

	t.currentTick = t.nCycles + 1

	if err := t.EvalCombinational(rtlerr.PhasePreSettle); err != nil {
		return err
	}

	for _, run := range t.seqOrder {
		if err := run(); err != nil {
			return &rtlerr.CycleError{Cycle: t.nCycles, Phase: rtlerr.PhaseTick, Err: err}
		}
	}

	for len(t.registerQueue) > 0 {
		last := len(t.registerQueue) - 1
		v := t.registerQueue[last]
		t.registerQueue = t.registerQueue[:last]
		v.Flop()
	}

	if err := t.EvalCombinational(rtlerr.PhasePostSettle); err != nil {
		return err
	}

	t.nCycles++
	if t.stats != nil {
		t.stats.TickStats(t.nCycles)
	}
	if t.metrics != nil {
		t.metrics.StartTick()
		t.metrics.IncrMetricsCycle()
	}

	t.InvokeHook(sim.HookCtx{Domain: t, Pos: hooks.HookPosSettle, Item: t.nCycles})

	return nil
}

// EvalCombinational drains the EventQueue until it is empty, or returns a
// *rtlerr.CombinationalLoopError once more than loopBound callbacks have
// been drained in this call (SPEC_FULL.md §4.G). A callback's write
// failure aborts the drain and is wrapped in a *rtlerr.CycleError
// carrying the phase and the block that failed.
func (t *SimulationTool) EvalCombinational(phase rtlerr.Phase) error {
	if !t.model.IsElaborated() {
		return &rtlerr.NotElaboratedError{Model: t.model.Name}
	}

	iterations := 0

	for {
		cb, id, ok := t.queue.Deq()
		if !ok {
			break
		}

		iterations++
		if iterations > t.loopBound {
			return &rtlerr.CombinationalLoopError{
				Cycle:       t.nCycles,
				Phase:       phase,
				Bound:       t.loopBound,
				LastDrained: append([]rtlerr.BlockID{}, t.lastDrained...),
			}
		}

		t.recordDrained(id)
		if err := cb(); err != nil {
			return &rtlerr.CycleError{Cycle: t.nCycles, Phase: phase, Block: id, Err: err}
		}

		if t.metrics != nil {
			t.metrics.IncrCombEvals()
		}
	}

	slog.Log(context.Background(), LevelSettle, "settle complete", "phase", phase, "cycle", t.nCycles)

	return nil
}

func (t *SimulationTool) recordDrained(id rtlerr.BlockID) {
	t.lastDrained = append(t.lastDrained, id)
	if len(t.lastDrained) > diagRingSize {
		t.lastDrained = t.lastDrained[1:]
	}
}
