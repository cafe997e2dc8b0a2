// Package hooks defines the optional collaborator interfaces of
// SPEC_FULL.md §6: VCD writer, stats collector, and metrics counter. Each
// is handed to core.Builder explicitly (WithVCD/WithStats/WithMetrics) or
// discovered on a collaborator object by a type assertion in
// Builder.WithCollaborator, not by reflection — the Go-native
// replacement for the source's attribute-probing pattern (SPEC_FULL.md §9,
// "Optional collaborator discovery by attribute probing").
//
// HookPos/HookCtx follow the vocabulary github.com/sarchlab/akita/v4/sim
// uses for its own Hookable components (see core/port.go's
// HookPosPortMsgSend in the teacher repository): a named position plus a
// small context struct carrying the domain object and the item of
// interest. The Cycle Engine embeds sim.HookableBase so any caller can
// still attach a generic akita Hook, in addition to the three typed
// collaborators below.
package hooks

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/model"
)

// HookPosFlop marks the moment a shadow cell commits into its
// SignalValue.
var HookPosFlop = &sim.HookPos{Name: "Flop"}

// HookPosSettle marks the end of a completed cycle, after the post-tick
// settle has drained.
var HookPosSettle = &sim.HookPos{Name: "Settle"}

// VCDWriter is invoked after each flop and after each settle with the
// signal that changed and its new value, mirroring the source's
// "(cycle, signal, new_value)" VCD event.
type VCDWriter interface {
	WriteValueChange(cycle uint64, sig model.SignalID, value bitvec.Vec)
}

// StatsCollector is invoked once at Cycle Engine construction (RegStats)
// and once per tick (TickStats), mirroring the source's reg_stats()/
// tick_stats() capability probe.
type StatsCollector interface {
	RegStats()
	TickStats(cycle uint64)
}

// MetricsCounter receives the five counting hooks SPEC_FULL.md §6
// enumerates. A no-op implementation (Noop) is the default.
type MetricsCounter interface {
	IncrCombEvals()
	IncrAddEvents()
	IncrAddCallback()
	StartTick()
	IncrMetricsCycle()
}

// Noop is the default MetricsCounter: every hook is a no-op, matching
// SPEC_FULL.md §6's "a no-op by default; when enabled, receives ...
// hooks".
type Noop struct{}

func (Noop) IncrCombEvals()    {}
func (Noop) IncrAddEvents()    {}
func (Noop) IncrAddCallback()  {}
func (Noop) StartTick()        {}
func (Noop) IncrMetricsCycle() {}

var _ MetricsCounter = Noop{}

// Counting is a MetricsCounter that tallies every hook invocation, used by
// the CLI's -trace flag.
type Counting struct {
	CombEvals    int
	AddEvents    int
	AddCallbacks int
	Ticks        int
	MetricsCycle int
}

func (c *Counting) IncrCombEvals()    { c.CombEvals++ }
func (c *Counting) IncrAddEvents()    { c.AddEvents++ }
func (c *Counting) IncrAddCallback()  { c.AddCallbacks++ }
func (c *Counting) StartTick()        { c.Ticks++ }
func (c *Counting) IncrMetricsCycle() { c.MetricsCycle++ }

var _ MetricsCounter = (*Counting)(nil)
