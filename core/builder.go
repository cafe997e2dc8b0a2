package core

import (
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/hooks"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/netbuild"
	"github.com/sarchlab/rtlsim/internal/rtlerr"
	"github.com/sarchlab/rtlsim/internal/signal"
)

// defaultLoopBoundMultiplier is SPEC_FULL.md §4.G's default combinational
// loop bound: 10,000 drains per registered block before giving up.
const defaultLoopBoundMultiplier = 10000

// Builder assembles a SimulationTool from an elaborated model and an
// optional set of collaborators, following the fluent With* pattern the
// teacher repository uses for its own component builders.
type Builder struct {
	model               *model.Model
	metrics             hooks.MetricsCounter
	vcd                 hooks.VCDWriter
	stats               hooks.StatsCollector
	loopBoundMultiplier int
}

// NewBuilder returns a Builder with the default loop bound and a no-op
// MetricsCounter.
func NewBuilder() Builder {
	return Builder{
		metrics:             hooks.Noop{},
		loopBoundMultiplier: defaultLoopBoundMultiplier,
	}
}

// WithModel sets the elaborated model to simulate.
func (b Builder) WithModel(m *model.Model) Builder {
	b.model = m
	return b
}

// WithMetrics sets the MetricsCounter collaborator. Defaults to a no-op.
func (b Builder) WithMetrics(m hooks.MetricsCounter) Builder {
	b.metrics = m
	return b
}

// WithVCD sets the VCDWriter collaborator. Nil (the default) disables
// value-change tracing.
func (b Builder) WithVCD(w hooks.VCDWriter) Builder {
	b.vcd = w
	return b
}

// WithStats sets the StatsCollector collaborator. Nil (the default)
// disables stats collection.
func (b Builder) WithStats(s hooks.StatsCollector) Builder {
	b.stats = s
	return b
}

// WithCollaborator probes x for every optional collaborator role it
// satisfies and wires whichever match, the idiomatic Go replacement for
// attribute-probing a single object for several capabilities at once
// (SPEC_FULL.md §6.1): a VCDWriter that also happens to be a
// StatsCollector gets registered as both from one call. Roles already set
// by an explicit WithVCD/WithStats/WithMetrics call are left alone.
func (b Builder) WithCollaborator(x any) Builder {
	if b.vcd == nil {
		if v, ok := x.(hooks.VCDWriter); ok {
			b.vcd = v
		}
	}
	if b.stats == nil {
		if s, ok := x.(hooks.StatsCollector); ok {
			b.stats = s
		}
	}
	if _, isNoop := b.metrics.(hooks.Noop); isNoop {
		if m, ok := x.(hooks.MetricsCounter); ok {
			b.metrics = m
		}
	}
	return b
}

// WithLoopBoundMultiplier overrides the combinational loop bound's
// per-block multiplier (default 10,000).
func (b Builder) WithLoopBoundMultiplier(n int) Builder {
	if n < 1 {
		panic("core: loop bound multiplier must be at least 1")
	}
	b.loopBoundMultiplier = n
	return b
}

// Build runs the Net Builder over b.model, registers every combinational
// and sequential block plus every slice bridge, and returns a
// SimulationTool ready for Reset/Cycle. Build itself never executes one
// tick: the Combinational Registrar's startup enqueue only takes effect
// on the caller's first EvalCombinational/Cycle/Reset call.
func (b Builder) Build() (*SimulationTool, error) {
	if b.model == nil {
		panic("core: Builder.Build called with no model")
	}
	if !b.model.IsElaborated() {
		return nil, &rtlerr.NotElaboratedError{Model: b.model.Name}
	}

	queue := eventqueue.New()

	result, err := netbuild.Build(b.model, queue)
	if err != nil {
		return nil, err
	}

	idOf := make(map[*signal.Value]model.SignalID, len(result.Values))
	for id, v := range result.Values {
		if _, ok := idOf[v]; !ok {
			idOf[v] = id
		}
	}

	t := &SimulationTool{
		model:   b.model,
		values:  result.Values,
		idOf:    idOf,
		queue:   queue,
		metrics: b.metrics,
		vcd:     b.vcd,
		stats:   b.stats,
	}

	for v := range idOf {
		v.SetChangeSink(t)
	}

	registerSequential(b.model, result.Values, t)
	registerCombinational(b.model, result.Values, queue, t)
	registerSliceBridge(result.SliceConns, b.model, result.Values, queue, t)

	blockCount := len(b.model.AllCombBlocks()) + 2*len(result.SliceConns)
	if blockCount < 1 {
		blockCount = 1
	}
	t.loopBound = b.loopBoundMultiplier * blockCount

	if t.stats != nil {
		t.stats.RegStats()
	}

	return t, nil
}
