package core

import (
	"github.com/sarchlab/rtlsim/internal/behavior"
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/signal"
)

// registerCombinational implements the Combinational Registrar
// (SPEC_FULL.md §4.D): every block gets a fresh queue id, subscribes to
// every signal in its read set, and is enqueued once at registration
// time so the very first EvalCombinational settles the network from its
// initial zero state.
func registerCombinational(
	m model.ElaboratedModel,
	values map[model.SignalID]*signal.Value,
	queue *eventqueue.Queue,
	t *SimulationTool,
) {
	for _, spec := range m.AllCombBlocks() {
		run := spec.Run
		if run == nil {
			run = behavior.Bind(spec.Behavior, spec.ReadSet, spec.WriteSet, values)
		}

		id := queue.NextID()
		for _, rid := range spec.ReadSet {
			values[rid].RegisterCallback(id, run)
			if t.metrics != nil {
				t.metrics.IncrAddCallback()
			}
		}

		queue.Enq(id, run)
		if t.metrics != nil {
			t.metrics.IncrAddEvents()
		}
	}
}

// registerSequential implements the Sequential Registrar (SPEC_FULL.md
// §4.E): allocate a shadow cell on every edge-triggered destination
// before any block runs, wiring t as the RegisterSink, then bind each
// block's closure in declaration order.
func registerSequential(
	m model.ElaboratedModel,
	values map[model.SignalID]*signal.Value,
	t *SimulationTool,
) {
	for _, spec := range m.AllSeqBlocks() {
		for _, dst := range spec.Destinations {
			values[dst].AllocateShadow(t)
		}
	}

	for _, spec := range m.AllSeqBlocks() {
		run := spec.Run
		if run == nil {
			run = behavior.Bind(spec.Behavior, spec.ReadSet, spec.Destinations, values)
		}
		t.seqOrder = append(t.seqOrder, run)
	}
}
