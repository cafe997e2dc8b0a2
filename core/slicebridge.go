package core

import (
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/signal"
)

// registerSliceBridge implements the Slice Bridge (SPEC_FULL.md §4.F):
// each partial-width alias becomes one or two synthetic combinational
// blocks that copy bits across the two whole-signal SignalValues on
// either side of the connection.
//
// The forward direction — src's slice drives dest's slice — is always
// registered. The backward direction is registered only when both ends
// declare model.DirectionWire: an output-declared destination (the
// common bit-blast fan-out shape, SPEC_FULL.md §8 S4) is read-only, so
// writing into it from the destination side would be a contradiction.
func registerSliceBridge(
	conns []model.SliceConnection,
	m *model.Model,
	values map[model.SignalID]*signal.Value,
	queue *eventqueue.Queue,
	t *SimulationTool,
) {
	for _, sc := range conns {
		srcV, dstV := values[sc.Src], values[sc.Dest]

		forward := func() error {
			cur := dstV.Read().Clone()
			piece := srcV.Read().Slice(sc.SrcRange[0], sc.SrcRange[1])
			cur.SetSlice(sc.DestRange[0], sc.DestRange[1], piece)
			return dstV.Write(cur)
		}

		fid := queue.NextID()
		srcV.RegisterCallback(fid, forward)
		queue.Enq(fid, forward)
		if t.metrics != nil {
			t.metrics.IncrAddCallback()
			t.metrics.IncrAddEvents()
		}

		if !bidirectional(m, sc) {
			continue
		}

		backward := func() error {
			cur := srcV.Read().Clone()
			piece := dstV.Read().Slice(sc.DestRange[0], sc.DestRange[1])
			cur.SetSlice(sc.SrcRange[0], sc.SrcRange[1], piece)
			return srcV.Write(cur)
		}

		bid := queue.NextID()
		dstV.RegisterCallback(bid, backward)
		queue.Enq(bid, backward)
		if t.metrics != nil {
			t.metrics.IncrAddCallback()
			t.metrics.IncrAddEvents()
		}
	}
}

func bidirectional(m *model.Model, sc model.SliceConnection) bool {
	src := m.SignalByID(sc.Src)
	dst := m.SignalByID(sc.Dest)
	return src.Direction == model.DirectionWire && dst.Direction == model.DirectionWire
}
