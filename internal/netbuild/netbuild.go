// Package netbuild implements the Net Builder (SPEC_FULL.md §4.B):
// collapsing the elaborated model's structural connections into disjoint
// nets via union-find, then binding one shared SignalValue to every whole
// signal in each net. Slice connections are recorded, never unioned.
package netbuild

import (
	"sort"

	"github.com/rs/xid"
	"github.com/sarchlab/rtlsim/internal/eventqueue"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/rtlerr"
	"github.com/sarchlab/rtlsim/internal/signal"
	"github.com/sarchlab/rtlsim/internal/unionfind"
)

// Result is the output of Build: one SignalValue per net, indexed by
// every whole signal id that is a member of it, plus the full list of
// slice connections (model-declared plus any discovered while walking
// Connections, see Build).
type Result struct {
	Values     map[model.SignalID]*signal.Value
	SliceConns []model.SliceConnection
}

// Build runs the two-pass union-find algorithm of SPEC_FULL.md §4.B over
// m's signals and connections, allocating SignalValues on queue.
func Build(m model.ElaboratedModel, queue *eventqueue.Queue) (*Result, error) {
	signals := m.Signals()
	byID := make(map[model.SignalID]model.Signal, len(signals))
	for _, s := range signals {
		byID[s.ID] = s
	}

	var wholeIDs []model.SignalID
	indexOf := make(map[model.SignalID]int)
	for _, s := range signals {
		if s.IsWhole() {
			indexOf[s.ID] = len(wholeIDs)
			wholeIDs = append(wholeIDs, s.ID)
		}
	}

	dsu := unionfind.New(len(wholeIDs))
	sliceConns := append([]model.SliceConnection{}, m.SliceConnections()...)

	for _, c := range m.Connections() {
		sa, sb := byID[c.A], byID[c.B]
		if !sa.IsWhole() || !sb.IsWhole() {
			// Partial-width alias expressed as a whole-signal connection
			// pair: record it as a slice connection and skip union, per
			// SPEC_FULL.md §4.B pass 1.
			sliceConns = append(sliceConns, asSliceConnection(sa, sb))
			continue
		}
		dsu.Union(indexOf[c.A], indexOf[c.B])
	}

	values, err := bindNets(dsu, wholeIDs, byID, queue)
	if err != nil {
		return nil, err
	}

	return &Result{Values: values, SliceConns: sliceConns}, nil
}

func asSliceConnection(a, b model.Signal) model.SliceConnection {
	dest, src := a, b
	if dest.Slice == nil {
		dest, src = b, a
	}

	sc := model.SliceConnection{Dest: dest.ID, Src: src.ID}
	if dest.Slice != nil {
		sc.DestRange = [2]int{dest.Slice.Lo, dest.Slice.Hi}
	} else {
		sc.DestRange = [2]int{0, dest.NBits}
	}
	if src.Slice != nil {
		sc.SrcRange = [2]int{src.Slice.Lo, src.Slice.Hi}
	} else {
		sc.SrcRange = [2]int{0, src.NBits}
	}

	return sc
}

func bindNets(
	dsu *unionfind.DSU,
	wholeIDs []model.SignalID,
	byID map[model.SignalID]model.Signal,
	queue *eventqueue.Queue,
) (map[model.SignalID]*signal.Value, error) {
	values := make(map[model.SignalID]*signal.Value, len(wholeIDs))

	for _, members := range dsu.Groups() {
		if len(members) == 0 {
			panic("netbuild: empty net produced by union-find")
		}

		width := byID[wholeIDs[members[0]]].NBits
		names := make([]string, 0, len(members))
		memberIDs := make([]model.SignalID, 0, len(members))

		for _, idx := range members {
			sig := byID[wholeIDs[idx]]
			memberIDs = append(memberIDs, sig.ID)
			if sig.NBits != width {
				first := byID[wholeIDs[members[0]]]
				return nil, &rtlerr.NetWidthMismatchError{
					NetName: canonicalName(names),
					A:       first.Name, WidthA: first.NBits,
					B: sig.Name, WidthB: sig.NBits,
				}
			}
			if sig.Name != "" {
				names = append(names, sig.Name)
			}
		}

		val := signal.New(canonicalName(names), width, queue)
		for _, id := range memberIDs {
			values[id] = val
		}
	}

	return values, nil
}

// canonicalName picks the lexicographically smallest hierarchical name
// among a net's members (SPEC_FULL.md §4.B tie-breaking rule), falling
// back to a synthetic xid-derived name, fresh on every call, for a net
// whose member signals all have empty names (SPEC_FULL.md §2.2/§4.B).
func canonicalName(names []string) string {
	if len(names) == 0 {
		return "net.$" + xid.New().String()
	}

	sort.Strings(names)
	return names[0]
}
