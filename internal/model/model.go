// Package model defines the Go-native shape of the elaborated model that
// the simulator core consumes, per SPEC_FULL.md §6.1. Model elaboration
// itself — tree traversal, name mangling, port instantiation — is out of
// scope (SPEC_FULL.md §1); this package only fixes the interface an
// elaborator must satisfy, and the small set of plain data types it hands
// over.
package model

// SignalID is the dense, pre-order-traversal-assigned index used by the
// simulator's internal SignalValue table. Net unification maps every
// whole signal's id to its net's one shared SignalValue (see
// internal/netbuild); the ids themselves are not rewritten.
type SignalID int

// Direction classifies a Signal the way synthesizable RTL does.
type Direction int

// The three directions a Signal may declare.
const (
	DirectionInput Direction = iota
	DirectionOutput
	DirectionWire
)

func (d Direction) String() string {
	switch d {
	case DirectionInput:
		return "input"
	case DirectionOutput:
		return "output"
	case DirectionWire:
		return "wire"
	default:
		return "unknown"
	}
}

// Signal is a named, fixed-width value location within a model. A Signal
// is either whole (Slice == nil) or a contiguous bit-range view of another
// signal (Slice != nil).
type Signal struct {
	ID        SignalID
	Name      string // hierarchical, e.g. "top.r0.out"
	NBits     int
	Direction Direction
	Parent    string // parent module's hierarchical name

	// Slice is non-nil when this Signal is a view, not a whole signal.
	// Lo/Hi are the half-open [lo, hi) bit range into Of.
	Slice *SliceView
}

// SliceView describes a partial-width view of another signal.
type SliceView struct {
	Of     SignalID
	Lo, Hi int
}

// IsWhole reports whether s represents an entire value rather than a
// bit-range view.
func (s Signal) IsWhole() bool {
	return s.Slice == nil
}

// Connection is a structural equality link between two whole signals,
// emitted during elaboration and consumed by the Net Builder.
type Connection struct {
	A, B SignalID
}

// SliceConnection is a partial-width alias link: (dest, dest_range) <->
// (src, src_range), where the two ranges have equal length.
type SliceConnection struct {
	Dest      SignalID
	DestRange [2]int // [lo, hi)
	Src       SignalID
	SrcRange  [2]int // [lo, hi)
}

// Behavior names a small built-in logic operation that internal/behavior
// can bind into a runnable closure once the Net Builder has allocated
// SignalValues. It exists so that fixture-driven models (internal/fixtures,
// loaded from YAML) can describe a block's logic as data — an opcode name,
// the way core/program.go's YAMLOperation.OpCode selects behavior in the
// teacher repository — instead of requiring a compiled Go closure. Models
// built directly in Go (as most unit tests do) skip this and set Run
// directly.
type Behavior struct {
	Op    string // "passthrough", "const", "mux_reset", "invert"
	Const uint64
}

// CombBlockSpec describes one combinational block as elaboration yields
// it: the callable plus the signals it reads and (declared) writes.
// WriteSet is advisory — SPEC_FULL.md §4.G permits a block to write
// outside it, with an optional warning. Exactly one of Run or Behavior
// should be set; internal/behavior.Bind fills Run from Behavior when Run
// is nil.
type CombBlockSpec struct {
	Name     string
	Run      func() error
	Behavior *Behavior
	ReadSet  []SignalID
	WriteSet []SignalID
}

// SeqBlockSpec describes one edge-triggered block: the callable plus the
// signals it writes "next" values to. Registration order within this
// slice is preserved; SPEC_FULL.md §3 only requires a stable order across
// modules, which pre-order flattening by the elaborator satisfies.
type SeqBlockSpec struct {
	Name         string
	Run          func() error
	Behavior     *Behavior
	ReadSet      []SignalID
	Destinations []SignalID
}

// ElaboratedModel is the interface the Net Builder (internal/netbuild)
// and the core registrars consume (SPEC_FULL.md §6.1). *Model is the only
// implementation in this tree. core.Builder and core.SimulationTool
// themselves still take and hold a concrete *Model.
type ElaboratedModel interface {
	IsElaborated() bool
	Signals() []Signal
	Connections() []Connection
	SliceConnections() []SliceConnection
	AllCombBlocks() []CombBlockSpec
	AllSeqBlocks() []SeqBlockSpec
	Reset() SignalID
	Clock() SignalID
}

// Model is the concrete ElaboratedModel an elaborator (out of scope here)
// or a test fixture (internal/fixtures) builds.
type Model struct {
	Name        string
	Elaborated  bool
	SignalList  []Signal
	Conns       []Connection
	SliceConns  []SliceConnection
	CombBlocks  []CombBlockSpec
	SeqBlocks   []SeqBlockSpec
	ResetSignal SignalID
	ClockSignal SignalID
}

// IsElaborated reports whether the model completed elaboration.
func (m *Model) IsElaborated() bool { return m.Elaborated }

// Signals returns every signal known to the model, whole and sliced.
func (m *Model) Signals() []Signal { return m.SignalList }

// Connections returns the whole-signal structural links.
func (m *Model) Connections() []Connection { return m.Conns }

// SliceConnections returns the partial-width alias links.
func (m *Model) SliceConnections() []SliceConnection { return m.SliceConns }

// AllCombBlocks returns every combinational block, already flattened
// across the module tree.
func (m *Model) AllCombBlocks() []CombBlockSpec { return m.CombBlocks }

// AllSeqBlocks returns every edge-triggered block, already flattened
// across the module tree in declaration order.
func (m *Model) AllSeqBlocks() []SeqBlockSpec { return m.SeqBlocks }

// Reset returns the id of the top-level width-1 reset signal.
func (m *Model) Reset() SignalID { return m.ResetSignal }

// Clock returns the id of the top-level width-1 clock signal.
func (m *Model) Clock() SignalID { return m.ClockSignal }

// SignalByID looks up a signal by id. Panics if id is out of range; this
// is a programmer error (elaboration produced an inconsistent model), not
// a runtime hardware condition.
func (m *Model) SignalByID(id SignalID) Signal {
	for _, s := range m.SignalList {
		if s.ID == id {
			return s
		}
	}
	panic("model: unknown signal id")
}

var _ ElaboratedModel = (*Model)(nil)
