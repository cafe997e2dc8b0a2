// Package behavior binds a model.Behavior opcode (SPEC_FULL.md §9.2) into
// a runnable closure once the Net Builder has allocated SignalValues. The
// opcode dispatch mirrors core/emu.go's switch on instruction mnemonic in
// the teacher repository: a small, explicit set of named operations, no
// reflection or dynamic dispatch.
package behavior

import (
	"fmt"

	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/signal"
)

// Bind returns a closure implementing b, reading/writing through values
// (keyed by signal id) using reads/writes in declaration order. The
// closure's error return is a runtime hardware-described failure (a
// mis-widthed write), never a programmer-misuse panic.
func Bind(
	b *model.Behavior,
	reads, writes []model.SignalID,
	values map[model.SignalID]*signal.Value,
) func() error {
	switch b.Op {
	case "passthrough":
		src := values[reads[0]]
		dst := writes[0]
		return func() error {
			return writeOut(dst, values, src.Read())
		}

	case "const":
		dst := writes[0]
		width := values[dst].Width()
		v := bitvec.FromUint64(width, b.Const)
		return func() error {
			return writeOut(dst, values, v)
		}

	case "invert":
		src := values[reads[0]]
		dst := writes[0]
		width := values[dst].Width()
		return func() error {
			return writeOut(dst, values, bitvec.FromUint64(width, ^src.Read().Uint64()))
		}

	case "mux_reset":
		// reads[0] = reset, reads[1] = data-in.
		reset := values[reads[0]]
		data := values[reads[1]]
		dst := writes[0]
		width := values[dst].Width()
		return func() error {
			if reset.Read().Uint64() != 0 {
				return writeOut(dst, values, bitvec.FromUint64(width, 0))
			}
			return writeOut(dst, values, data.Read())
		}

	default:
		panic(fmt.Sprintf("behavior: unknown op %q", b.Op))
	}
}

// writeOut performs either a combinational Write or a sequential
// WriteNext into dst, selected by whether dst's SignalValue has a shadow
// cell allocated. This lets one Bind implementation serve both
// CombBlockSpec and SeqBlockSpec behaviors: the Sequential Registrar
// (SPEC_FULL.md §4.E) allocates the shadow before any block runs, so by
// simulation time the two cases are distinguishable without a separate
// flag.
func writeOut(dst model.SignalID, values map[model.SignalID]*signal.Value, v bitvec.Vec) error {
	target := values[dst]
	if target.HasShadow() {
		return target.WriteNext(v)
	}
	return target.Write(v)
}
