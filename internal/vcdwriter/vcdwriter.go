// Package vcdwriter implements hooks.VCDWriter as a textual VCD (Value
// Change Dump) stream. No library in the example corpus writes this
// format, so it is built on bufio/fmt (SPEC_FULL.md DESIGN.md records
// this as a standard-library fallback).
package vcdwriter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/hooks"
	"github.com/sarchlab/rtlsim/internal/model"
)

var _ hooks.VCDWriter = (*Writer)(nil)

// identifierFirst..identifierLast span VCD's single-character identifier
// codes: printable ASCII from '!' to '~'.
const identifierFirst = 33
const identifierLast = 126

// Writer buffers WriteValueChange calls into w as a single-scope VCD
// stream. Signal identifiers and $var declarations are emitted lazily,
// the first time each SignalID is seen.
type Writer struct {
	out       *bufio.Writer
	ids       map[model.SignalID]string
	declared  bool
	lastCycle uint64
	sawCycle  bool
}

// New wraps w. Callers are responsible for closing the underlying file;
// Flush must be called before the process exits.
func New(w io.Writer) *Writer {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "$timescale 1ns $end")
	fmt.Fprintln(out, "$scope module top $end")

	return &Writer{out: out, ids: make(map[model.SignalID]string)}
}

// WriteValueChange implements hooks.VCDWriter.
func (w *Writer) WriteValueChange(cycle uint64, sig model.SignalID, value bitvec.Vec) {
	id, ok := w.ids[sig]
	if !ok {
		id = w.identifierFor(sig)
		fmt.Fprintf(w.out, "$var wire %d %s sig%d $end\n", value.Width(), id, sig)
	}

	if !w.declared {
		fmt.Fprintln(w.out, "$enddefinitions $end")
		w.declared = true
	}

	if !w.sawCycle || cycle != w.lastCycle {
		fmt.Fprintf(w.out, "#%d\n", cycle)
		w.lastCycle = cycle
		w.sawCycle = true
	}

	fmt.Fprintf(w.out, "b%s %s\n", binaryString(value), id)
}

func (w *Writer) identifierFor(sig model.SignalID) string {
	id := identifierAt(len(w.ids))
	w.ids[sig] = id
	return id
}

// identifierAt returns the n-th single-character VCD identifier, cycling
// through the printable-ASCII alphabet VCD uses for compact ids.
func identifierAt(n int) string {
	span := identifierLast - identifierFirst + 1
	return string(rune(identifierFirst + n%span))
}

func binaryString(v bitvec.Vec) string {
	buf := make([]byte, v.Width())
	for i := 0; i < v.Width(); i++ {
		if v.Bit(v.Width()-1-i) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Flush forces any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}
