package core

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/rtlsim/internal/model"
)

// Custom slog levels below slog.LevelDebug, the way the teacher
// repository carves out LevelTrace/LevelWaveform for high-volume
// per-cycle logging that should stay off by default: the default logger
// (level Info) drops them until the level is lowered to LevelSettle.
const (
	LevelSettle slog.Level = slog.LevelDebug - 2
	LevelFlop   slog.Level = slog.LevelDebug - 1
)

// Trace logs msg at LevelSettle, the simulator's equivalent of the
// teacher's own per-cycle Trace helper.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelSettle, msg, args...)
}

// DumpNets renders every net currently known to t as a table, one row
// per SignalValue, named by its canonical net name and current value in
// hex. Intended for the CLI's -dump-nets flag and for debugging failing
// tests; never called from the Cycle Engine itself.
func (t *SimulationTool) DumpNets() string {
	seen := make(map[string]bool)
	type row struct {
		name  string
		width int
		value string
	}
	var rows []row

	for _, v := range t.values {
		if seen[v.Name()] {
			continue
		}
		seen[v.Name()] = true
		rows = append(rows, row{name: v.Name(), width: v.Width(), value: v.Read().String()})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	tw := table.NewWriter()
	tw.SetTitle(fmt.Sprintf("%s nets", t.model.Name))
	tw.AppendHeader(table.Row{"Net", "Width", "Value"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.name, r.width, r.value})
	}

	return tw.Render()
}

// SignalByName resolves name to a SignalID against t's model, the
// lookup the CLI and tests use instead of threading SignalIDs by hand.
func (t *SimulationTool) SignalByName(name string) (model.SignalID, bool) {
	for _, s := range t.model.Signals() {
		if s.Name == name {
			return s.ID, true
		}
	}
	return 0, false
}
