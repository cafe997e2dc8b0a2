// Command rtlsim drives a fixture-described model through Reset and a
// fixed number of cycles, optionally tracing value changes to a VCD
// file and/or a sqlite tracedb, per SPEC_FULL.md §4.H. It is a
// demonstration front-end, not a general HDL driver or test runner.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/rtlsim/core"
	"github.com/sarchlab/rtlsim/internal/fixtures"
	"github.com/sarchlab/rtlsim/internal/hooks"
	"github.com/sarchlab/rtlsim/internal/runconfig"
	"github.com/sarchlab/rtlsim/internal/tracedb"
	"github.com/sarchlab/rtlsim/internal/vcdwriter"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to a fixture YAML file (required)")
	configPath := flag.String("config", "", "path to a run-config YAML file (cycles, loop bound, trace, vcd/tracedb paths)")
	cycles := flag.Int("cycles", 10, "number of cycles to run after reset")
	loopBoundMultiplier := flag.Int("loop-bound-multiplier", 0, "override the combinational loop bound's per-block multiplier (0 keeps the core's default)")
	trace := flag.Bool("trace", false, "log settle/flop activity at LevelSettle")
	dumpNets := flag.Bool("dump-nets", false, "print a table of every net's final value")
	vcdPath := flag.String("vcd", "", "write value-change events to this VCD file")
	tracedbPath := flag.String("tracedb", "", "persist per-cycle net snapshots to this sqlite file")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "rtlsim: -fixture is required")
		os.Exit(2)
	}

	if *configPath != "" {
		rc, err := runconfig.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		applyRunConfig(rc, cycles, loopBoundMultiplier, trace, vcdPath, tracedbPath)
	}

	var counting *hooks.Counting
	if *trace {
		slog.SetLogLoggerLevel(core.LevelSettle)
		counting = &hooks.Counting{}
	}

	m, err := fixtures.Load(*fixturePath)
	if err != nil {
		fatal(err)
	}

	builder := core.NewBuilder().WithModel(m)
	if *loopBoundMultiplier > 0 {
		builder = builder.WithLoopBoundMultiplier(*loopBoundMultiplier)
	}
	if counting != nil {
		builder = builder.WithMetrics(counting)
	}

	if *vcdPath != "" {
		f, err := os.Create(*vcdPath)
		if err != nil {
			fatal(err)
		}
		vw := vcdwriter.New(f)
		builder = builder.WithVCD(vw)
		atexit.Register(func() {
			_ = vw.Flush()
			_ = f.Close()
		})
	}

	tool, err := builder.Build()
	if err != nil {
		fatal(err)
	}

	var tdb *tracedb.Collector
	if *tracedbPath != "" {
		tdb, err = tracedb.Open(*tracedbPath)
		if err != nil {
			fatal(err)
		}
		for _, s := range m.Signals() {
			if !s.IsWhole() {
				continue
			}
			id := s.ID
			tdb.Track(id, s.Name, s.NBits, func() uint64 { return tool.Uint64(id) })
		}
		tdb.RegStats()
		atexit.Register(func() {
			_ = tdb.Close()
		})
	}

	if err := tool.Reset(); err != nil {
		fatal(err)
	}
	if tdb != nil {
		tdb.TickStats(tool.NCycles())
	}

	for i := 0; i < *cycles; i++ {
		if err := tool.Cycle(); err != nil {
			fatal(err)
		}
		if tdb != nil {
			tdb.TickStats(tool.NCycles())
		}
	}

	if *dumpNets {
		fmt.Println(tool.DumpNets())
	}

	if counting != nil {
		fmt.Fprintf(os.Stderr, "rtlsim: %d cycles, %d combinational evals\n", tool.NCycles(), counting.CombEvals)
	}

	atexit.Exit(0)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "rtlsim: %v\n", err)
	atexit.Exit(1)
}

// applyRunConfig seeds cycles/loopBoundMultiplier/trace/vcdPath/tracedbPath
// from rc wherever the corresponding flag was left at its default — a flag
// given explicitly on the command line always wins over the config file.
func applyRunConfig(rc runconfig.RunConfig, cycles, loopBoundMultiplier *int, trace *bool, vcdPath, tracedbPath *string) {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["cycles"] && rc.Cycles > 0 {
		*cycles = rc.Cycles
	}
	if !set["loop-bound-multiplier"] && rc.LoopBoundMultiplier > 0 {
		*loopBoundMultiplier = rc.LoopBoundMultiplier
	}
	if !set["trace"] && rc.Trace == runconfig.TraceSettle {
		*trace = true
	}
	if !set["vcd"] && rc.VCDPath != "" {
		*vcdPath = rc.VCDPath
	}
	if !set["tracedb"] && rc.TraceDBPath != "" {
		*tracedbPath = rc.TraceDBPath
	}
}
