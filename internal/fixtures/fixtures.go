// Package fixtures loads tiny synthetic elaborated models from YAML, used
// by the engine's end-to-end seed tests (SPEC_FULL.md §8, S2 and S4) where
// enumerating every signal and connection as Go struct literals would be
// noisy. The schema mirrors core/program.go's YAMLRoot/ArrayConfig
// conventions in the teacher repository: plain yaml-tagged structs, no
// custom unmarshalers.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/rtlsim/internal/model"
)

type yamlSignal struct {
	Name      string `yaml:"name"`
	NBits     int    `yaml:"nbits"`
	Direction string `yaml:"direction"`
}

type yamlConnection struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type yamlSliceConnection struct {
	Dest   string `yaml:"dest"`
	DestLo int    `yaml:"dest_lo"`
	DestHi int    `yaml:"dest_hi"`
	Src    string `yaml:"src"`
	SrcLo  int    `yaml:"src_lo"`
	SrcHi  int    `yaml:"src_hi"`
}

type yamlBlock struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"` // "comb" or "seq"
	Op     string   `yaml:"op"`
	Const  uint64   `yaml:"const"`
	Reads  []string `yaml:"reads"`
	Writes []string `yaml:"writes"`
}

type yamlModel struct {
	Name        string                `yaml:"name"`
	Signals     []yamlSignal          `yaml:"signals"`
	Connections []yamlConnection      `yaml:"connections"`
	Slices      []yamlSliceConnection `yaml:"slice_connections"`
	Blocks      []yamlBlock           `yaml:"blocks"`
	Reset       string                `yaml:"reset"`
	Clock       string                `yaml:"clock"`
}

func direction(s string) model.Direction {
	switch s {
	case "input":
		return model.DirectionInput
	case "output":
		return model.DirectionOutput
	default:
		return model.DirectionWire
	}
}

// Load parses a fixture YAML file into a model.Model, with every
// combinational/sequential block carrying a model.Behavior rather than a
// bound Go closure — internal/behavior.Bind resolves those once the Net
// Builder has allocated SignalValues (see core.Builder.Build).
func Load(path string) (*model.Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", path, err)
	}

	var ym yamlModel
	if err := yaml.Unmarshal(raw, &ym); err != nil {
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}

	return fromYAML(ym)
}

func fromYAML(ym yamlModel) (*model.Model, error) {
	byName := make(map[string]model.SignalID, len(ym.Signals))
	signals := make([]model.Signal, 0, len(ym.Signals))

	for i, s := range ym.Signals {
		id := model.SignalID(i)
		byName[s.Name] = id
		signals = append(signals, model.Signal{
			ID:        id,
			Name:      s.Name,
			NBits:     s.NBits,
			Direction: direction(s.Direction),
		})
	}

	resolve := func(name string) (model.SignalID, error) {
		id, ok := byName[name]
		if !ok {
			return 0, fmt.Errorf("fixtures: unknown signal %q", name)
		}
		return id, nil
	}

	conns := make([]model.Connection, 0, len(ym.Connections))
	for _, c := range ym.Connections {
		a, err := resolve(c.A)
		if err != nil {
			return nil, err
		}
		b, err := resolve(c.B)
		if err != nil {
			return nil, err
		}
		conns = append(conns, model.Connection{A: a, B: b})
	}

	sliceConns := make([]model.SliceConnection, 0, len(ym.Slices))
	for _, sc := range ym.Slices {
		dest, err := resolve(sc.Dest)
		if err != nil {
			return nil, err
		}
		src, err := resolve(sc.Src)
		if err != nil {
			return nil, err
		}
		sliceConns = append(sliceConns, model.SliceConnection{
			Dest: dest, DestRange: [2]int{sc.DestLo, sc.DestHi},
			Src: src, SrcRange: [2]int{sc.SrcLo, sc.SrcHi},
		})
	}

	var combBlocks []model.CombBlockSpec
	var seqBlocks []model.SeqBlockSpec

	for _, b := range ym.Blocks {
		reads, err := resolveAll(resolve, b.Reads)
		if err != nil {
			return nil, err
		}
		writes, err := resolveAll(resolve, b.Writes)
		if err != nil {
			return nil, err
		}

		beh := &model.Behavior{Op: b.Op, Const: b.Const}

		switch b.Kind {
		case "seq":
			seqBlocks = append(seqBlocks, model.SeqBlockSpec{
				Name:         b.Name,
				Behavior:     beh,
				ReadSet:      reads,
				Destinations: writes,
			})
		default:
			combBlocks = append(combBlocks, model.CombBlockSpec{
				Name:     b.Name,
				Behavior: beh,
				ReadSet:  reads,
				WriteSet: writes,
			})
		}
	}

	m := &model.Model{
		Name:       ym.Name,
		Elaborated: true,
		SignalList: signals,
		Conns:      conns,
		SliceConns: sliceConns,
		CombBlocks: combBlocks,
		SeqBlocks:  seqBlocks,
	}

	if ym.Reset != "" {
		id, err := resolve(ym.Reset)
		if err != nil {
			return nil, err
		}
		m.ResetSignal = id
	}
	if ym.Clock != "" {
		id, err := resolve(ym.Clock)
		if err != nil {
			return nil, err
		}
		m.ClockSignal = id
	}

	return m, nil
}

func resolveAll(resolve func(string) (model.SignalID, error), names []string) ([]model.SignalID, error) {
	ids := make([]model.SignalID, 0, len(names))
	for _, n := range names {
		id, err := resolve(n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
