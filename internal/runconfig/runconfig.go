// Package runconfig loads the simulator's own run configuration — the
// combinational-loop iteration bound, trace level, and VCD/tracedb output
// paths — from a YAML file distinct from the model/fixture YAML that
// internal/fixtures loads (that one describes what to simulate; this one
// describes how to drive it). The schema mirrors core/program.go's
// YAMLRoot/ArrayConfig nesting in the teacher repository: one top-level
// key wrapping a plain yaml-tagged struct, no custom unmarshalers.
package runconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TraceLevel selects how verbose settle/flop logging is. "" and "off" are
// equivalent to no trace logging at all.
type TraceLevel string

const (
	TraceOff    TraceLevel = "off"
	TraceSettle TraceLevel = "settle"
)

// YAMLRoot is the root structure of a run-config YAML file.
type YAMLRoot struct {
	RunConfig RunConfig `yaml:"run_config"`
}

// RunConfig holds every setting the CLI front-end (cmd/rtlsim) can also
// take as a flag; a flag explicitly passed on the command line always
// overrides the value loaded here.
type RunConfig struct {
	Cycles              int        `yaml:"cycles"`
	LoopBoundMultiplier int        `yaml:"loop_bound_multiplier"`
	Trace               TraceLevel `yaml:"trace"`
	VCDPath             string     `yaml:"vcd_path"`
	TraceDBPath         string     `yaml:"tracedb_path"`
}

// Load reads and parses the run-config YAML file at path.
func Load(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("runconfig: read %s: %w", path, err)
	}

	var root YAMLRoot
	if err := yaml.Unmarshal(data, &root); err != nil {
		return RunConfig{}, fmt.Errorf("runconfig: parse %s: %w", path, err)
	}

	return root.RunConfig, nil
}
