package runconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sarchlab/rtlsim/internal/runconfig"
)

func TestLoadParsesRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")

	yaml := `
run_config:
  cycles: 50
  loop_bound_multiplier: 500
  trace: settle
  vcd_path: /tmp/out.vcd
  tracedb_path: /tmp/out.sqlite
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	rc, err := runconfig.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if rc.Cycles != 50 {
		t.Errorf("want Cycles 50, got %d", rc.Cycles)
	}
	if rc.LoopBoundMultiplier != 500 {
		t.Errorf("want LoopBoundMultiplier 500, got %d", rc.LoopBoundMultiplier)
	}
	if rc.Trace != runconfig.TraceSettle {
		t.Errorf("want Trace %q, got %q", runconfig.TraceSettle, rc.Trace)
	}
	if rc.VCDPath != "/tmp/out.vcd" {
		t.Errorf("want VCDPath /tmp/out.vcd, got %q", rc.VCDPath)
	}
	if rc.TraceDBPath != "/tmp/out.sqlite" {
		t.Errorf("want TraceDBPath /tmp/out.sqlite, got %q", rc.TraceDBPath)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := runconfig.Load("/nonexistent/run.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
