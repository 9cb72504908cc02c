// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/ipidbench/affinity"
	"github.com/momentics/ipidbench/internal/methods"
)

const fixtureTrace = "protocol,tcp_flags,ip_id,src_addr,src_port,dst_addr,dst_port\n" +
	"6,2,1000,192.168.1.1,1234,10.0.0.2,80\n" +
	"17,0,2000,192.168.1.1,1235,10.0.0.3,53\n" +
	"6,16,3000,192.168.1.1,1236,10.0.0.4,443\n"

func TestRunEndToEndSingleCPU(t *testing.T) {
	cpus, err := affinity.AvailableCPUs()
	if err != nil || len(cpus) == 0 {
		t.Skip("affinity not available in this environment")
	}

	dir := t.TempDir()
	tracePath := filepath.Join(dir, "packets.csv")
	if err := os.WriteFile(tracePath, []byte(fixtureTrace), 0o644); err != nil {
		t.Fatalf("writing fixture trace: %v", err)
	}
	resultsDir := filepath.Join(dir, "results")

	cfg := Config{
		TraceFile:  tracePath,
		ResultsDir: resultsDir,
		Method:     methods.NameGlobal,
		Arg:        0,
		Trials:     1,
		TrialSecs:  0,
		WarmupMS:   1,
		MaxCPUs:    1,
	}

	var loggedLines int
	logf := func(format string, args ...any) { loggedLines++ }

	if err := Run(cfg, logf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loggedLines == 0 {
		t.Error("expected at least one progress log line")
	}

	outPath := filepath.Join(resultsDir, "global_1.csv")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading %s: %v", outPath, err)
	}
	if len(data) == 0 {
		t.Error("result file is empty")
	}
}

func TestRunRejectsBadArg(t *testing.T) {
	cfg := Config{
		TraceFile: "unused.csv",
		Method:    methods.NamePerDest,
		Arg:       999,
		Trials:    1,
		MaxCPUs:   1,
	}
	if err := Run(cfg, nil); err == nil {
		t.Fatal("expected error for out-of-range -a, got nil")
	}
}
