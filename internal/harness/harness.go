// File: internal/harness/harness.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Top-level orchestration: load the trace once, then for each CPU
// count from 1 to Config.MaxCPUs and each trial, build a fresh method
// instance, drive one trial, and accumulate the per-thread counts into
// one CSV per method x CPU count.

package harness

import (
	"fmt"
	"time"

	"github.com/momentics/ipidbench/affinity"
	"github.com/momentics/ipidbench/internal/methods"
	"github.com/momentics/ipidbench/internal/packet"
	"github.com/momentics/ipidbench/internal/resultio"
	"github.com/momentics/ipidbench/internal/trial"
)

// Config holds every knob the CLI exposes.
type Config struct {
	TraceFile  string
	ResultsDir string
	Method     string
	Arg        int
	Trials     int
	TrialSecs  int
	WarmupMS   int
	MaxCPUs    int
}

// Logf is the logging hook Run reports progress through; it matches
// log.Printf's signature so callers can pass that directly.
type Logf func(format string, args ...any)

// Run executes the full sweep described by cfg: for n = 1..cfg.MaxCPUs
// and t = 1..cfg.Trials, it builds a fresh method instance and drives
// one trial, then writes the accumulated per-CPU-count result matrix.
// Any error aborts the whole run; no partial result file is left for
// the CPU count in progress.
func Run(cfg Config, logf Logf) error {
	if err := methods.ValidateArg(cfg.Method, cfg.Arg); err != nil {
		return err
	}

	cpus, err := affinity.AvailableCPUs()
	if err != nil {
		return fmt.Errorf("harness: querying available CPUs: %w", err)
	}
	if cfg.MaxCPUs < 1 || cfg.MaxCPUs > len(cpus) {
		return fmt.Errorf("harness: -c %d out of range [1, %d]", cfg.MaxCPUs, len(cpus))
	}

	packets, err := packet.LoadTrace(cfg.TraceFile)
	if err != nil {
		return err
	}
	if logf != nil {
		logf("loaded %d packets from %s", len(packets), cfg.TraceFile)
	}

	warmup := time.Duration(cfg.WarmupMS) * time.Millisecond
	duration := time.Duration(cfg.TrialSecs) * time.Second

	for n := 1; n <= cfg.MaxCPUs; n++ {
		rows := make([][]uint64, cfg.Trials)
		for t := 0; t < cfg.Trials; t++ {
			m, err := methods.New(cfg.Method, cfg.Arg, n)
			if err != nil {
				return err
			}
			counts, err := trial.Run(m, packets, cpus[:n], warmup, duration)
			if err != nil {
				return fmt.Errorf("harness: method %s, n=%d, trial=%d: %w", cfg.Method, n, t, err)
			}
			rows[t] = counts
			if logf != nil {
				logf("method=%s n=%d trial=%d/%d done", cfg.Method, n, t+1, cfg.Trials)
			}
		}

		name := resultio.FileName(cfg.Method, cfg.Arg, n)
		if err := resultio.WriteCSV(cfg.ResultsDir, name, rows); err != nil {
			return err
		}
		if logf != nil {
			logf("wrote %s", name)
		}
	}
	return nil
}
