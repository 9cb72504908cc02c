// File: cmd/ipidbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Command-line front end for the IPID throughput benchmark. Parses
// flags, validates them against the method catalog and CPU topology,
// and hands off to the harness.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/momentics/ipidbench/affinity"
	"github.com/momentics/ipidbench/internal/harness"
	"github.com/momentics/ipidbench/internal/methods"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "ipidbench:", err)
		os.Exit(1)
	}

	if err := harness.Run(cfg, log.Printf); err != nil {
		log.Fatalf("ipidbench: %v", err)
	}
}

func parseFlags(args []string) (harness.Config, error) {
	fs := flag.NewFlagSet("ipidbench", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: ipidbench -m <method> [flags]\n\nmethods: %v\n\n", methods.Names)
		fs.PrintDefaults()
	}

	trace := fs.String("f", "packets.csv", "packet trace CSV file")
	resultsDir := fs.String("r", "results", "directory to write result CSVs into")
	method := fs.String("m", "global", "IPID selection method")
	arg := fs.Int("a", 4096, "method-specific numeric argument (table size, bucket count, ...)")
	trials := fs.Int("t", 1, "number of trials per CPU count")
	trialSecs := fs.Int("d", 5, "measured duration per trial, seconds")
	warmupMS := fs.Int("w", 100, "warmup duration per trial, milliseconds")
	maxCPUs := fs.Int("c", 4, "maximum worker/CPU count to sweep up to")
	help := fs.Bool("h", false, "show usage and exit with code 1")

	if err := fs.Parse(args); err != nil {
		return harness.Config{}, err
	}
	if *help {
		fs.Usage()
		os.Exit(1)
	}

	cfg := harness.Config{
		TraceFile:  *trace,
		ResultsDir: *resultsDir,
		Method:     *method,
		Arg:        *arg,
		Trials:     *trials,
		TrialSecs:  *trialSecs,
		WarmupMS:   *warmupMS,
		MaxCPUs:    *maxCPUs,
	}
	if err := validateConfig(cfg); err != nil {
		return harness.Config{}, err
	}
	return cfg, nil
}

// validateConfig enforces every configuration-error bound, so the
// harness itself never has to reject a malformed flag combination.
func validateConfig(cfg harness.Config) error {
	if err := methods.ValidateArg(cfg.Method, cfg.Arg); err != nil {
		return err
	}
	if cfg.Trials < 1 {
		return fmt.Errorf("-t must be >= 1, got %d", cfg.Trials)
	}
	if cfg.TrialSecs < 1 {
		return fmt.Errorf("-d must be >= 1, got %d", cfg.TrialSecs)
	}
	if cfg.WarmupMS < 10 || cfg.WarmupMS > cfg.TrialSecs*500 {
		return fmt.Errorf("-w must be in [10, %d] for -d %d, got %d", cfg.TrialSecs*500, cfg.TrialSecs, cfg.WarmupMS)
	}

	cpus, err := affinity.AvailableCPUs()
	if err != nil {
		return fmt.Errorf("querying available CPUs: %w", err)
	}
	if cfg.MaxCPUs < 1 || cfg.MaxCPUs > len(cpus) {
		return fmt.Errorf("-c must be in [1, %d], got %d", len(cpus), cfg.MaxCPUs)
	}
	return nil
}
