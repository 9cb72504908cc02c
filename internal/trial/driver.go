// File: internal/trial/driver.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Drives one trial: len(cpus) worker goroutines, each pinned to its own
// logical CPU, hammer a shared packet vector through a Method for a
// warmup period followed by a timed measurement period. Run reports one
// throughput count per worker, in cpus order.

package trial

import (
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/momentics/ipidbench/affinity"
	"github.com/momentics/ipidbench/internal/methods"
	"github.com/momentics/ipidbench/internal/packet"
)

// ErrEmptyTrace is returned when Run is asked to drive a trial with no
// packets to assign IPIDs for.
var ErrEmptyTrace = fmt.Errorf("trial: packet vector is empty")

// Run pins one worker goroutine per entry of cpus, warms each up for
// warmup, then measures for duration. It returns the number of Assign
// calls each worker completed during the measurement window, indexed
// the same as cpus. Run blocks until every worker has reported.
func Run(m methods.Method, packets []packet.Packet, cpus []int, warmup, duration time.Duration) ([]uint64, error) {
	if len(packets) == 0 {
		return nil, ErrEmptyTrace
	}

	n := len(cpus)
	counts := make([]uint64, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(threadID, cpuID int) {
			defer wg.Done()
			errs[threadID] = worker(m, packets, threadID, cpuID, warmup, duration, &counts[threadID])
		}(i, cpus[i])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// worker pins the calling goroutine's OS thread to cpuID, then runs the
// warmup and measurement loops. Each worker picks its own random
// starting index into the shared packet vector before either loop
// begins, so distinct workers don't all walk the vector in lockstep.
func worker(m methods.Method, packets []packet.Packet, threadID, cpuID int, warmup, duration time.Duration, out *uint64) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := affinity.PinCurrentThread(cpuID); err != nil {
		return fmt.Errorf("trial: worker %d: %w", threadID, err)
	}

	plen := len(packets)
	idx := rand.IntN(plen)

	if warmup > 0 {
		deadline := time.Now().Add(warmup)
		for time.Now().Before(deadline) {
			m.Assign(packets[idx], threadID)
			idx++
			if idx == plen {
				idx = 0
			}
		}
	}

	var count uint64
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		m.Assign(packets[idx], threadID)
		idx++
		if idx == plen {
			idx = 0
		}
		count++
	}
	*out = count
	return nil
}
