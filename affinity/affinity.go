// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral CPU affinity surface for the benchmark harness.
// Platform-specific implementations live in affinity_linux.go,
// affinity_windows.go and affinity_stub.go, guarded by build tags.

package affinity

import (
	"errors"
	"fmt"
)

// ErrAffinityNotSupported is returned on platforms with no affinity
// syscall this package knows how to drive.
var ErrAffinityNotSupported = errors.New("affinity: not supported on this platform")

// ErrCPUOutOfRange is returned when PinCurrentThread is asked to bind to
// a CPU id the platform did not report as schedulable.
var ErrCPUOutOfRange = errors.New("affinity: cpu id out of range")

// AvailableCPUs enumerates the logical CPUs the calling process may
// currently be scheduled on, in ascending order.
func AvailableCPUs() ([]int, error) {
	return availableCPUsPlatform()
}

// PinCurrentThread locks the calling goroutine to its current OS thread
// and binds that thread's scheduling affinity to cpuID. Every trial
// worker calls this exactly once, before any measured work starts: an
// unpinned worker would invalidate the measurement, so failure here is
// always reported, never silently downgraded to a no-op.
func PinCurrentThread(cpuID int) error {
	cpus, err := AvailableCPUs()
	if err != nil {
		return err
	}
	for _, c := range cpus {
		if c == cpuID {
			return pinCurrentThreadPlatform(cpuID)
		}
	}
	return fmt.Errorf("%w: %d", ErrCPUOutOfRange, cpuID)
}
