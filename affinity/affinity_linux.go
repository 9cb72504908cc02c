//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux affinity via golang.org/x/sys/unix's sched_getaffinity /
// sched_setaffinity, rather than cgo + pthreads: this keeps the
// benchmark buildable without a C toolchain while driving the exact
// same kernel facility the teacher's cgo implementation drove.

package affinity

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// maxSchedulableCPUs bounds the CPUSet scan; Linux's CPU_SETSIZE is
// 1024 bits on every supported architecture.
const maxSchedulableCPUs = 1024

func availableCPUsPlatform() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("affinity: sched_getaffinity: %w", err)
	}
	cpus := make([]int, 0, set.Count())
	for i := 0; i < maxSchedulableCPUs; i++ {
		if set.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	if len(cpus) == 0 {
		return nil, fmt.Errorf("%w: sched_getaffinity reported no CPUs", ErrAffinityNotSupported)
	}
	return cpus, nil
}

func pinCurrentThreadPlatform(cpuID int) error {
	// LockOSThread first: affinity binds the OS thread, and without this
	// the Go scheduler is free to move the goroutine to a different one
	// right after we set it.
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity cpu %d: %w", cpuID, err)
	}
	return nil
}
