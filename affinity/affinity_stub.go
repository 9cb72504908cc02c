//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms with no known affinity syscall. Fails loudly
// rather than silently running workers unpinned.

package affinity

func availableCPUsPlatform() ([]int, error) {
	return nil, ErrAffinityNotSupported
}

func pinCurrentThreadPlatform(cpuID int) error {
	return ErrAffinityNotSupported
}
