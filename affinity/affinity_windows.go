//go:build windows
// +build windows

// File: affinity/affinity_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows affinity via kernel32's SetThreadAffinityMask / GetSystemInfo.

package affinity

import (
	"fmt"
	"runtime"
	"syscall"
	"unsafe"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procSetThreadAffinityMask = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentThread      = kernel32.NewProc("GetCurrentThread")
	procGetSystemInfo         = kernel32.NewProc("GetSystemInfo")
)

// systemInfo mirrors the fields of Windows' SYSTEM_INFO we need; the
// layout must match the OS struct exactly for GetSystemInfo to fill it in.
type systemInfo struct {
	wProcessorArchitecture      uint16
	wReserved                   uint16
	dwPageSize                  uint32
	lpMinimumApplicationAddress uintptr
	lpMaximumApplicationAddress uintptr
	dwActiveProcessorMask       uintptr
	dwNumberOfProcessors        uint32
	dwProcessorType             uint32
	dwAllocationGranularity     uint32
	wProcessorLevel             uint16
	wProcessorRevision          uint16
}

func availableCPUsPlatform() ([]int, error) {
	var info systemInfo
	procGetSystemInfo.Call(uintptr(unsafe.Pointer(&info)))
	if info.dwNumberOfProcessors == 0 {
		return nil, fmt.Errorf("%w: GetSystemInfo reported zero processors", ErrAffinityNotSupported)
	}
	cpus := make([]int, 0, info.dwNumberOfProcessors)
	for i := 0; i < int(info.dwNumberOfProcessors); i++ {
		if info.dwActiveProcessorMask&(uintptr(1)<<uint(i)) != 0 {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}

func pinCurrentThreadPlatform(cpuID int) error {
	runtime.LockOSThread()
	hThread, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << uint(cpuID)
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		return fmt.Errorf("affinity: SetThreadAffinityMask cpu %d: %w", cpuID, err)
	}
	return nil
}
