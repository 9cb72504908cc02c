// File: internal/methods/global.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Global: a single atomic counter shared by every thread, modeling a
// kernel-wide IPID counter.

package methods

import (
	"sync/atomic"

	"github.com/momentics/ipidbench/internal/packet"
)

// Global implements the single-atomic-counter IPID strategy.
type Global struct {
	counter atomic.Uint32
}

// NewGlobal constructs a fresh Global counter initialized to 0.
func NewGlobal() *Global {
	return &Global{}
}

// Assign performs an atomic fetch-add and returns prev+1. Go's atomics
// are sequentially consistent, though relaxed ordering would suffice:
// the benchmark measures only the throughput of the
// primitive, not any cross-thread happens-before relationship carried
// in the returned value.
func (g *Global) Assign(_ packet.Packet, _ int) uint16 {
	return uint16(g.counter.Add(1))
}
