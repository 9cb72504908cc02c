// File: internal/methods/perconn.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PerConn: models per-socket counter access that is always free of
// contention cost from the packet-construction path.

package methods

import "github.com/momentics/ipidbench/internal/packet"

// PerConn is stateless; it establishes the zero-contention throughput
// upper bound the other methods are compared against.
type PerConn struct{}

// NewPerConn constructs a PerConn instance.
func NewPerConn() *PerConn {
	return &PerConn{}
}

// Assign always returns 1.
func (PerConn) Assign(_ packet.Packet, _ int) uint16 {
	return 1
}
