// File: internal/methods/method.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The uniform dispatch surface every IPID selection strategy implements.

package methods

import "github.com/momentics/ipidbench/internal/packet"

// Method assigns IPIDs for the lifetime of exactly one trial. An
// instance must be safe to call concurrently from distinct worker
// threads with distinct threadID values and arbitrary interleaving.
type Method interface {
	// Assign returns the next IPID for p, as observed by worker
	// threadID (0..n-1, stable across calls from the same worker
	// within a trial). Implementations that don't need the id ignore
	// it. Assign always returns a value; it has no failure mode.
	Assign(p packet.Packet, threadID int) uint16
}
