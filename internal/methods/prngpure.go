// File: internal/methods/prngpure.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PRNGPure: every thread owns an independent generator; there is no
// shared mutable state at all, so this scales linearly with threads by
// construction.

package methods

import (
	"math/rand/v2"

	"github.com/momentics/ipidbench/internal/packet"
)

// PRNGPure implements the no-shared-state strategy.
type PRNGPure struct {
	rngs []*rand.Rand
	salt uint16
}

// NewPRNGPure seeds one private generator per worker thread, plus a
// fixed 64-bit salt folded down to 16 bits by XORing its four 16-bit
// words together and masking to 0xFFFF.
func NewPRNGPure(nThreads int) *PRNGPure {
	s := rand.Uint64()
	folded := uint16((s>>48 ^ s>>32 ^ s>>16 ^ s) & 0xffff)

	rngs := make([]*rand.Rand, nThreads)
	for i := range rngs {
		rngs[i] = newPrivateRand()
	}
	return &PRNGPure{rngs: rngs, salt: folded}
}

// Assign draws a uniform u16 from threadID's own generator, rejects a
// draw equal to the folded salt (which would return 0) or equal to 0
// (which would return the salt), and returns the draw XORed with it.
func (m *PRNGPure) Assign(_ packet.Packet, threadID int) uint16 {
	r := m.rngs[threadID]
	for {
		v := uint16(r.Uint32())
		if v != m.salt && v != 0 {
			return v ^ m.salt
		}
	}
}
