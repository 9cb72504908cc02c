// File: internal/methods/prngshuffle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PRNGShuffle: OpenBSD-style Knuth shuffle. A permutation of
// {0, ..., 2^16-1} is walked by a cyclic head pointer; each emission
// swaps the head slot with a position drawn from the trailing K-sized
// reserved window, using wrapping uint16 arithmetic so the window is
// cyclic for free.

package methods

import (
	"math/rand/v2"
	"sync"

	"github.com/momentics/ipidbench/internal/packet"
)

// PRNGShuffle implements the Knuth-shuffle strategy. reserved is the
// -a argument: the size of the trailing reserved window each emission
// draws its swap position from.
type PRNGShuffle struct {
	mu   sync.Mutex
	perm [1 << 16]uint16
	head uint16
	k    uint16
	rng  *rand.Rand
}

// NewPRNGShuffle builds the initial permutation via Fisher-Yates.
func NewPRNGShuffle(reserved int) *PRNGShuffle {
	m := &PRNGShuffle{k: uint16(reserved), rng: newPrivateRand()}
	for i := range m.perm {
		m.perm[i] = uint16(i)
	}
	for i := len(m.perm) - 1; i > 0; i-- {
		j := m.rng.IntN(i + 1)
		m.perm[i], m.perm[j] = m.perm[j], m.perm[i]
	}
	return m
}

// Assign swaps the head slot with one of the trailing k positions,
// advances head, and rejects a 0 return by retrying from the same
// (now-advanced) head.
func (m *PRNGShuffle) Assign(_ packet.Packet, _ int) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		sample := uint16(m.rng.IntN(int(m.k)))
		j := m.head - sample // wraps within the permutation by design
		v := m.perm[m.head]
		m.perm[m.head], m.perm[j] = m.perm[j], v
		m.head++
		if v != 0 {
			return v
		}
	}
}
