// File: internal/methods/prngqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PRNGQueue: FreeBSD/XNU-style searchable queue. A bounded FIFO of
// reserved IPIDs backs a presence bitmap so a freshly drawn value can
// be rejected in O(1) if it's already outstanding.
//
// The FIFO itself is github.com/eapache/queue's Queue — the same
// structure the teacher uses as its executor's task queue
// (internal/concurrency/executor.go), repurposed here from task
// dispatch to candidate-IPID eviction.

package methods

import (
	"math/rand/v2"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/ipidbench/internal/packet"
)

// PRNGQueue implements the searchable-queue strategy. capacity is the
// -a argument: the number of outstanding reserved IPIDs the FIFO holds
// before the oldest one is evicted to make room for a new draw.
type PRNGQueue struct {
	mu       sync.Mutex
	q        *queue.Queue
	presence [1 << 16]bool
	capacity int
	rng      *rand.Rand
}

// NewPRNGQueue constructs an empty queue of the given capacity.
func NewPRNGQueue(capacity int) *PRNGQueue {
	return &PRNGQueue{
		q:        queue.New(),
		capacity: capacity,
		rng:      newPrivateRand(),
	}
}

// Assign rejection-samples a fresh, non-outstanding IPID, then either
// appends it to the FIFO or evicts the oldest entry to make room.
func (m *PRNGQueue) Assign(_ packet.Packet, _ int) uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ipid uint16
	for {
		ipid = uint16(m.rng.Uint32())
		if ipid != 0 && !m.presence[ipid] {
			break
		}
	}

	if m.q.Length() < m.capacity {
		m.q.Add(ipid)
		m.presence[ipid] = true
		return ipid
	}

	evicted := m.q.Remove().(uint16)
	m.q.Add(ipid)
	m.presence[ipid] = true
	m.presence[evicted] = false
	return ipid
}
