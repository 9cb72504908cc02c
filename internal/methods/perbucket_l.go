// File: internal/methods/perbucket_l.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PerBucketL: fixed-size bucket array where each bucket's counter and
// last-access time are independent atomics, with no critical section
// spanning the two. The random increment step draws from a private
// per-thread generator, so the shared-RNG contention the kernel
// exhibits is not reproduced here.

package methods

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/momentics/ipidbench/internal/packet"
	"github.com/momentics/ipidbench/internal/siphash"
)

type bucketL struct {
	counter atomic.Uint32
	lastMS  atomic.Uint64
}

// PerBucketL implements the lock-free per-bucket strategy.
type PerBucketL struct {
	buckets []bucketL
	k1, k2  uint64
	rngs    []*rand.Rand
	start   time.Time
}

// NewPerBucketL constructs a bucket array of size numBuckets, with one
// private RNG per worker thread for the random increment step.
func NewPerBucketL(numBuckets, nThreads int) *PerBucketL {
	rngs := make([]*rand.Rand, nThreads)
	for i := range rngs {
		rngs[i] = newPrivateRand()
	}
	return &PerBucketL{
		buckets: make([]bucketL, numBuckets),
		k1:      rand.Uint64(),
		k2:      rand.Uint64(),
		rngs:    rngs,
		start:   time.Now(),
	}
}

// Assign shards by SipHash, atomically exchanges the bucket's
// last-access timestamp, draws an elapsed-bounded increment, and adds
// it to the bucket's counter — no critical section spans the two
// atomic operations.
func (m *PerBucketL) Assign(p packet.Packet, threadID int) uint16 {
	idx := siphash.SipHash3U32(p.DstAddr, p.SrcAddr, p.Protocol, m.k1, m.k2) % uint64(len(m.buckets))
	now := uint64(time.Since(m.start) / time.Millisecond)

	b := &m.buckets[idx]
	last := b.lastMS.Swap(now)

	elapsed := int64(now) - int64(last)
	if elapsed < 1 {
		elapsed = 1
	}
	if elapsed > 0xffff {
		elapsed = 0xffff
	}

	inc := uint32(1)
	if elapsed > 1 {
		inc = uint32(m.rngs[threadID].IntN(int(elapsed))) + 1
	}

	prev := b.counter.Add(inc)
	return uint16(prev)
}
