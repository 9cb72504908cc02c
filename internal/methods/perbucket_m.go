// File: internal/methods/perbucket_m.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PerBucketM: same math as PerBucketL, but the whole (exchange time,
// sample increment, add) sequence runs inside one dedicated mutex per
// bucket — this variant exists to measure lock-per-assignment cost
// against PerBucketL's raw-atomics cost.

package methods

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/momentics/ipidbench/internal/packet"
	"github.com/momentics/ipidbench/internal/siphash"
)

type bucketM struct {
	mu      sync.Mutex
	counter uint16
	lastMS  uint64
}

// PerBucketM implements the mutex-per-bucket strategy.
type PerBucketM struct {
	buckets []bucketM
	k1, k2  uint64
	rngs    []*rand.Rand
	start   time.Time
}

// NewPerBucketM constructs a bucket array of size numBuckets, with one
// private RNG per worker thread for the random increment step.
func NewPerBucketM(numBuckets, nThreads int) *PerBucketM {
	rngs := make([]*rand.Rand, nThreads)
	for i := range rngs {
		rngs[i] = newPrivateRand()
	}
	return &PerBucketM{
		buckets: make([]bucketM, numBuckets),
		k1:      rand.Uint64(),
		k2:      rand.Uint64(),
		rngs:    rngs,
		start:   time.Now(),
	}
}

// Assign exchanges the bucket's last-access timestamp, draws an
// elapsed-bounded increment, and adds it to the bucket's counter, all
// inside the bucket's own mutex.
func (m *PerBucketM) Assign(p packet.Packet, threadID int) uint16 {
	idx := siphash.SipHash3U32(p.DstAddr, p.SrcAddr, p.Protocol, m.k1, m.k2) % uint64(len(m.buckets))
	b := &m.buckets[idx]

	b.mu.Lock()
	defer b.mu.Unlock()

	now := uint64(time.Since(m.start) / time.Millisecond)
	last := b.lastMS
	b.lastMS = now

	elapsed := int64(now) - int64(last)
	if elapsed < 1 {
		elapsed = 1
	}
	if elapsed > 0xffff {
		elapsed = 0xffff
	}

	inc := uint16(1)
	if elapsed > 1 {
		inc = uint16(m.rngs[threadID].IntN(int(elapsed))) + 1
	}

	b.counter += inc
	return b.counter
}
