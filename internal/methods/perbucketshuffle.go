// File: internal/methods/perbucketshuffle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PerBucketShuffle (proposed): B independent Knuth-shuffle states, one
// per bucket, each with its own mutex and private generator. B is kept
// small (2..16) so total storage matches a coarse-grained per-bucket
// baseline; the reserved-IPID window is fixed at 2^15 regardless of B.

package methods

import (
	"math/rand/v2"
	"sync"

	"github.com/momentics/ipidbench/internal/packet"
	"github.com/momentics/ipidbench/internal/siphash"
)

const perBucketShuffleReserved = 1 << 15

type shuffleBucket struct {
	mu   sync.Mutex
	perm [1 << 16]uint16
	head uint16
	rng  *rand.Rand
}

func newShuffleBucket() *shuffleBucket {
	b := &shuffleBucket{rng: newPrivateRand()}
	for i := range b.perm {
		b.perm[i] = uint16(i)
	}
	for i := len(b.perm) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.perm[i], b.perm[j] = b.perm[j], b.perm[i]
	}
	return b
}

// PerBucketShuffle implements the per-bucket-shuffle strategy.
type PerBucketShuffle struct {
	buckets []*shuffleBucket
	k1, k2  uint64
}

// NewPerBucketShuffle constructs numBuckets independent shuffle states
// sharded by the same SipHash scheme as PerBucketL/PerBucketM.
func NewPerBucketShuffle(numBuckets int) *PerBucketShuffle {
	buckets := make([]*shuffleBucket, numBuckets)
	for i := range buckets {
		buckets[i] = newShuffleBucket()
	}
	return &PerBucketShuffle{
		buckets: buckets,
		k1:      rand.Uint64(),
		k2:      rand.Uint64(),
	}
}

// Assign shards by SipHash then delegates to the selected bucket's own
// Knuth-shuffle walk.
func (m *PerBucketShuffle) Assign(p packet.Packet, _ int) uint16 {
	idx := siphash.SipHash3U32(p.DstAddr, p.SrcAddr, p.Protocol, m.k1, m.k2) % uint64(len(m.buckets))
	b := m.buckets[idx]

	b.mu.Lock()
	defer b.mu.Unlock()

	for {
		sample := uint16(b.rng.IntN(perBucketShuffleReserved))
		j := b.head - sample
		v := b.perm[b.head]
		b.perm[b.head], b.perm[j] = b.perm[j], v
		b.head++
		if v != 0 {
			return v
		}
	}
}
