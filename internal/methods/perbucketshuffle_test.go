// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import (
	"testing"

	"github.com/momentics/ipidbench/internal/packet"
	"github.com/momentics/ipidbench/internal/siphash"
)

func TestPerBucketShuffleNeverZero(t *testing.T) {
	m := NewPerBucketShuffle(4)
	p := packet.Packet{DstAddr: 7, SrcAddr: 3, Protocol: 17}
	for i := 0; i < 20000; i++ {
		if v := m.Assign(p, 0); v == 0 {
			t.Fatalf("call %d: returned 0", i)
		}
	}
}

func TestPerBucketShuffleDistributesAcrossBuckets(t *testing.T) {
	m := NewPerBucketShuffle(8)
	hit := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		p := packet.Packet{DstAddr: uint32(i), SrcAddr: uint32(i * 7), Protocol: uint32(i % 17)}
		idx := siphash.SipHash3U32(p.DstAddr, p.SrcAddr, p.Protocol, m.k1, m.k2) % uint64(len(m.buckets))
		hit[idx] = true
	}
	if len(hit) < 2 {
		t.Fatalf("bucket selection degenerate: only %d bucket(s) hit", len(hit))
	}
}
