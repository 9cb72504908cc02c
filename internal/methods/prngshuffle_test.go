// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import (
	"testing"

	"github.com/momentics/ipidbench/internal/packet"
)

func TestPRNGShuffleNeverZeroAndPermutationPreserved(t *testing.T) {
	m := NewPRNGShuffle(1 << 12)
	p := packet.Packet{}
	for i := 0; i < 5000; i++ {
		v := m.Assign(p, 0)
		if v == 0 {
			t.Fatalf("call %d: returned 0", i)
		}
	}

	counts := make(map[uint16]int)
	for _, v := range m.perm {
		counts[v]++
	}
	if len(counts) != 1<<16 {
		t.Fatalf("permutation degraded: %d distinct values, want 65536", len(counts))
	}
	for v, c := range counts {
		if c != 1 {
			t.Fatalf("value %d appears %d times in permutation, want exactly 1", v, c)
		}
	}
}
