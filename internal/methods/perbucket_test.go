// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import (
	"testing"

	"github.com/momentics/ipidbench/internal/packet"
)

func TestPerBucketLCounterMonotonic(t *testing.T) {
	m := NewPerBucketL(1, 1)
	p := packet.Packet{DstAddr: 1, SrcAddr: 2, Protocol: 6}
	a := m.Assign(p, 0)
	b := m.Assign(p, 0)
	if b <= a {
		t.Fatalf("counter did not advance: a=%d b=%d", a, b)
	}
}

func TestPerBucketMCounterMonotonic(t *testing.T) {
	m := NewPerBucketM(1, 1)
	p := packet.Packet{DstAddr: 1, SrcAddr: 2, Protocol: 6}
	a := m.Assign(p, 0)
	b := m.Assign(p, 0)
	if b <= a {
		t.Fatalf("counter did not advance: a=%d b=%d", a, b)
	}
}
