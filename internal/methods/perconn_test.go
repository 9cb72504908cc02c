// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import (
	"testing"

	"github.com/momentics/ipidbench/internal/packet"
)

func TestPerConnAlwaysOne(t *testing.T) {
	m := NewPerConn()
	for i := 0; i < 10; i++ {
		if got := m.Assign(packet.Packet{}, 0); got != 1 {
			t.Fatalf("call %d: got %d, want 1", i, got)
		}
	}
}
