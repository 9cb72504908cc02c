// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import (
	"sync"
	"testing"

	"github.com/momentics/ipidbench/internal/packet"
)

func TestGlobalSequentialSingleThread(t *testing.T) {
	g := NewGlobal()
	p := packet.Packet{}
	first := g.Assign(p, 0)
	for i := 1; i < 100; i++ {
		got := g.Assign(p, 0)
		want := first + uint16(i)
		if got != want {
			t.Fatalf("call %d: got %d, want %d", i, got, want)
		}
	}
}

func TestGlobalMultiThreadMultisetMatchesCount(t *testing.T) {
	g := NewGlobal()
	p := packet.Packet{}
	const perThread = 500
	const nThreads = 8

	results := make(chan uint16, perThread*nThreads)
	var wg sync.WaitGroup
	wg.Add(nThreads)
	for tid := 0; tid < nThreads; tid++ {
		go func(tid int) {
			defer wg.Done()
			for i := 0; i < perThread; i++ {
				results <- g.Assign(p, tid)
			}
		}(tid)
	}
	wg.Wait()
	close(results)

	seen := make(map[uint16]int)
	count := 0
	for v := range results {
		seen[v]++
		count++
	}
	if count != perThread*nThreads {
		t.Fatalf("got %d results, want %d", count, perThread*nThreads)
	}
	for v, c := range seen {
		if c != 1 {
			t.Fatalf("value %d produced %d times, want exactly 1 (counter not linearizable)", v, c)
		}
	}
}
