// File: internal/methods/perdest.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PerDest: Windows-style PathSet. A single mutex guards a map of
// (src_addr, dst_addr) address pairs to their own rolling counter, with
// a periodic purge pass that bounds the table's growth.

package methods

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/momentics/ipidbench/internal/packet"
)

type pathEntry struct {
	counter    uint16
	lastAccess time.Time
}

// PerDest implements the per-destination PathSet strategy. threshold
// is the -a argument: the table size above which a purge becomes
// eligible.
type PerDest struct {
	mu              sync.Mutex
	table           map[uint64]*pathEntry
	threshold       int
	lastPurgeCheck  time.Time
	addedSinceCheck int
	rng             *rand.Rand
}

// NewPerDest constructs a fresh, empty PathSet.
func NewPerDest(threshold int) *PerDest {
	return &PerDest{
		table:          make(map[uint64]*pathEntry),
		threshold:      threshold,
		lastPurgeCheck: time.Now(),
		rng:            newPrivateRand(),
	}
}

// Assign runs a purge check once 500ms of monotonic time have passed
// since the last one, then a lookup-or-insert against the (src_addr, dst_addr)
// key.
func (d *PerDest) Assign(p packet.Packet, _ int) uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	if now.Sub(d.lastPurgeCheck) >= 500*time.Millisecond {
		d.purgeLocked(now)
	}

	key := uint64(p.SrcAddr)<<32 | uint64(p.DstAddr)
	e, ok := d.table[key]
	if !ok {
		e = &pathEntry{counter: uint16(d.rng.Uint32()), lastAccess: now}
		d.table[key] = e
		d.addedSinceCheck++
		return e.counter
	}
	e.counter++
	e.lastAccess = now
	return e.counter
}

// purgeLocked runs the size/age-based eviction pass. The caller holds
// d.mu. Go's map iteration order is already randomized per-run, which
// stands in for the source algorithm's non-deterministic eviction
// order.
func (d *PerDest) purgeLocked(now time.Time) {
	size := len(d.table)
	needsPurge := size > d.threshold || d.addedSinceCheck > 5000
	if needsPurge {
		budget := 1000
		if d.addedSinceCheck > budget {
			budget = d.addedSinceCheck
		}
		switch {
		case size > 2*d.threshold:
			for k := range d.table {
				if budget <= 0 || len(d.table) == 0 {
					break
				}
				delete(d.table, k)
				budget--
			}
		case size > d.threshold:
			staleBefore := now.Add(-60 * time.Second)
			for k, e := range d.table {
				if budget <= 0 {
					break
				}
				if e.lastAccess.Before(staleBefore) {
					delete(d.table, k)
					budget--
				}
			}
		}
	}
	d.lastPurgeCheck = now
	d.addedSinceCheck = 0
}
