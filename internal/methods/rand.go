// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Private-PRNG helper shared by the methods that own an exclusive
// generator (guarded by their own mutex, or owned by a single thread)
// rather than drawing from math/rand/v2's auto-locking global source.

package methods

import "math/rand/v2"

func newPrivateRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
