// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package methods

import "testing"

func TestValidateArgRanges(t *testing.T) {
	cases := []struct {
		name string
		arg  int
		ok   bool
	}{
		{NamePerDest, 1 << 12, true},
		{NamePerDest, 1 << 15, true},
		{NamePerDest, 1000, false},
		{NamePerBucketL, 1 << 11, true},
		{NamePerBucketL, 1 << 18, true},
		{NamePerBucketL, 1 << 10, false},
		{NamePerBucketM, 1 << 19, false},
		{NamePRNGQueue, 1 << 12, true},
		{NamePRNGQueue, 1 << 11, false},
		{NamePRNGShuffle, 1 << 15, true},
		{NamePerBucketShuffle, 2, true},
		{NamePerBucketShuffle, 16, true},
		{NamePerBucketShuffle, 1, false},
		{NamePerBucketShuffle, 17, false},
		{NameGlobal, 0, true},
		{NamePerConn, 12345, true},
		{NamePRNGPure, 0, true},
		{"bogus", 1, false},
	}
	for _, c := range cases {
		err := ValidateArg(c.name, c.arg)
		if (err == nil) != c.ok {
			t.Errorf("ValidateArg(%q, %d): err=%v, want ok=%v", c.name, c.arg, err, c.ok)
		}
	}
}

func TestNewDispatchesAllMethods(t *testing.T) {
	for _, name := range Names {
		m, err := New(name, defaultArgFor(name), 2)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if m == nil {
			t.Fatalf("New(%q) returned nil method", name)
		}
	}
}

func defaultArgFor(name string) int {
	switch name {
	case NamePerDest:
		return 1 << 15
	case NamePerBucketL, NamePerBucketM:
		return 4096
	case NamePRNGQueue, NamePRNGShuffle:
		return 1 << 12
	case NamePerBucketShuffle:
		return 4
	default:
		return 0
	}
}
