// File: internal/methods/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Method-name catalog, -a range validation, and the constructor
// dispatch the harness calls once per trial.

package methods

import "fmt"

// Method name constants accepted by the CLI's -m flag.
const (
	NameGlobal           = "global"
	NamePerConn          = "perconn"
	NamePerDest          = "perdest"
	NamePerBucketL       = "perbucketl"
	NamePerBucketM       = "perbucketm"
	NamePRNGQueue        = "prngqueue"
	NamePRNGShuffle      = "prngshuffle"
	NamePRNGPure         = "prngpure"
	NamePerBucketShuffle = "perbucketshuffle"
)

// Names lists every method identifier, in catalog order.
var Names = []string{
	NameGlobal, NamePerConn, NamePerDest, NamePerBucketL, NamePerBucketM,
	NamePRNGQueue, NamePRNGShuffle, NamePRNGPure, NamePerBucketShuffle,
}

// HasNumericArg reports whether name's result files carry the -a value
// in their filename.
func HasNumericArg(name string) bool {
	switch name {
	case NamePerDest, NamePerBucketL, NamePerBucketM, NamePRNGQueue, NamePRNGShuffle, NamePerBucketShuffle:
		return true
	default:
		return false
	}
}

// ValidateArg checks the -a argument range for name.
func ValidateArg(name string, arg int) error {
	switch name {
	case NamePerDest:
		if arg != 1<<12 && arg != 1<<15 {
			return fmt.Errorf("%w: perdest requires -a in {4096, 32768}, got %d", ErrInvalidArgument, arg)
		}
	case NamePerBucketL, NamePerBucketM:
		if arg < 1<<11 || arg > 1<<18 {
			return fmt.Errorf("%w: %s requires -a in [2048, 262144], got %d", ErrInvalidArgument, name, arg)
		}
	case NamePRNGQueue, NamePRNGShuffle:
		if arg < 1<<12 || arg > 1<<15 {
			return fmt.Errorf("%w: %s requires -a in [4096, 32768], got %d", ErrInvalidArgument, name, arg)
		}
	case NamePerBucketShuffle:
		if arg < 2 || arg > 16 {
			return fmt.Errorf("%w: perbucketshuffle requires -a in [2, 16], got %d", ErrInvalidArgument, arg)
		}
	case NameGlobal, NamePerConn, NamePRNGPure:
		// no numeric argument used
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return nil
}

// New constructs a fresh instance of the named method, scoped to
// exactly one trial. nThreads must equal the worker count the trial
// will use.
func New(name string, arg, nThreads int) (Method, error) {
	if err := ValidateArg(name, arg); err != nil {
		return nil, err
	}
	switch name {
	case NameGlobal:
		return NewGlobal(), nil
	case NamePerConn:
		return NewPerConn(), nil
	case NamePerDest:
		return NewPerDest(arg), nil
	case NamePerBucketL:
		return NewPerBucketL(arg, nThreads), nil
	case NamePerBucketM:
		return NewPerBucketM(arg, nThreads), nil
	case NamePRNGQueue:
		return NewPRNGQueue(arg), nil
	case NamePRNGShuffle:
		return NewPRNGShuffle(arg), nil
	case NamePRNGPure:
		return NewPRNGPure(nThreads), nil
	case NamePerBucketShuffle:
		return NewPerBucketShuffle(arg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}
