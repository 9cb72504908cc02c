// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the methods package.

package methods

import "errors"

var (
	// ErrUnknownMethod indicates a -m value outside the method catalog.
	ErrUnknownMethod = errors.New("methods: unknown method name")

	// ErrInvalidArgument indicates a -a value outside the named
	// method's valid range.
	ErrInvalidArgument = errors.New("methods: argument out of range for method")
)
