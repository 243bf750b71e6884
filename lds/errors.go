// Package lds: sentinel error set.
// All constructors MUST return these sentinels on invalid input and tests
// MUST check them via errors.Is. No generator panics on user input.

package lds

import "errors"

var (
	// ErrBaseTooSmall is returned when a sequence base is below 2.
	// A digit-reversal sequence needs at least two digits per position.
	ErrBaseTooSmall = errors.New("lds: base must be at least 2")

	// ErrNoBases is returned when a generator that takes a base list
	// receives an empty one.
	ErrNoBases = errors.New("lds: at least one base is required")
)
