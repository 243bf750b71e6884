// Package ilds provides integer-output variants of the digit-reversal
// sequence generators in lds.
//
// Instead of scaling the reversed digits down into [0,1), these generators
// reverse the digits inside a fixed window of `scale` base-b digits and
// return the result as an integer in [0, base^scale). That keeps the
// low-discrepancy ordering while producing exact integers, which is what
// you want for shuffling indices, striding buffers or picking table slots
// without floating-point rounding.
//
// The contract mirrors lds: Pop advances a plain counter, Reseed(s)
// repositions it absolutely, constructors validate inputs up front and
// nothing fails afterwards. Instances are not goroutine-safe.
package ilds
