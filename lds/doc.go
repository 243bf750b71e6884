// Package lds provides scalar and fixed-dimension low-discrepancy sequence
// generators: deterministic streams of points that cover their domain far
// more evenly than independent pseudo-random draws.
//
// 🚀 What is a low-discrepancy sequence?
//
//	Reverse the base-b digits of 1, 2, 3, ... and read the result as a
//	fraction in [0,1): that is the Van der Corput sequence, the primitive
//	every other generator here is built from. Pairing streams with coprime
//	bases fills the plane (Halton); mapping them through closed-form
//	projections fills the circle, the 2-sphere and the 3-sphere.
//
// ✨ Generators in this package:
//
//   - VdCorput    — scalar digit-reversal stream in [0,1)
//   - Halton      — 2-D pairing of two VdCorput streams
//   - HaltonN     — n-D generalization over an arbitrary base list
//   - Circle      — unit-circle points [cos θ, sin θ], θ = 2π·v
//   - Sphere      — 2-sphere points; azimuth from a Circle, polar cosine
//     linear in a VdCorput value
//   - Sphere3Hopf — 3-sphere points through Hopf coordinates
//
// Every generator is a pure function of (counter, bases). Pop advances the
// counter and returns the next element; Reseed(s) repositions the counter
// absolutely, so Reseed(0) always replays the sequence from the start.
// Generators are cheap value-like objects: create one per goroutine rather
// than sharing an instance, since Pop mutates the counter without locking.
//
// Constructors validate their bases (each must be at least 2) and return
// ErrBaseTooSmall otherwise; after construction no operation can fail.
//
// Typical bases are distinct small primes. PrimeTable holds the first 1000
// primes for exactly that purpose.
package lds
