// Package lvlseq is your toolbox for deterministic, well-distributed
// sampling: low-discrepancy sequences that fill intervals, planes and
// n-dimensional spheres far more evenly than pseudo-random draws.
//
// 🚀 What is lvlseq?
//
//	A small, thread-aware library that brings together:
//		• Scalar sequences: Van der Corput digit reversal over any base
//		• Plane fillers: Halton pairs and HaltonN vectors
//		• Closed-form surfaces: Circle, 2-sphere, 3-sphere via Hopf coordinates
//		• The recursive core: SphereN, uniform points on spheres of any dimension
//		• Cylindrical variant: CylinN, the same recursion in cylindrical coordinates
//		• Integer outputs: scaled digit-reversal sequences for index shuffling
//
// ✨ Why choose lvlseq?
//
//   - Reproducible by construction: same seed, same sequence, on every platform
//   - No hidden entropy: every generator owns a plain counter you can Reseed
//   - Shared numeric tables are built once and are immutable afterwards,
//     so independent generators on different goroutines never interfere
//   - Fallibility is front-loaded: constructors validate, Pop never fails
//
// Everything is organized under three subpackages:
//
//	lds/    — floating-point sequence generators in [0,1) and on fixed surfaces
//	ilds/   — integer-output digit-reversal variants
//	sphere/ — angle tables, inverse-CDF interpolation and the recursive SphereN
//
// Quick taste:
//
//	sgen, err := sphere.New([]int{2, 3, 5, 7})
//	if err != nil { ... }
//	sgen.Reseed(0)
//	point := sgen.Pop() // 5 coordinates, unit Euclidean norm
//
// Dive into examples/ for runnable demos and each package's doc.go for the
// underlying math.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
