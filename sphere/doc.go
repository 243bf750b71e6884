// Package sphere generates deterministic, evenly distributed points on
// unit spheres of arbitrary dimension from low-discrepancy scalar streams.
//
// 🚀 How it works
//
//	VdCorput stream        angle tables           recursion
//	[0,1) ----------> target t ----------> polar angle ξ ----------> S(n)
//	          map         inverse-CDF lookup        scale + append
//
//	Each generator owns one scalar stream and an inner generator of one
//	lower dimension. A draw maps the scalar into the table domain, inverts
//	the polar-angle CDF by linear interpolation over a precomputed table,
//	scales the inner point by sin ξ and appends cos ξ. Since the inner
//	point has unit norm and sin²ξ + cos²ξ = 1, the result lies on the unit
//	sphere in every dimension.
//
// The polar-angle tables are derived from 300 samples of [0, π]:
// DimensionTable(0) = x, DimensionTable(1) = -cos x, and for n ≥ 2
//
//	T(n)[i] = ((n-1)·T(n-2)[i] + (-cos x[i])·sin(x[i])^(n-1)) / n,
//
// the antiderivative recurrence of sinⁿ. The base tables are built once
// per process and shared read-only; dimension tables are memoized under a
// single mutex and handed out as copies, so any number of generators on
// any number of goroutines can be constructed concurrently.
//
// ✨ Generators in this package:
//
//   - SphereN — the recursive core: k+1 bases produce points with k+2
//     coordinates on the (k+1)-sphere, any k ≥ 2
//   - Sphere3 — fixed 3-sphere (4 coordinates) convenience generator
//   - CylinN  — the same recursion in cylindrical coordinates: k bases
//     produce k+1 coordinates, k ≥ 2
//
// All implement Gen: Pop returns the next point, Reseed(s) repositions
// every internal stream absolutely. A single instance is not goroutine-
// safe; distinct instances never interfere beyond the immutable tables.
//
// Construction is the only fallible step: ErrTooFewBases when the base
// list is too short for the requested dimension, lds.ErrBaseTooSmall when
// a base is below 2.
package sphere
