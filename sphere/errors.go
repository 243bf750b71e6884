// Package sphere: sentinel error set.
// Constructors MUST return these sentinels (or wrapped lds sentinels) on
// invalid input; Pop and Reseed never fail.

package sphere

import "errors"

// ErrTooFewBases is returned when the base list is too short for the
// requested generator: SphereN and Sphere3 need at least 3 bases (an
// (n+1)-sphere needs n >= 2), CylinN needs at least 2.
var ErrTooFewBases = errors.New("sphere: too few bases for the requested dimension")
