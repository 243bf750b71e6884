package sphere_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlseq/sphere"
)

// TestInterp_Linear checks interpolation along y = 2x, including hits on
// the sample nodes themselves.
func TestInterp_Linear(t *testing.T) {
	xp := []float64{0, 1, 2, 3}
	yp := []float64{0, 2, 4, 6}

	assert.InDelta(t, 1.0, sphere.Interp(0.5, xp, yp), 1e-12, "between first two nodes")
	assert.InDelta(t, 3.0, sphere.Interp(1.5, xp, yp), 1e-12, "between middle nodes")
	assert.Equal(t, 4.0, sphere.Interp(2.0, xp, yp), "exactly on a node")
}

// TestInterp_BoundaryClamp verifies the clamping contract exactly: at or
// below the first abscissa the first ordinate comes back, at or above the
// last abscissa the last ordinate, no extrapolation.
func TestInterp_BoundaryClamp(t *testing.T) {
	xp := []float64{0, 1, 2, 3}
	yp := []float64{10, 2, 4, 6}

	assert.Equal(t, 10.0, sphere.Interp(0.0, xp, yp), "at the first abscissa")
	assert.Equal(t, 10.0, sphere.Interp(-0.5, xp, yp), "below the first abscissa")
	assert.Equal(t, 6.0, sphere.Interp(3.0, xp, yp), "at the last abscissa")
	assert.Equal(t, 6.0, sphere.Interp(99.0, xp, yp), "far above the last abscissa")
}

// TestInterp_NonUniformGrid uses unevenly spaced abscissas to make sure
// the segment-local slope is used.
func TestInterp_NonUniformGrid(t *testing.T) {
	xp := []float64{0, 0.1, 1, 10}
	yp := []float64{0, 1, 2, 3}

	assert.InDelta(t, 0.5, sphere.Interp(0.05, xp, yp), 1e-12, "steep first segment")
	assert.InDelta(t, 2.5, sphere.Interp(5.5, xp, yp), 1e-12, "shallow last segment")
}
