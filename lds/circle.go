package lds

import "math"

const twoPi = 2 * math.Pi

// Circle generates evenly distributed points on the unit circle by mapping
// a Van der Corput value to the angle θ = 2π·v.
type Circle struct {
	vdc *VdCorput
}

// NewCircle creates a Circle generator over base.
// Returns ErrBaseTooSmall if base < 2.
func NewCircle(base int) (*Circle, error) {
	vdc, err := NewVdCorput(base)
	if err != nil {
		return nil, err
	}
	return &Circle{vdc: vdc}, nil
}

// Pop returns the next point as [cos θ, sin θ]. The point lies exactly on
// the unit circle up to floating-point rounding.
func (c *Circle) Pop() [2]float64 {
	theta := c.vdc.Pop() * twoPi // map [0,1) to [0, 2π)
	sin, cos := math.Sincos(theta)
	return [2]float64{cos, sin}
}

// Reseed repositions the underlying stream to seed.
func (c *Circle) Reseed(seed uint64) {
	c.vdc.Reseed(seed)
}
