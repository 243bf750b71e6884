package lds

import "math"

// Sphere generates evenly distributed points on the unit 2-sphere.
//
// The polar cosine is drawn linearly from one Van der Corput stream
// (cos φ = 2v−1, which is the exact inverse CDF of the polar marginal on
// the 2-sphere), the azimuth comes from a Circle generator on a second
// base. Both streams advance in lockstep.
type Sphere struct {
	vdc    *VdCorput
	cirgen *Circle
}

// NewSphere creates a 2-sphere generator over the pair (base0, base1):
// base0 drives the polar cosine, base1 the azimuth.
// Returns ErrBaseTooSmall if either base is below 2.
func NewSphere(base0, base1 int) (*Sphere, error) {
	vdc, err := NewVdCorput(base0)
	if err != nil {
		return nil, err
	}
	cirgen, err := NewCircle(base1)
	if err != nil {
		return nil, err
	}
	return &Sphere{vdc: vdc, cirgen: cirgen}, nil
}

// Pop returns the next point [sin φ·cos θ, sin φ·sin θ, cos φ].
// The point has unit Euclidean norm up to floating-point rounding.
func (s *Sphere) Pop() [3]float64 {
	cosphi := 2*s.vdc.Pop() - 1 // map [0,1) to [-1, 1)
	sinphi := math.Sqrt(1 - cosphi*cosphi)
	xy := s.cirgen.Pop()
	return [3]float64{sinphi * xy[0], sinphi * xy[1], cosphi}
}

// Reseed repositions both underlying streams to seed.
func (s *Sphere) Reseed(seed uint64) {
	s.cirgen.Reseed(seed)
	s.vdc.Reseed(seed)
}

// Sphere3Hopf generates points on the unit 3-sphere through Hopf
// coordinates: two fiber angles from the first two streams and the fiber
// radius from the third. A closed-form alternative to the table-driven
// sphere.SphereN for the 4-dimensional case.
type Sphere3Hopf struct {
	vdc0 *VdCorput
	vdc1 *VdCorput
	vdc2 *VdCorput
}

// NewSphere3Hopf creates a Hopf-coordinate 3-sphere generator over three
// bases. Returns ErrBaseTooSmall if any base is below 2.
func NewSphere3Hopf(base0, base1, base2 int) (*Sphere3Hopf, error) {
	vdc0, err := NewVdCorput(base0)
	if err != nil {
		return nil, err
	}
	vdc1, err := NewVdCorput(base1)
	if err != nil {
		return nil, err
	}
	vdc2, err := NewVdCorput(base2)
	if err != nil {
		return nil, err
	}
	return &Sphere3Hopf{vdc0: vdc0, vdc1: vdc1, vdc2: vdc2}, nil
}

// Pop returns the next point on the unit 3-sphere as 4 coordinates.
func (s *Sphere3Hopf) Pop() [4]float64 {
	phi := s.vdc0.Pop() * twoPi // map [0,1) to [0, 2π)
	psy := s.vdc1.Pop() * twoPi // map [0,1) to [0, 2π)
	vd := s.vdc2.Pop()
	cosEta := math.Sqrt(vd)
	sinEta := math.Sqrt(1 - vd)
	return [4]float64{
		cosEta * math.Cos(psy),
		cosEta * math.Sin(psy),
		sinEta * math.Cos(phi+psy),
		sinEta * math.Sin(phi+psy),
	}
}

// Reseed repositions all three underlying streams to seed.
func (s *Sphere3Hopf) Reseed(seed uint64) {
	s.vdc0.Reseed(seed)
	s.vdc1.Reseed(seed)
	s.vdc2.Reseed(seed)
}
