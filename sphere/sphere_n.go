package sphere

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlseq/lds"
)

// Gen is the contract shared by every sphere-point generator in this
// package and by the terminal 2-sphere collaborator the recursion bottoms
// out on.
type Gen interface {
	// Pop returns the next point as a freshly allocated slice with unit
	// Euclidean norm (within floating-point tolerance).
	Pop() []float64

	// Reseed repositions every internal scalar stream to seed absolutely,
	// as if a fresh generator had been reseeded once.
	Reseed(seed uint64)
}

// sphereWrap adapts the closed-form lds.Sphere to Gen; it is the terminal
// case of the SphereN recursion.
type sphereWrap struct {
	sph *lds.Sphere
}

func newSphereWrap(base0, base1 int) (*sphereWrap, error) {
	sph, err := lds.NewSphere(base0, base1)
	if err != nil {
		return nil, err
	}
	return &sphereWrap{sph: sph}, nil
}

func (w *sphereWrap) Pop() []float64 {
	p := w.sph.Pop()
	return p[:]
}

func (w *sphereWrap) Reseed(seed uint64) {
	w.sph.Reseed(seed)
}

// Sphere3 generates points on the unit 3-sphere (4 coordinates) from three
// bases: one scalar stream for the extra polar angle, a terminal 2-sphere
// generator for the rest. The polar angle is recovered by inverting the
// antiderivative f2 over [0, π/2·v] via table interpolation.
//
// A fixed-dimension convenience; SphereN over the same bases produces the
// identical sequence.
type Sphere3 struct {
	vdc *lds.VdCorput
	sph *lds.Sphere
}

// NewSphere3 creates a 3-sphere generator from bases[0..2]. Returns
// ErrTooFewBases for fewer than 3 bases and lds.ErrBaseTooSmall for an
// invalid base.
func NewSphere3(bases []int) (*Sphere3, error) {
	if len(bases) < 3 {
		return nil, ErrTooFewBases
	}
	vdc, err := lds.NewVdCorput(bases[0])
	if err != nil {
		return nil, err
	}
	sph, err := lds.NewSphere(bases[1], bases[2])
	if err != nil {
		return nil, err
	}
	return &Sphere3{vdc: vdc, sph: sph}, nil
}

// Pop returns the next point on the unit 3-sphere.
func (g *Sphere3) Pop() []float64 {
	t := sphereTables()
	ti := halfPi * g.vdc.Pop() // map [0,1) into the antiderivative range
	xi := Interp(ti, t.f2, t.x)
	sin, cos := math.Sincos(xi)
	p := g.sph.Pop()
	return []float64{sin * p[0], sin * p[1], sin * p[2], cos}
}

// Reseed repositions all internal streams to seed.
func (g *Sphere3) Reseed(seed uint64) {
	g.vdc.Reseed(seed)
	g.sph.Reseed(seed)
}

// SphereN generates points on unit spheres of arbitrary dimension: k+1
// bases yield points with k+2 coordinates on the (k+1)-sphere, any k >= 2.
//
// Construction over k+1 bases builds a strict ownership tree: the outer
// generator takes bases[0] for its own scalar stream and recursively wraps
// a generator over bases[1:], bottoming out in the terminal 2-sphere for
// the last three bases. Each level holds its own copy of the polar-angle
// inverse-CDF table for its dimension, with the table bounds cached for
// the [0,1) to table-domain mapping.
//
// Example:
//
//	sgen, err := sphere.New([]int{2, 3, 5, 7})
//	if err != nil { ... }
//	sgen.Reseed(0)
//	point := sgen.Pop() // 5 coordinates, unit norm
type SphereN struct {
	vdc   *lds.VdCorput
	inner Gen
	n     int
	tp    []float64
	start float64
	span  float64
}

// New creates a SphereN generator from k+1 bases, producing points with
// k+2 coordinates on the (k+1)-sphere. Returns ErrTooFewBases if fewer than 3
// bases are supplied (an (n+1)-sphere needs n >= 2) and lds.ErrBaseTooSmall
// for an invalid base. Construction consults the shared dimension-table
// cache, building any missing tables on the way down the recursion.
func New(bases []int) (*SphereN, error) {
	n := len(bases) - 1
	if n < 2 {
		return nil, ErrTooFewBases
	}

	vdc, err := lds.NewVdCorput(bases[0])
	if err != nil {
		return nil, err
	}

	var inner Gen
	if n == 2 {
		inner, err = newSphereWrap(bases[1], bases[2])
	} else {
		inner, err = New(bases[1:])
	}
	if err != nil {
		return nil, err
	}

	// The table is strictly increasing, so span > 0 and the [0,1) scalar
	// maps into [start, start+span) without ever leaving the domain.
	tp := mapTable(n)
	start := tp[0]
	span := tp[len(tp)-1] - start

	return &SphereN{vdc: vdc, inner: inner, n: n, tp: tp, start: start, span: span}, nil
}

// Dimension returns the number of coordinates of generated points (k+2
// for a generator built from k+1 bases: one coordinate per base plus the
// terminal 2-sphere's extra one).
func (g *SphereN) Dimension() int {
	return g.n + 2
}

// Pop returns the next point on the unit sphere.
//
// One scalar is drawn from the own stream, mapped into the table domain
// and inverted to the polar angle ξ; the inner point is scaled by sin ξ
// and cos ξ becomes the last coordinate. Unit norm propagates through the
// recursion by the Pythagorean identity.
func (g *SphereN) Pop() []float64 {
	ti := g.start + g.span*g.vdc.Pop()
	xi := Interp(ti, g.tp, sphereTables().x)
	sin, cos := math.Sincos(xi)

	pt := g.inner.Pop()
	floats.Scale(sin, pt)
	return append(pt, cos)
}

// Reseed repositions the own stream and, recursively, every inner stream
// to seed. Reseeding is absolute: the generator reaches the identical
// state a fresh construction followed by the same Reseed would have.
func (g *SphereN) Reseed(seed uint64) {
	g.vdc.Reseed(seed)
	g.inner.Reseed(seed)
}
