package sphere

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlseq/lds"
)

// circleWrap adapts lds.Circle to Gen; it is the terminal case of the
// CylinN recursion.
type circleWrap struct {
	cir *lds.Circle
}

func newCircleWrap(base int) (*circleWrap, error) {
	cir, err := lds.NewCircle(base)
	if err != nil {
		return nil, err
	}
	return &circleWrap{cir: cir}, nil
}

func (w *circleWrap) Pop() []float64 {
	p := w.cir.Pop()
	return p[:]
}

func (w *circleWrap) Reseed(seed uint64) {
	w.cir.Reseed(seed)
}

// CylinN generates points on the unit n-sphere using the cylindrical
// coordinate method: every level draws its polar cosine linearly
// (cos φ = 2v−1) instead of inverting the dimension-specific marginal, so
// no tables are involved. The coordinate distribution differs from
// SphereN (cylindrical slices are equal-area only on the 2-sphere) but
// every point still has exact unit norm, and the sequence is just as
// deterministic.
//
// k bases produce points with k+1 coordinates, k >= 2; the recursion
// bottoms out in a unit-circle generator.
type CylinN struct {
	vdc   *lds.VdCorput
	inner Gen
}

// NewCylinN creates a cylindrical generator from at least 2 bases.
// Returns ErrTooFewBases for a shorter list and lds.ErrBaseTooSmall for
// an invalid base.
func NewCylinN(bases []int) (*CylinN, error) {
	if len(bases) < 2 {
		return nil, ErrTooFewBases
	}

	vdc, err := lds.NewVdCorput(bases[0])
	if err != nil {
		return nil, err
	}

	var inner Gen
	if len(bases) == 2 {
		inner, err = newCircleWrap(bases[1])
	} else {
		inner, err = NewCylinN(bases[1:])
	}
	if err != nil {
		return nil, err
	}

	return &CylinN{vdc: vdc, inner: inner}, nil
}

// Pop returns the next point on the unit sphere of dimension len(bases).
func (g *CylinN) Pop() []float64 {
	cosphi := 2*g.vdc.Pop() - 1 // map [0,1) to [-1, 1)
	sinphi := math.Sqrt(1 - cosphi*cosphi)

	pt := g.inner.Pop()
	floats.Scale(sinphi, pt)
	return append(pt, cosphi)
}

// Reseed repositions the own stream and, recursively, every inner stream
// to seed.
func (g *CylinN) Reseed(seed uint64) {
	g.vdc.Reseed(seed)
	g.inner.Reseed(seed)
}
