package lds

// Halton generates the 2-dimensional Halton sequence: two Van der Corput
// streams over distinct bases advanced in lockstep. With coprime bases the
// points fill the unit square evenly.
//
// Example:
//
//	hgen, _ := lds.NewHalton(2, 3)
//	p := hgen.Pop() // [0.5, 0.333...]
type Halton struct {
	vdc0 *VdCorput
	vdc1 *VdCorput
}

// NewHalton creates a Halton generator over the pair (base0, base1).
// Returns ErrBaseTooSmall if either base is below 2.
func NewHalton(base0, base1 int) (*Halton, error) {
	vdc0, err := NewVdCorput(base0)
	if err != nil {
		return nil, err
	}
	vdc1, err := NewVdCorput(base1)
	if err != nil {
		return nil, err
	}
	return &Halton{vdc0: vdc0, vdc1: vdc1}, nil
}

// Pop returns the next point of the sequence, both coordinates in [0,1).
func (h *Halton) Pop() [2]float64 {
	return [2]float64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed repositions both underlying streams to seed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}

// HaltonN generates the n-dimensional Halton sequence over an arbitrary
// base list, one Van der Corput stream per coordinate.
type HaltonN struct {
	vdcs []*VdCorput
}

// NewHaltonN creates a HaltonN generator with one stream per entry of
// bases. Returns ErrNoBases for an empty list and ErrBaseTooSmall if any
// base is below 2.
func NewHaltonN(bases []int) (*HaltonN, error) {
	if len(bases) == 0 {
		return nil, ErrNoBases
	}
	vdcs := make([]*VdCorput, len(bases))
	for i, b := range bases {
		vdc, err := NewVdCorput(b)
		if err != nil {
			return nil, err
		}
		vdcs[i] = vdc
	}
	return &HaltonN{vdcs: vdcs}, nil
}

// Pop returns the next point as a freshly allocated slice of len(bases)
// coordinates, each in [0,1).
func (h *HaltonN) Pop() []float64 {
	res := make([]float64, len(h.vdcs))
	for i, vdc := range h.vdcs {
		res[i] = vdc.Pop()
	}
	return res
}

// Reseed repositions every underlying stream to seed.
func (h *HaltonN) Reseed(seed uint64) {
	for _, vdc := range h.vdcs {
		vdc.Reseed(seed)
	}
}
