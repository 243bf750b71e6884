package ilds

import "errors"

var (
	// ErrBaseTooSmall is returned when a sequence base is below 2.
	ErrBaseTooSmall = errors.New("ilds: base must be at least 2")

	// ErrBadScale is returned when the digit window is not positive.
	ErrBadScale = errors.New("ilds: scale must be at least 1")
)

// vdcI reverses the lowest `scale` base-b digits of k and returns the
// result as an integer in [0, base^scale).
//
// Complexity: O(scale).
func vdcI(k, base uint64, scale int) uint64 {
	var res, factor uint64
	factor = 1
	for i := 0; i < scale; i++ {
		factor *= base
	}
	for k != 0 {
		remainder := k % base
		factor /= base
		k /= base
		res += remainder * factor
	}
	return res
}

// VdCorput generates the integer Van der Corput sequence over a fixed base
// and digit window.
//
// Example:
//
//	vgen, _ := ilds.NewVdCorput(2, 10)
//	v := vgen.Pop() // 512, the reversal of 1 within 10 binary digits
type VdCorput struct {
	count uint64
	base  uint64
	scale int
}

// NewVdCorput creates an integer Van der Corput generator reversing scale
// digits in the given base. Returns ErrBaseTooSmall for base < 2 and
// ErrBadScale for scale < 1.
func NewVdCorput(base, scale int) (*VdCorput, error) {
	if base < 2 {
		return nil, ErrBaseTooSmall
	}
	if scale < 1 {
		return nil, ErrBadScale
	}
	return &VdCorput{base: uint64(base), scale: scale}, nil
}

// Pop advances the sequence position by one and returns the integer value
// there, in [0, base^scale).
func (v *VdCorput) Pop() uint64 {
	v.count++
	return vdcI(v.count, v.base, v.scale)
}

// Reseed sets the sequence position to seed absolutely.
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}

// Halton generates the 2-dimensional integer Halton sequence: two integer
// Van der Corput streams with independent bases and digit windows.
type Halton struct {
	vdc0 *VdCorput
	vdc1 *VdCorput
}

// NewHalton creates an integer Halton generator from per-coordinate bases
// and scales.
func NewHalton(bases, scales [2]int) (*Halton, error) {
	vdc0, err := NewVdCorput(bases[0], scales[0])
	if err != nil {
		return nil, err
	}
	vdc1, err := NewVdCorput(bases[1], scales[1])
	if err != nil {
		return nil, err
	}
	return &Halton{vdc0: vdc0, vdc1: vdc1}, nil
}

// Pop returns the next integer point of the sequence.
func (h *Halton) Pop() [2]uint64 {
	return [2]uint64{h.vdc0.Pop(), h.vdc1.Pop()}
}

// Reseed repositions both underlying streams to seed.
func (h *Halton) Reseed(seed uint64) {
	h.vdc0.Reseed(seed)
	h.vdc1.Reseed(seed)
}
