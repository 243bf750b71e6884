package lds

// vdc computes the Van der Corput value for index k in the given base:
// the base-b digits of k, reversed and read as a fraction in [0,1).
//
// Complexity: O(log_base k).
func vdc(k, base uint64) float64 {
	var res, denom float64
	denom = 1
	for k != 0 {
		remainder := k % base
		denom *= float64(base)
		k /= base
		res += float64(remainder) / denom
	}
	return res
}

// VdCorput generates the Van der Corput sequence for a fixed base.
//
// The generator is a plain counter: Pop advances it by one and returns the
// digit-reversal value of the new position, so the output is a pure
// deterministic function of (position, base). It is NOT goroutine-safe;
// wrap shared instances in a caller-side mutex or create one per goroutine.
//
// Example:
//
//	vgen, _ := lds.NewVdCorput(2)
//	vgen.Reseed(10)
//	v := vgen.Pop() // 0.8125, the value at position 11 in base 2
type VdCorput struct {
	count uint64
	base  uint64
}

// NewVdCorput creates a Van der Corput generator over base.
// Returns ErrBaseTooSmall if base < 2.
func NewVdCorput(base int) (*VdCorput, error) {
	if base < 2 {
		return nil, ErrBaseTooSmall
	}
	return &VdCorput{base: uint64(base)}, nil
}

// Pop advances the sequence position by one and returns the value there,
// always in [0,1).
func (v *VdCorput) Pop() float64 {
	v.count++
	return vdc(v.count, v.base)
}

// Reseed sets the sequence position to seed absolutely: the next Pop
// returns the value at position seed+1, exactly as if a fresh generator
// had popped seed+1 times.
func (v *VdCorput) Reseed(seed uint64) {
	v.count = seed
}
