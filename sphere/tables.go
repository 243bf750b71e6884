package sphere

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// tableSize is the number of samples of the angular domain [0, π],
// endpoints included. 300 keeps interpolation error well below the 1e-10
// unit-norm tolerance while the tables stay a few kilobytes.
const tableSize = 300

const halfPi = math.Pi / 2

// angleTables holds the fixed sampling of the angular mapping function:
// the abscissas x, the elementwise -cos x and sin x, and the derived
// antiderivative f2 = (x - cos x · sin x)/2 that inverts the polar-angle
// distribution of the 2-sphere case. Built once, immutable afterwards,
// shared by reference across every generator in the process.
type angleTables struct {
	x      []float64
	negCos []float64
	sin    []float64
	f2     []float64
}

var (
	tablesOnce sync.Once
	tables     *angleTables
)

// sphereTables returns the process-wide angle tables, building them on
// first use. sync.Once guarantees exactly one build under concurrent
// first access; afterwards reads are lock-free.
func sphereTables() *angleTables {
	tablesOnce.Do(func() {
		t := &angleTables{
			x:      floats.Span(make([]float64, tableSize), 0, math.Pi),
			negCos: make([]float64, tableSize),
			sin:    make([]float64, tableSize),
			f2:     make([]float64, tableSize),
		}
		for i, xi := range t.x {
			sin, cos := math.Sincos(xi)
			t.negCos[i] = -cos
			t.sin[i] = sin
			t.f2[i] = (xi - cos*sin) / 2
		}
		tables = t
	})
	return tables
}

var (
	tpMu    sync.Mutex
	tpCache [][]float64
)

// mapTable returns DimensionTable(n): the inverse-CDF table for the
// (n+1)-sphere's polar angle. Missing entries 0..n are built in order on
// demand, because row n depends on row n-2; existing entries are never
// recomputed and never mutated, the cache only grows. The caller gets a
// fresh copy, so nothing can alias the shared rows.
//
// Safe for concurrent use: one mutex guards the (cold, amortized-once)
// growth path and the lookup.
func mapTable(n int) []float64 {
	t := sphereTables()

	tpMu.Lock()
	defer tpMu.Unlock()

	for len(tpCache) <= n {
		var tp []float64
		switch m := len(tpCache); m {
		case 0:
			tp = append([]float64(nil), t.x...)
		case 1:
			tp = append([]float64(nil), t.negCos...)
		default:
			prev := tpCache[m-2]
			tp = make([]float64, tableSize)
			for i := range tp {
				tp[i] = (float64(m-1)*prev[i] + t.negCos[i]*math.Pow(t.sin[i], float64(m-1))) / float64(m)
			}
		}
		tpCache = append(tpCache, tp)
	}

	return append([]float64(nil), tpCache[n]...)
}
