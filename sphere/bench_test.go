package sphere_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/lds"
	"github.com/katalvlaran/lvlseq/sphere"
)

// benchmarkSphereN is a helper that benchmarks Pop for a generator over
// the first k+1 primes. Construction and table warm-up stay outside the
// timed loop.
func benchmarkSphereN(b *testing.B, k int) {
	sgen, err := sphere.New(lds.PrimeTable[:k+1])
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	sgen.Reseed(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sgen.Pop()
	}
}

// BenchmarkSphereN_Pop3 benchmarks the smallest recursive generator (4 coordinates).
func BenchmarkSphereN_Pop3(b *testing.B) { benchmarkSphereN(b, 2) }

// BenchmarkSphereN_Pop5 benchmarks a 6-coordinate generator (3 recursion levels).
func BenchmarkSphereN_Pop5(b *testing.B) { benchmarkSphereN(b, 5) }

// BenchmarkSphereN_Pop10 benchmarks an 11-coordinate generator (8 recursion levels).
func BenchmarkSphereN_Pop10(b *testing.B) { benchmarkSphereN(b, 10) }

// BenchmarkSphereN_New measures construction cost with a warm table cache,
// which is the steady-state cost of spinning up per-goroutine generators.
func BenchmarkSphereN_New(b *testing.B) {
	bases := lds.PrimeTable[:8]
	if _, err := sphere.New(bases); err != nil { // warm the cache
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sphere.New(bases); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkCylinN_Pop5 benchmarks the table-free cylindrical variant at a
// comparable dimension.
func BenchmarkCylinN_Pop5(b *testing.B) {
	cgen, err := sphere.NewCylinN(lds.PrimeTable[:5])
	if err != nil {
		b.Fatalf("NewCylinN failed: %v", err)
	}
	cgen.Reseed(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cgen.Pop()
	}
}
