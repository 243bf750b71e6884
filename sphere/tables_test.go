package sphere_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlseq/sphere"
)

// TestMapTable_BaseRows pins the first two rows of the recurrence: row 0
// is the angle domain itself, row 1 is -cos over it.
func TestMapTable_BaseRows(t *testing.T) {
	tp0 := sphere.MapTable_TestOnly(0)
	require.Len(t, tp0, sphere.TableSize_TestOnly)
	assert.InDelta(t, 0.0, tp0[0], 1e-12, "row 0 starts at 0")
	assert.InDelta(t, math.Pi, tp0[len(tp0)-1], 1e-12, "row 0 ends at π")

	tp1 := sphere.MapTable_TestOnly(1)
	require.Len(t, tp1, sphere.TableSize_TestOnly)
	assert.InDelta(t, -1.0, tp1[0], 1e-12, "row 1 starts at -cos 0")
	assert.InDelta(t, 1.0, tp1[len(tp1)-1], 1e-12, "row 1 ends at -cos π")
}

// TestMapTable_RowTwoIsAntiderivative verifies that the recurrence at n=2
// reproduces the f2 table, which is why the terminal sphere case needs no
// special handling in SphereN.
func TestMapTable_RowTwoIsAntiderivative(t *testing.T) {
	tp2 := sphere.MapTable_TestOnly(2)
	f2 := sphere.Antiderivative_TestOnly()
	require.Len(t, tp2, len(f2))
	for i := range tp2 {
		require.InDelta(t, f2[i], tp2[i], 1e-12, "row 2 differs from f2 at index %d", i)
	}
}

// TestMapTable_RowsAreMonotoneAndFinite checks every cached row up to a
// deep dimension: length 300, finite values, non-decreasing, and strictly
// increasing endpoints (the span the generator divides by).
func TestMapTable_RowsAreMonotoneAndFinite(t *testing.T) {
	for n := 0; n <= 20; n++ {
		tp := sphere.MapTable_TestOnly(n)
		require.Len(t, tp, sphere.TableSize_TestOnly, "row %d length", n)
		for i, v := range tp {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "row %d index %d not finite", n, i)
			if i > 0 {
				require.GreaterOrEqual(t, v, tp[i-1], "row %d must be non-decreasing at %d", n, i)
			}
		}
		require.Greater(t, tp[len(tp)-1], tp[0], "row %d endpoints must strictly increase", n)
	}
}

// TestMapTable_RepeatsAreValueIdentical draws the same row twice and also
// verifies the handed-out copy is detached from the shared cache.
func TestMapTable_RepeatsAreValueIdentical(t *testing.T) {
	a := sphere.MapTable_TestOnly(7)
	b := sphere.MapTable_TestOnly(7)
	assert.Equal(t, a, b, "repeated lookups must be value-identical")

	a[0] = 123456 // scribble on our copy
	c := sphere.MapTable_TestOnly(7)
	assert.Equal(t, b, c, "mutating a returned copy must not leak into the cache")
}

// TestMapTable_ConcurrentAccess hammers the cache from many goroutines
// with overlapping and distinct dimensions, including a cold deep query
// that forces the recurrence to walk from 0 in one go. All results must
// match a serially computed reference.
func TestMapTable_ConcurrentAccess(t *testing.T) {
	const (
		workers = 32
		maxDim  = 16
		deepDim = 40
	)

	ref := make([][]float64, maxDim+1)
	for n := range ref {
		ref[n] = sphere.MapTable_TestOnly(n)
	}

	var wg sync.WaitGroup
	wg.Add(workers + 1)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i <= maxDim; i++ {
				// Stagger the order per worker so lookups and growth interleave.
				n := (i + w) % (maxDim + 1)
				tp := sphere.MapTable_TestOnly(n)
				require.Equal(t, ref[n], tp, "worker %d saw a divergent row %d", w, n)
			}
		}(w)
	}

	// Deep query with no intermediate demand from this goroutine.
	go func() {
		defer wg.Done()
		tp := sphere.MapTable_TestOnly(deepDim)
		require.Len(t, tp, sphere.TableSize_TestOnly)
		require.Greater(t, tp[len(tp)-1], tp[0], "deep row endpoints must strictly increase")
	}()

	wg.Wait()
}

// TestAngleDomain_Shape pins the fixed sampling recipe: 300 evenly spaced
// samples over [0, π] inclusive of both endpoints.
func TestAngleDomain_Shape(t *testing.T) {
	x := sphere.AngleDomain_TestOnly()
	require.Len(t, x, sphere.TableSize_TestOnly)
	assert.Equal(t, 0.0, x[0], "domain starts at 0")
	assert.InDelta(t, math.Pi, x[len(x)-1], 1e-15, "domain ends at π")

	step := math.Pi / float64(len(x)-1)
	for i := 1; i < len(x); i++ {
		require.InDelta(t, step, x[i]-x[i-1], 1e-12, "uneven spacing at index %d", i)
	}
}
