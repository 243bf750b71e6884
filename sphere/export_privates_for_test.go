package sphere

// Test-Bridge (White-Box) for the Shared Tables
//
// Purpose:
//   - Expose the unexported table machinery to sphere_test ONLY, so the
//     cache-consistency and boundary properties can be verified without
//     widening the production API.
//
// Provided Surface:
//   - MapTable_TestOnly: pass-through to the dimension-table cache.
//   - AngleDomain_TestOnly / Antiderivative_TestOnly: copies of the fixed
//     sampling arrays.
//   - TableSize_TestOnly: the compile-time sample count.

// TableSize_TestOnly mirrors the tableSize constant for tests.
const TableSize_TestOnly = tableSize

// MapTable_TestOnly forwards to the private mapTable cache.
func MapTable_TestOnly(n int) []float64 {
	return mapTable(n)
}

// AngleDomain_TestOnly returns a copy of the fixed angle abscissas x.
func AngleDomain_TestOnly() []float64 {
	return append([]float64(nil), sphereTables().x...)
}

// Antiderivative_TestOnly returns a copy of the derived f2 table.
func Antiderivative_TestOnly() []float64 {
	return append([]float64(nil), sphereTables().f2...)
}
