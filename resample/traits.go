package resample

// BoundedIndex is a partial function from an n-dimensional non-negative
// integer coordinate to a sample of type T, undefined (Get returns false)
// outside Extents().
type BoundedIndex[T any] interface {
	// Extents returns the size of each dimension. len(Extents()) is the
	// coordinate's required length.
	Extents() []int

	// Get returns the sample at coord and true, or the zero value and
	// false if coord is out of bounds.
	Get(coord []int) (T, bool)

	// GetUnchecked returns the sample at coord without bounds checking.
	// Callers must have already validated coord against Extents().
	GetUnchecked(coord []int) T

	// BulkGetUnchecked fills out[i] with the sample at coords[i], for
	// coords already known to be in bounds.
	BulkGetUnchecked(coords [][]int, out []T)

	// ColumnGetUnchecked fills out[i] with the sample at the coordinate
	// formed by cols[d][i] for each dimension d, for coordinates already
	// known to be in bounds.
	ColumnGetUnchecked(cols [][]int, out []T)
}

// UnboundedIndex is a total function from an n-dimensional signed integer
// coordinate (which may be negative or exceed any notion of bounds) to a
// sample of type T.
type UnboundedIndex[T any] interface {
	// Ndim is the coordinate dimensionality this index accepts.
	Ndim() int

	// Get returns the sample at coord.
	Get(coord []int) T

	// BulkGet fills out[i] with the sample at coords[i].
	BulkGet(coords [][]int, out []T)

	// ColumnGet fills out[i] with the sample at the coordinate formed by
	// cols[d][i] for each dimension d.
	ColumnGet(cols [][]int, out []T)
}

// RealIndex is a total function from an n-dimensional floating-point
// coordinate to a sample of type T.
type RealIndex[T any] interface {
	// Ndim is the coordinate dimensionality this index accepts.
	Ndim() int

	// Get returns the sample at coord.
	Get(coord []float64) T

	// BulkGet fills out[i] with the sample at coords[i].
	BulkGet(coords [][]float64, out []T)

	// ColumnGet fills out[i] with the sample at the coordinate formed by
	// cols[d][i] for each dimension d.
	ColumnGet(cols [][]float64, out []T)
}

// boundedBulkUncheckedViaGet is the naive BulkGetUnchecked: loop
// GetUnchecked. Array uses it directly since there is no cheaper batch path
// over a flat slice.
func boundedBulkUncheckedViaGet[T any](idx BoundedIndex[T], coords [][]int, out []T) {
	for i, c := range coords {
		out[i] = idx.GetUnchecked(c)
	}
}

// boundedColumnUncheckedViaGet is the naive ColumnGetUnchecked: reconstruct
// each sample's coordinate from the column slices and loop GetUnchecked.
func boundedColumnUncheckedViaGet[T any](idx BoundedIndex[T], cols [][]int, out []T) {
	ndim := len(cols)
	if ndim == 0 {
		return
	}
	n := len(cols[0])
	coord := make([]int, ndim)
	for i := 0; i < n; i++ {
		for d := 0; d < ndim; d++ {
			coord[d] = cols[d][i]
		}
		out[i] = idx.GetUnchecked(coord)
	}
}

// unboundedBulkViaGet is the naive UnboundedIndex.BulkGet: loop Get.
func unboundedBulkViaGet[T any](idx UnboundedIndex[T], coords [][]int, out []T) {
	for i, c := range coords {
		out[i] = idx.Get(c)
	}
}

// unboundedColumnViaGet is the naive UnboundedIndex.ColumnGet.
func unboundedColumnViaGet[T any](idx UnboundedIndex[T], cols [][]int, out []T) {
	ndim := len(cols)
	if ndim == 0 {
		return
	}
	n := len(cols[0])
	coord := make([]int, ndim)
	for i := 0; i < n; i++ {
		for d := 0; d < ndim; d++ {
			coord[d] = cols[d][i]
		}
		out[i] = idx.Get(coord)
	}
}

// realBulkViaGet is the naive RealIndex.BulkGet: loop Get.
func realBulkViaGet[T any](idx RealIndex[T], coords [][]float64, out []T) {
	for i, c := range coords {
		out[i] = idx.Get(c)
	}
}

// realColumnViaGet is the naive RealIndex.ColumnGet.
func realColumnViaGet[T any](idx RealIndex[T], cols [][]float64, out []T) {
	ndim := len(cols)
	if ndim == 0 {
		return
	}
	n := len(cols[0])
	coord := make([]float64, ndim)
	for i := 0; i < n; i++ {
		for d := 0; d < ndim; d++ {
			coord[d] = cols[d][i]
		}
		out[i] = idx.Get(coord)
	}
}
