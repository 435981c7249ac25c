package resample

// Const adapts a BoundedIndex[T] into a total UnboundedIndex[T] by
// substituting a fixed default value for any out-of-bounds coordinate.
type Const[T any] struct {
	inner   BoundedIndex[T]
	extents []int
	def     T
}

// NewConst wraps inner, falling back to def for coordinates outside
// inner.Extents().
func NewConst[T any](inner BoundedIndex[T], def T) *Const[T] {
	return &Const[T]{inner: inner, extents: inner.Extents(), def: def}
}

// Ndim implements UnboundedIndex.
func (c *Const[T]) Ndim() int { return len(c.extents) }

func (c *Const[T]) inBounds(coord []int) bool {
	if len(coord) != len(c.extents) {
		return false
	}
	for d, v := range coord {
		if v < 0 || v >= c.extents[d] {
			return false
		}
	}

	return true
}

// Get implements UnboundedIndex: in-bounds coordinates delegate to inner,
// everything else returns the default value.
func (c *Const[T]) Get(coord []int) T {
	if !c.inBounds(coord) {
		return c.def
	}

	return c.inner.GetUnchecked(coord)
}

// BulkGet partitions coords into in-bounds and out-of-bounds groups, routes
// the in-bounds group to inner.BulkGetUnchecked in a single call, and fills
// the default value everywhere else.
func (c *Const[T]) BulkGet(coords [][]int, out []T) {
	var inBoundsCoords [][]int
	var positions []int
	for i, coord := range coords {
		if c.inBounds(coord) {
			inBoundsCoords = append(inBoundsCoords, coord)
			positions = append(positions, i)
		} else {
			out[i] = c.def
		}
	}
	if len(inBoundsCoords) == 0 {
		return
	}
	scratch := make([]T, len(inBoundsCoords))
	c.inner.BulkGetUnchecked(inBoundsCoords, scratch)
	for j, pos := range positions {
		out[pos] = scratch[j]
	}
}

// ColumnGet is the column-major analogue of BulkGet: each sample's
// per-sample in-bounds flag is computed from the column slices, in-bounds
// samples are compacted into per-dimension column scratch buffers and
// routed to inner.ColumnGetUnchecked in one call, and the default value
// fills the rest.
func (c *Const[T]) ColumnGet(cols [][]int, out []T) {
	ndim := len(cols)
	if ndim == 0 {
		return
	}
	n := len(cols[0])
	var positions []int
	for i := 0; i < n; i++ {
		coord := make([]int, ndim)
		for d := 0; d < ndim; d++ {
			coord[d] = cols[d][i]
		}
		if c.inBounds(coord) {
			positions = append(positions, i)
		} else {
			out[i] = c.def
		}
	}
	if len(positions) == 0 {
		return
	}
	scratchCols := make([][]int, ndim)
	for d := 0; d < ndim; d++ {
		scratchCols[d] = make([]int, len(positions))
		for j, pos := range positions {
			scratchCols[d][j] = cols[d][pos]
		}
	}
	scratchOut := make([]T, len(positions))
	c.inner.ColumnGetUnchecked(scratchCols, scratchOut)
	for j, pos := range positions {
		out[pos] = scratchOut[j]
	}
}
