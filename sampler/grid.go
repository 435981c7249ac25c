package sampler

// strides computes, for a row-major (last-dimension-fastest) enumeration of
// shape, the number of samples each dimension's index must advance by.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for d := len(shape) - 1; d >= 0; d-- {
		s[d] = acc
		acc *= shape[d]
	}

	return s
}

func total(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}

	return n
}

// RowBaseCoords materializes the cartesian product of 0..shape[d], one
// []float64 point per sample, in lexicographic order (the last dimension
// varies fastest).
func RowBaseCoords(shape []int) [][]float64 {
	n := total(shape)
	str := strides(shape)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		pt := make([]float64, len(shape))
		for d := range shape {
			pt[d] = float64((i / str[d]) % shape[d])
		}
		out[i] = pt
	}

	return out
}

// ColumnBaseCoords materializes the same cartesian product and enumeration
// order as RowBaseCoords, but packed one []float64 slice per dimension
// (struct-of-arrays) instead of one slice per sample.
func ColumnBaseCoords(shape []int) [][]float64 {
	n := total(shape)
	str := strides(shape)
	out := make([][]float64, len(shape))
	for d := range shape {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = float64((i / str[d]) % shape[d])
		}
		out[d] = col
	}

	return out
}
