// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// OrthonormalTolerance is the absolute tolerance used by HasOrthonormalRows
// and by Rotation construction to validate row magnitude and pairwise
// orthogonality.
const OrthonormalTolerance = 1e-10

// MatmulInto computes y = M*x, clearing y first.
// len(x) must equal m.Cols(); len(y) must equal m.Rows(). Mismatched
// lengths panic: this is a performance contract, not a validation
// boundary, matching every apply_point-style hot path in this module.
func (m *Dense) MatmulInto(x, y []float64) {
	if len(x) != m.cols {
		panic(fmt.Sprintf("matrix: MatmulInto: len(x)=%d != cols=%d", len(x), m.cols))
	}
	if len(y) != m.rows {
		panic(fmt.Sprintf("matrix: MatmulInto: len(y)=%d != rows=%d", len(y), m.rows))
	}

	for r := 0; r < m.rows; r++ {
		var sum float64
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			sum += m.data[base+c] * x[c]
		}
		y[r] = sum
	}
}

// MatmulTransposedInto computes, for each output row r, outColumns[r] = sum
// over input columns c of M[r,c] * columns[c], i.e. a batch of samples in
// columnar (struct-of-arrays) layout. len(columns) must equal m.Cols() and
// len(outColumns) must equal m.Rows(); every inner slice in both arguments
// must share the same sample count k. This is the hot loop of the package:
// the inner loop walks two same-length buffers with a scalar multiplier,
// the primary SIMD opportunity in the design.
func (m *Dense) MatmulTransposedInto(columns [][]float64, outColumns [][]float64) {
	if len(columns) != m.cols {
		panic(fmt.Sprintf("matrix: MatmulTransposedInto: len(columns)=%d != cols=%d", len(columns), m.cols))
	}
	if len(outColumns) != m.rows {
		panic(fmt.Sprintf("matrix: MatmulTransposedInto: len(outColumns)=%d != rows=%d", len(outColumns), m.rows))
	}

	for r := 0; r < m.rows; r++ {
		out := outColumns[r]
		for i := range out {
			out[i] = 0
		}
		base := r * m.cols
		for c := 0; c < m.cols; c++ {
			coef := m.data[base+c]
			if coef == 0 {
				continue
			}
			col := columns[c]
			for i, v := range col {
				out[i] += coef * v
			}
		}
	}
}

// HasOrthonormalRows reports whether every row has unit magnitude and every
// pair of distinct rows is orthogonal, each within OrthonormalTolerance.
// Requires a square matrix; non-square matrices are never orthonormal.
func (m *Dense) HasOrthonormalRows() bool {
	if m.rows != m.cols {
		return false
	}
	rows := make([][]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		rows[r] = m.data[r*m.cols : (r+1)*m.cols]
	}
	for r := 0; r < m.rows; r++ {
		mag := math.Sqrt(floats.Dot(rows[r], rows[r]))
		if !floats.EqualWithinAbs(mag, 1.0, OrthonormalTolerance) {
			return false
		}
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.rows; j++ {
			if !floats.EqualWithinAbs(floats.Dot(rows[i], rows[j]), 0.0, OrthonormalTolerance) {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports whether m is square with diagonal entries exactly 1.0
// and off-diagonal entries exactly 0.0. No tolerance: this is the cheap,
// exact case every "is this definitely the identity" check relies on.
func (m *Dense) IsIdentity() bool {
	if m.rows != m.cols {
		return false
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			v := m.data[r*m.cols+c]
			if r == c {
				if v != 1.0 {
					return false
				}
			} else if v != 0.0 {
				return false
			}
		}
	}

	return true
}

// Determinant computes the determinant for 1x1, 2x2, and 3x3 matrices in
// closed form — all Rotation validation ever needs. Larger matrices return
// ErrDimensionTooLarge rather than a general Laplace expansion, which is
// numerically unsound above 3D; see GeneralDeterminant for an LU-based
// alternative used only by tests.
func (m *Dense) Determinant() (float64, error) {
	if m.rows != m.cols {
		return 0, ErrNonSquare
	}
	a := m.data
	switch m.rows {
	case 1:
		return a[0], nil
	case 2:
		return a[0]*a[3] - a[1]*a[2], nil
	case 3:
		return a[0]*(a[4]*a[8]-a[5]*a[7]) -
			a[1]*(a[3]*a[8]-a[5]*a[6]) +
			a[2]*(a[3]*a[7]-a[4]*a[6]), nil
	default:
		return 0, ErrDimensionTooLarge
	}
}
