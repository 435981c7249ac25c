// SPDX-License-Identifier: MIT
package matrix

// lu performs Doolittle LU decomposition on a square Dense: m = L*U, with L
// unit lower-triangular. No partial pivoting is performed; a zero pivot is
// reported as ErrSingular rather than silently producing Inf/NaN.
// Complexity: O(n^3) time, O(n^2) space for L and U.
func lu(m *Dense) (l, u *Dense, err error) {
	if m.rows != m.cols {
		return nil, nil, ErrNonSquare
	}
	n := m.rows
	l, err = NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	u, err = NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		l.data[i*n+i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = m.data[i*n+j] - sum
		}
		pivot := u.data[i*n+i]
		if pivot == 0 {
			return nil, nil, ErrSingular
		}
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (m.data[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// GeneralDeterminant computes det(m) for any square size via LU
// decomposition (no pivoting, so only exact when no zero pivot occurs).
// This is a reference implementation, exercised by this package's tests;
// unlike Determinant it accepts matrices larger than 3x3. Production
// Rotation validation uses the closed forms in Determinant instead.
func GeneralDeterminant(m *Dense) (float64, error) {
	_, u, err := lu(m)
	if err != nil {
		return 0, err
	}
	det := 1.0
	n := u.rows
	for i := 0; i < n; i++ {
		det *= u.data[i*n+i]
	}

	return det, nil
}

// Inverse computes m^-1 via LU-based forward/back substitution, solving
// m*X = I column by column. No pivoting is performed; a zero pivot yields
// ErrSingular.
func Inverse(m *Dense) (*Dense, error) {
	l, u, err := lu(m)
	if err != nil {
		return nil, err
	}
	n := m.rows
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	col := make([]float64, n)
	y := make([]float64, n)
	x := make([]float64, n)
	for k := 0; k < n; k++ {
		for i := range col {
			col[i] = 0
		}
		col[k] = 1

		// Forward substitution: L*y = col (L unit lower-triangular).
		for i := 0; i < n; i++ {
			sum := col[i]
			for j := 0; j < i; j++ {
				sum -= l.data[i*n+j] * y[j]
			}
			y[i] = sum
		}
		// Back substitution: U*x = y.
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for j := i + 1; j < n; j++ {
				sum -= u.data[i*n+j] * x[j]
			}
			pivot := u.data[i*n+i]
			if pivot == 0 {
				return nil, ErrSingular
			}
			x[i] = sum / pivot
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+k] = x[i]
		}
	}

	return inv, nil
}
