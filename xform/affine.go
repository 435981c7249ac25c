package xform

import "github.com/ome-ngff/coordspace/matrix"

// Affine applies an m x n linear map M followed by a translation t of
// length m: buf = M*pt + t.
type Affine struct {
	m *matrix.Dense
	t []float64
}

// NewAffine builds an Affine from a linear part M and a translation t.
// len(t) must equal M.Rows(), and every component of t must be finite.
func NewAffine(m *matrix.Dense, t []float64) (*Affine, error) {
	if m == nil {
		return nil, ErrDimensionMismatch
	}
	if len(t) != m.Rows() {
		return nil, ErrDimensionMismatch
	}
	if !allFinite(t) {
		return nil, ErrNonFinite
	}
	cp := make([]float64, len(t))
	copy(cp, t)

	return &Affine{m: m, t: cp}, nil
}

// NewAffineFromAugmented builds an Affine from an (m+1) x (n+1) augmented
// matrix laid out as [[M, t], [0...0, 1]]: the last row is dropped and the
// last column of the remaining rows becomes the translation.
func NewAffineFromAugmented(aug *matrix.Dense) (*Affine, error) {
	if aug == nil {
		return nil, ErrDimensionMismatch
	}
	rows, cols := aug.Rows(), aug.Cols()
	if rows < 2 || cols < 2 {
		return nil, ErrDimensionMismatch
	}
	m := rows - 1
	n := cols - 1
	linear, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	t := make([]float64, m)
	for r := 0; r < m; r++ {
		for c := 0; c < n; c++ {
			v, _ := aug.At(r, c)
			_ = matrix.SetForBuild(linear, r, c, v)
		}
		last, _ := aug.At(r, n)
		t[r] = last
	}

	return NewAffine(linear, t)
}

// NewAffineFromTranslated builds an Affine from an m x (n+1) matrix whose
// last column is the translation and whose remaining columns are the
// linear part.
func NewAffineFromTranslated(m *matrix.Dense) (*Affine, error) {
	if m == nil {
		return nil, ErrDimensionMismatch
	}
	rows, cols := m.Rows(), m.Cols()
	if cols < 2 {
		return nil, ErrDimensionMismatch
	}
	n := cols - 1
	linear, err := matrix.NewDense(rows, n)
	if err != nil {
		return nil, err
	}
	t := make([]float64, rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < n; c++ {
			v, _ := m.At(r, c)
			_ = matrix.SetForBuild(linear, r, c, v)
		}
		last, _ := m.At(r, n)
		t[r] = last
	}

	return NewAffine(linear, t)
}

// InputNdim implements Transform.
func (t *Affine) InputNdim() int { return t.m.Cols() }

// OutputNdim implements Transform.
func (t *Affine) OutputNdim() int { return t.m.Rows() }

// ApplyPoint computes buf = M*pt + t.
func (t *Affine) ApplyPoint(pt, buf []float64) {
	if len(pt) != t.m.Cols() {
		panicLen("Affine.ApplyPoint", "pt", len(pt), t.m.Cols())
	}
	if len(buf) != t.m.Rows() {
		panicLen("Affine.ApplyPoint", "buf", len(buf), t.m.Rows())
	}
	t.m.MatmulInto(pt, buf)
	for i, v := range t.t {
		buf[i] += v
	}
}

// ApplyBulk loops ApplyPoint.
func (t *Affine) ApplyBulk(pts, bufs [][]float64) { applyBulkViaPoint(t, pts, bufs) }

// ApplyColumns computes outCols = M*cols + t via the matrix's transposed
// batch kernel, then adds t[r] to every sample of output row r.
func (t *Affine) ApplyColumns(cols, outCols [][]float64) {
	if len(cols) != t.m.Cols() {
		panicLen("Affine.ApplyColumns", "cols", len(cols), t.m.Cols())
	}
	if len(outCols) != t.m.Rows() {
		panicLen("Affine.ApplyColumns", "outCols", len(outCols), t.m.Rows())
	}
	t.m.MatmulTransposedInto(cols, outCols)
	for r, shift := range t.t {
		dst := outCols[r]
		for i := range dst {
			dst[i] += shift
		}
	}
}

// Invert returns the partitioned inverse (M^-1, -M^-1*t) when M is square
// and non-singular, and (nil, false) when M is non-square or singular.
// Invert's contract is a bool, never an error.
func (t *Affine) Invert() (Transform, bool) {
	if t.m.Rows() != t.m.Cols() {
		return nil, false
	}
	inv, err := matrix.Inverse(t.m)
	if err != nil {
		return nil, false
	}
	negT := make([]float64, len(t.t))
	for i, v := range t.t {
		negT[i] = -v
	}
	newT := make([]float64, len(t.t))
	inv.MatmulInto(negT, newT)

	return &Affine{m: inv, t: newT}, true
}

// IsIdentity reports whether t is all-zero and M is exactly the identity
// matrix.
func (t *Affine) IsIdentity() bool {
	for _, v := range t.t {
		if v != 0 {
			return false
		}
	}

	return t.m.IsIdentity()
}
