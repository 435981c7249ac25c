package xform

import "github.com/ome-ngff/coordspace/matrix"

// Rotation applies a square matrix R with orthonormal rows and determinant
// +1 (within matrix.OrthonormalTolerance): buf = R*pt.
type Rotation struct {
	r *matrix.Dense
}

// NewRotation validates R (square, orthonormal rows, det +1 within
// tolerance) and returns a Rotation.
func NewRotation(r *matrix.Dense) (*Rotation, error) {
	if r == nil || r.Rows() != r.Cols() {
		return nil, ErrNonSquareMatrix
	}
	if !r.HasOrthonormalRows() {
		return nil, ErrNotOrthonormal
	}
	det, err := r.Determinant()
	if err != nil {
		return nil, err
	}
	if det < 1-matrix.OrthonormalTolerance || det > 1+matrix.OrthonormalTolerance {
		return nil, ErrBadDeterminant
	}

	return &Rotation{r: r}, nil
}

// InputNdim implements Transform.
func (t *Rotation) InputNdim() int { return t.r.Cols() }

// OutputNdim implements Transform.
func (t *Rotation) OutputNdim() int { return t.r.Rows() }

// ApplyPoint computes buf = R*pt.
func (t *Rotation) ApplyPoint(pt, buf []float64) {
	if len(pt) != t.r.Cols() {
		panicLen("Rotation.ApplyPoint", "pt", len(pt), t.r.Cols())
	}
	if len(buf) != t.r.Rows() {
		panicLen("Rotation.ApplyPoint", "buf", len(buf), t.r.Rows())
	}
	t.r.MatmulInto(pt, buf)
}

// ApplyBulk loops ApplyPoint.
func (t *Rotation) ApplyBulk(pts, bufs [][]float64) { applyBulkViaPoint(t, pts, bufs) }

// ApplyColumns computes outCols = R*cols via the matrix's transposed batch
// kernel.
func (t *Rotation) ApplyColumns(cols, outCols [][]float64) {
	if len(cols) != t.r.Cols() {
		panicLen("Rotation.ApplyColumns", "cols", len(cols), t.r.Cols())
	}
	if len(outCols) != t.r.Rows() {
		panicLen("Rotation.ApplyColumns", "outCols", len(outCols), t.r.Rows())
	}
	t.r.MatmulTransposedInto(cols, outCols)
}

// Invert returns Rotation(R^T): for an orthonormal matrix the transpose is
// the inverse.
func (t *Rotation) Invert() (Transform, bool) {
	return &Rotation{r: t.r.Transpose()}, true
}

// IsIdentity reports whether R is exactly the identity matrix.
func (t *Rotation) IsIdentity() bool {
	return t.r.IsIdentity()
}
