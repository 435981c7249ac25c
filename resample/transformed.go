package resample

import "github.com/ome-ngff/coordspace/xform"

// Transformed adapts one RealIndex[T] into another by pre-composing an
// xform.Transform: Get(pt) delegates to inner.Get(t.ApplyPoint(pt)). Its
// advertised Ndim is the transform's input dimensionality, not inner's.
type Transformed[T any] struct {
	inner RealIndex[T]
	t     xform.Transform
}

// NewTransformed wraps inner behind t. t.OutputNdim() must equal
// inner.Ndim().
func NewTransformed[T any](inner RealIndex[T], t xform.Transform) (*Transformed[T], error) {
	if t.OutputNdim() != inner.Ndim() {
		return nil, ErrNdimMismatch
	}

	return &Transformed[T]{inner: inner, t: t}, nil
}

// Ndim implements RealIndex: the transform's input dimensionality.
func (tr *Transformed[T]) Ndim() int { return tr.t.InputNdim() }

// Get implements RealIndex.
func (tr *Transformed[T]) Get(coord []float64) T {
	out := make([]float64, tr.t.OutputNdim())
	tr.t.ApplyPoint(coord, out)

	return tr.inner.Get(out)
}

// BulkGet materializes a packed scratch batch via the transform's bulk
// form, then calls inner's bulk form once.
func (tr *Transformed[T]) BulkGet(coords [][]float64, out []T) {
	scratch := make([][]float64, len(coords))
	for i := range scratch {
		scratch[i] = make([]float64, tr.t.OutputNdim())
	}
	tr.t.ApplyBulk(coords, scratch)
	tr.inner.BulkGet(scratch, out)
}

// ColumnGet materializes a packed scratch 2D buffer via the transform's
// column form, then calls inner's column form once.
func (tr *Transformed[T]) ColumnGet(cols [][]float64, out []T) {
	k := 0
	if len(cols) > 0 {
		k = len(cols[0])
	}
	scratchCols := make([][]float64, tr.t.OutputNdim())
	for d := range scratchCols {
		scratchCols[d] = make([]float64, k)
	}
	tr.t.ApplyColumns(cols, scratchCols)
	tr.inner.ColumnGet(scratchCols, out)
}
