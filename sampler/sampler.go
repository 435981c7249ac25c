package sampler

import (
	"github.com/ome-ngff/coordspace/resample"
	"github.com/ome-ngff/coordspace/xform"
)

// Layout selects whether Sampler materializes its base grid (and drives the
// wrapped index) in row-major (array-of-points) or column-major
// (struct-of-arrays) form.
type Layout int

const (
	// RowLayout packs samples as one []float64 point per sample.
	RowLayout Layout = iota

	// ColumnLayout packs samples as one []float64 slice per dimension.
	ColumnLayout
)

// Sampler materializes a regular grid over shape and invokes index's bulk
// or column form across the whole grid in a single call.
type Sampler[T any] struct {
	index       resample.RealIndex[T]
	shape       []int
	layout      Layout
	orientation *xform.Affine
}

// NewSampler builds a Sampler over the given RealIndex, grid shape, and
// layout. shape must be non-empty with every entry positive.
func NewSampler[T any](index resample.RealIndex[T], shape []int, layout Layout) (*Sampler[T], error) {
	if len(shape) == 0 {
		return nil, ErrEmptyShape
	}
	for _, s := range shape {
		if s <= 0 {
			return nil, ErrNonPositiveShape
		}
	}
	cp := make([]int, len(shape))
	copy(cp, shape)

	return &Sampler[T]{index: index, shape: cp, layout: layout}, nil
}

// SetOrientation installs an affine applied once to the base grid before
// every Get/GetInto, producing physical coordinates in the wrapped index's
// coordinate space. orientation.InputNdim() must equal the grid's
// dimensionality and orientation.OutputNdim() must equal index.Ndim().
func (s *Sampler[T]) SetOrientation(orientation *xform.Affine) error {
	if orientation.InputNdim() != len(s.shape) || orientation.OutputNdim() != s.index.Ndim() {
		return ErrOrientationDimMismatch
	}
	s.orientation = orientation

	return nil
}

// physicalCoords returns the coordinates Get/GetInto feeds to s.index: the
// base grid, oriented through s.orientation if one is set.
func (s *Sampler[T]) physicalCoords() [][]float64 {
	switch s.layout {
	case ColumnLayout:
		base := ColumnBaseCoords(s.shape)
		if s.orientation == nil {
			return base
		}
		out := make([][]float64, s.orientation.OutputNdim())
		k := 0
		if len(base) > 0 {
			k = len(base[0])
		}
		for d := range out {
			out[d] = make([]float64, k)
		}
		s.orientation.ApplyColumns(base, out)

		return out
	default:
		base := RowBaseCoords(s.shape)
		if s.orientation == nil {
			return base
		}
		out := make([][]float64, len(base))
		for i := range out {
			out[i] = make([]float64, s.orientation.OutputNdim())
		}
		s.orientation.ApplyBulk(base, out)

		return out
	}
}

// Get materializes the whole grid's samples in one call.
func (s *Sampler[T]) Get() []T {
	out := make([]T, total(s.shape))
	s.GetInto(out)

	return out
}

// GetInto fills out (len(out) must equal the grid's total sample count)
// with the whole grid's samples, calling the wrapped index's bulk or
// column form once according to s.layout.
func (s *Sampler[T]) GetInto(out []T) {
	coords := s.physicalCoords()
	if s.layout == ColumnLayout {
		s.index.ColumnGet(coords, out)

		return
	}
	s.index.BulkGet(coords, out)
}
