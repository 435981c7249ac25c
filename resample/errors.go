package resample

import "errors"

// Sentinel errors returned by resample constructors.
var (
	// ErrExtentsDataMismatch indicates the data length does not match the
	// product of the requested extents.
	ErrExtentsDataMismatch = errors.New("resample: data length does not match extents")

	// ErrEmptyExtents indicates a zero-dimensional (empty) extents slice.
	ErrEmptyExtents = errors.New("resample: extents must have at least one dimension")

	// ErrNonPositiveExtent indicates an extent entry was zero or negative.
	ErrNonPositiveExtent = errors.New("resample: every extent must be positive")

	// ErrNdimMismatch indicates Transformed's transform output dimension
	// disagreed with its wrapped RealIndex's dimensionality.
	ErrNdimMismatch = errors.New("resample: transform output_ndim does not match inner ndim")

	// ErrChunkShapeMismatch indicates a Chunker's chunk shape and extents
	// arguments have different lengths.
	ErrChunkShapeMismatch = errors.New("resample: chunk shape and extents have different dimensionality")
)
