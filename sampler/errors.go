package sampler

import "errors"

// Sentinel errors returned by Sampler construction and orientation.
var (
	// ErrEmptyShape indicates a zero-dimensional (empty) grid shape.
	ErrEmptyShape = errors.New("sampler: shape must have at least one dimension")

	// ErrNonPositiveShape indicates a shape entry was zero or negative.
	ErrNonPositiveShape = errors.New("sampler: every shape entry must be positive")

	// ErrOrientationDimMismatch indicates the orientation affine's input or
	// output dimensionality disagreed with the sampler's shape or index.
	ErrOrientationDimMismatch = errors.New("sampler: orientation dimensionality mismatch")
)
