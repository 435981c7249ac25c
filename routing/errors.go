package routing

import "errors"

// Sentinel errors returned by TransformGraph operations.
var (
	// ErrDimensionConflict indicates a label was already registered with a
	// different dimensionality than the one implied by a new edge.
	ErrDimensionConflict = errors.New("routing: label already registered with a different dimensionality")

	// ErrNonFiniteCost indicates a NaN or infinite edge cost was supplied.
	ErrNonFiniteCost = errors.New("routing: edge cost must be finite")
)
