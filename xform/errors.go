package xform

import "errors"

// Sentinel errors for xform construction. Callers MUST use errors.Is.
var (
	// ErrNonFinite indicates a parameter contains NaN or +/-Inf where a
	// finite value is required.
	ErrNonFinite = errors.New("xform: non-finite value")

	// ErrNonPositiveScale indicates a Scale factor is zero or negative.
	ErrNonPositiveScale = errors.New("xform: scale factor must be positive")

	// ErrSubnormalScale indicates a Scale factor is a subnormal float,
	// which this module rejects alongside zero/negative to keep Scale
	// invertible and its inverse well-conditioned.
	ErrSubnormalScale = errors.New("xform: scale factor must not be subnormal")

	// ErrNotPermutation indicates a MapAxis argument is not a bijection on
	// {0,...,n-1}.
	ErrNotPermutation = errors.New("xform: not a permutation of 0..n-1")

	// ErrDimensionMismatch indicates incompatible dimensions between a
	// transform's parameters, or between successive stages of a composite.
	ErrDimensionMismatch = errors.New("xform: dimension mismatch")

	// ErrNonSquareMatrix indicates a square matrix was required (Rotation).
	ErrNonSquareMatrix = errors.New("xform: matrix must be square")

	// ErrNotOrthonormal indicates Rotation's matrix rows are not
	// orthonormal within matrix.OrthonormalTolerance.
	ErrNotOrthonormal = errors.New("xform: matrix rows are not orthonormal")

	// ErrBadDeterminant indicates Rotation's matrix determinant is not +1
	// within matrix.OrthonormalTolerance.
	ErrBadDeterminant = errors.New("xform: determinant is not +1")

	// ErrTooFewStages indicates a Sequence was built with fewer than two
	// stages.
	ErrTooFewStages = errors.New("xform: sequence needs at least two stages")

	// ErrIndexReused indicates a ByDimension builder in_dims or out_dims
	// index was assigned to more than one sub-entry.
	ErrIndexReused = errors.New("xform: index already assigned")

	// ErrLeftoverImbalance indicates a ByDimension builder finished with
	// an unequal number of unassigned input and output indices.
	ErrLeftoverImbalance = errors.New("xform: unequal leftover input/output indices")

	// ErrNoStages indicates BuildBestEffort was called with zero stages.
	ErrNoStages = errors.New("xform: no stages provided")

	// ErrNotInvertible indicates Invert was called on a transform with no
	// inverse (e.g. a non-square or singular Affine).
	ErrNotInvertible = errors.New("xform: transform has no inverse")
)
