// SPDX-License-Identifier: MIT
package matrix

import "errors"

// Sentinel errors for the matrix package. Callers MUST use errors.Is to
// branch on these; messages are not part of the contract.
var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDataLength indicates a data vector whose length is not a multiple
	// of the declared minor extent.
	ErrDataLength = errors.New("matrix: data length is not a multiple of the minor extent")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, extent).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionTooLarge indicates Determinant was asked for a matrix
	// bigger than the closed-form 3x3 case it supports.
	ErrDimensionTooLarge = errors.New("matrix: determinant only supported up to 3x3")

	// ErrSingular indicates a zero pivot was encountered during LU-based
	// computations (GeneralDeterminant, Inverse). No partial pivoting is
	// performed.
	ErrSingular = errors.New("matrix: singular matrix")
)
