// Package matrix provides a dense, row-major float64 matrix and the small
// set of numeric kernels the coordspace transform algebra needs: a
// point-multiply, a "transposed batch" multiply for columnar data, an
// orthonormality test, an identity test, transpose, and a determinant
// restricted to the sizes Rotation validation actually requires.
//
// Dense is immutable from the perspective of every other package in this
// module: once built it is only read, never mutated in place, so it can be
// shared (via a pointer) by a Rotation or Affine and by every composite
// transform that embeds one without risk of aliasing surprises.
//
// Complexity:
//   - MatmulInto:          O(rows*cols)
//   - MatmulTransposedInto: O(rows*cols*k), k = number of sample columns
//   - HasOrthonormalRows:  O(rows^2 * cols)
//   - IsIdentity:          O(rows*cols)
//   - Transpose:           O(rows*cols), one allocation
//   - Determinant:         O(1) for 1x1..3x3; ErrDimensionTooLarge above
package matrix
