// Package resample implements the resampler stack: a chain of index
// adapters that turns a bounded source array into a total function over
// real-valued physical coordinates.
//
// Three trait-like interfaces describe the chain, each narrower than the
// last:
//
//   - BoundedIndex[T]: partial, non-negative integer coordinates, bounds
//     checked against Extents().
//   - UnboundedIndex[T]: total, signed integer coordinates.
//   - RealIndex[T]: total, floating-point coordinates.
//
// Const adapts a BoundedIndex into an UnboundedIndex by substituting a
// default value out of bounds. NearestNeighbour adapts an UnboundedIndex
// into a RealIndex by banker's-rounding each coordinate. Transformed adapts
// one RealIndex into another by pre-composing an xform.Transform, so the
// caller's coordinate space differs from the wrapped index's.
//
// Chaining Transformed -> NearestNeighbour -> Const -> an Array produces
// image-style resampling: a physical-space query is mapped into array-index
// space, rounded, bounds-checked, and substituted with a fill value when it
// falls outside the source data.
//
// ChunkedArray is an alternative BoundedIndex backend for Const to sit on
// top of: it assembles a regular grid of independently stored chunks (the
// OME-Zarr storage unit) into one logical array, grouping a batch of
// queries by destination chunk before touching each chunk's own bulk/column
// form once.
package resample
