// Package sampler materializes a regular grid of real coordinates over a
// shape and drives a resample.RealIndex across the whole grid at once.
//
// The base grid is the cartesian product of 0..shape[d] for each dimension
// d, enumerated in lexicographic order (the last dimension varies
// fastest) regardless of output layout: RowBaseCoords packs one point per
// sample (array-of-points, matching resample/xform's "bulk" shape) while
// ColumnBaseCoords packs one slice per dimension (struct-of-arrays,
// matching the "columns" shape). Both describe the same enumeration order,
// only the storage layout differs.
package sampler
