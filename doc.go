// Package coordspace is a library for composable N-dimensional coordinate
// transformations of the kind specified by the OME-Zarr/NGFF multiscale
// metadata family, together with a routing layer that finds a
// transformation chain between named coordinate systems, and an
// array-indexing layer that turns a coordinate transformation into a
// resampler over a bounded source array.
//
// Five subpackages cover the system end to end:
//
//	matrix/   — dense row-major float64 matrices and the linear-algebra
//	            kernels (matmul, LU, determinant, inverse) the rest of the
//	            library builds on.
//	xform/    — the transformation algebra: Identity, Translate, Scale,
//	            MapAxis, Affine, and Rotation primitives, plus Sequence,
//	            ByDimension, and Bijection composites, all behind one
//	            Transform contract with scalar, bulk, and column call
//	            shapes.
//	routing/  — TransformGraph, a labelled multigraph of named coordinate
//	            systems whose edges carry a Transform and a cost; queries
//	            run Dijkstra's algorithm and fuse the winning path into a
//	            single, memoized Transform.
//	resample/ — the BoundedIndex/UnboundedIndex/RealIndex adapter chain
//	            (Const, NearestNeighbour, Transformed) that turns a bounded
//	            array plus a Transform into a total function over real
//	            physical coordinates.
//	sampler/  — grid materialization over a RealIndex, for bulk image-style
//	            resampling.
//
// A typical pipeline: construct primitive transforms, compose them with
// Sequence/ByDimension/Bijection, optionally register them as edges of a
// TransformGraph and query by coordinate-system name, then hand the
// resulting Transform to the resample/sampler stack or apply it directly to
// point batches.
package coordspace
