// Package xform implements the coordspace transformation algebra: a
// polymorphic contract for point-to-point maps on R^n -> R^m, the concrete
// primitive transforms (Identity, Translate, Scale, MapAxis, Affine,
// Rotation), and the compositional operators (Sequence, ByDimension,
// Bijection) that implement the same contract by delegating to their
// children.
//
// Every Transform is value-typed and immutable once constructed. Composite
// transforms hold shared references to their children (not deep copies),
// so a single Identity or an expensive Affine can be embedded in several
// places — a routing.TransformGraph edge and a Sequence stage, say — at once.
//
// Three call shapes exist on every Transform:
//
//   - ApplyPoint: one point in, one point out, caller-owned buffers.
//   - ApplyBulk: a batch of points in row-major (array-of-points) layout.
//   - ApplyColumns: a batch of points in column-major (struct-of-slices,
//     one slice per input/output dimension) layout.
//
// ApplyBulk and ApplyColumns default to looping ApplyPoint (see
// applyBulkViaPoint / applyColumnsViaPoint). Every primitive overrides
// ApplyColumns with a column-wise kernel; the primitives' ApplyBulk loops
// ApplyPoint. Sequence and ByDimension override ApplyBulk to hoist their
// scratch buffers out of the point loop.
//
// Buffer aliasing rule: pt and buf (and, for the bulk/column forms, every
// input and output slice) must not alias. Buffer-length mismatches are a
// programmer error and panic rather than returning an error — this is the
// one place in the package where validation is not a recoverable sentinel.
package xform
