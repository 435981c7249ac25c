package xform

import (
	"fmt"
	"math"
)

// minNormalFloat64 is the smallest positive normal float64; values between
// this and zero (exclusive) are subnormal.
const minNormalFloat64 = 2.2250738585072014e-308

// Transform is a pure function R^n -> R^m: the common contract every
// primitive and composite transform in this package implements.
type Transform interface {
	// InputNdim is the dimensionality n of points accepted by ApplyPoint.
	InputNdim() int

	// OutputNdim is the dimensionality m of points produced by ApplyPoint.
	OutputNdim() int

	// ApplyPoint writes the image of pt into buf. len(pt) must equal
	// InputNdim() and len(buf) must equal OutputNdim(); pt and buf must
	// not alias. Violations panic.
	ApplyPoint(pt, buf []float64)

	// ApplyBulk applies the transform to each point in pts, writing into
	// the corresponding entry of bufs. len(pts) must equal len(bufs).
	ApplyBulk(pts, bufs [][]float64)

	// ApplyColumns applies the transform to a batch of points stored in
	// column-major (struct-of-slices) layout: cols has one slice per input
	// dimension, outCols one slice per output dimension, and every slice
	// in both arguments has the same sample count k.
	ApplyColumns(cols, outCols [][]float64)

	// Invert returns the inverse transform and true, or (nil, false) if no
	// inverse exists. The returned transform shares no mutable state with
	// the receiver.
	Invert() (Transform, bool)

	// IsIdentity conservatively reports whether this transform is
	// definitely the identity map. False does not guarantee non-identity;
	// callers MUST use this for optimization only, never for correctness.
	IsIdentity() bool
}

func panicLen(fn string, name string, got, want int) {
	panic(fmt.Sprintf("xform: %s: len(%s)=%d, want %d", fn, name, got, want))
}

// applyBulkViaPoint is the default ApplyBulk: loop ApplyPoint over pts.
func applyBulkViaPoint(t Transform, pts, bufs [][]float64) {
	if len(pts) != len(bufs) {
		panicLen("ApplyBulk", "bufs", len(bufs), len(pts))
	}
	for i := range pts {
		t.ApplyPoint(pts[i], bufs[i])
	}
}

// applyColumnsViaPoint is the default ApplyColumns: gather one scratch
// point per sample, call ApplyPoint, scatter the scratch result. Slow;
// every numerically meaningful primitive overrides ApplyColumns instead.
func applyColumnsViaPoint(t Transform, cols, outCols [][]float64) {
	in := t.InputNdim()
	out := t.OutputNdim()
	if len(cols) != in {
		panicLen("ApplyColumns", "cols", len(cols), in)
	}
	if len(outCols) != out {
		panicLen("ApplyColumns", "outCols", len(outCols), out)
	}
	k := 0
	if in > 0 {
		k = len(cols[0])
	} else if out > 0 {
		k = len(outCols[0])
	}

	scratchIn := make([]float64, in)
	scratchOut := make([]float64, out)
	for i := 0; i < k; i++ {
		for d := 0; d < in; d++ {
			scratchIn[d] = cols[d][i]
		}
		t.ApplyPoint(scratchIn, scratchOut)
		for d := 0; d < out; d++ {
			outCols[d][i] = scratchOut[d]
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func allFinite(vs []float64) bool {
	for _, v := range vs {
		if !isFinite(v) {
			return false
		}
	}

	return true
}
