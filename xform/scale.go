package xform

// Scale multiplies each coordinate by a fixed, finite, non-zero,
// non-subnormal, positive factor: buf[i] = pt[i] * s[i]. Negative and zero
// factors are rejected: this keeps Scale invertible and avoids degenerate
// (collapsing or mirroring) columns.
type Scale struct {
	s []float64
}

// NewScale returns a Scale by the given per-axis factors.
func NewScale(s []float64) (*Scale, error) {
	if len(s) == 0 {
		return nil, ErrDimensionMismatch
	}
	for _, v := range s {
		if !isFinite(v) {
			return nil, ErrNonFinite
		}
		if v <= 0 {
			return nil, ErrNonPositiveScale
		}
		if v < minNormalFloat64 {
			return nil, ErrSubnormalScale
		}
	}
	cp := make([]float64, len(s))
	copy(cp, s)

	return &Scale{s: cp}, nil
}

// InputNdim implements Transform.
func (t *Scale) InputNdim() int { return len(t.s) }

// OutputNdim implements Transform.
func (t *Scale) OutputNdim() int { return len(t.s) }

// ApplyPoint writes buf[i] = pt[i] * s[i].
func (t *Scale) ApplyPoint(pt, buf []float64) {
	n := len(t.s)
	if len(pt) != n {
		panicLen("Scale.ApplyPoint", "pt", len(pt), n)
	}
	if len(buf) != n {
		panicLen("Scale.ApplyPoint", "buf", len(buf), n)
	}
	for i := 0; i < n; i++ {
		buf[i] = pt[i] * t.s[i]
	}
}

// ApplyBulk loops ApplyPoint.
func (t *Scale) ApplyBulk(pts, bufs [][]float64) { applyBulkViaPoint(t, pts, bufs) }

// ApplyColumns multiplies every sample of column d by s[d].
func (t *Scale) ApplyColumns(cols, outCols [][]float64) {
	n := len(t.s)
	if len(cols) != n {
		panicLen("Scale.ApplyColumns", "cols", len(cols), n)
	}
	if len(outCols) != n {
		panicLen("Scale.ApplyColumns", "outCols", len(outCols), n)
	}
	for d := 0; d < n; d++ {
		src := cols[d]
		dst := outCols[d]
		factor := t.s[d]
		for i, v := range src {
			dst[i] = v * factor
		}
	}
}

// Invert returns Scale(1/s).
func (t *Scale) Invert() (Transform, bool) {
	inv := make([]float64, len(t.s))
	for i, v := range t.s {
		inv[i] = 1 / v
	}

	return &Scale{s: inv}, true
}

// IsIdentity reports whether every factor is exactly one.
func (t *Scale) IsIdentity() bool {
	for _, v := range t.s {
		if v != 1 {
			return false
		}
	}

	return true
}
