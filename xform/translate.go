package xform

// Translate adds a fixed, finite vector v to every point: buf[i] = pt[i] + v[i].
type Translate struct {
	v []float64
}

// NewTranslate returns a Translate by the given vector. Every component
// must be finite (no NaN, no infinity).
func NewTranslate(v []float64) (*Translate, error) {
	if len(v) == 0 {
		return nil, ErrDimensionMismatch
	}
	if !allFinite(v) {
		return nil, ErrNonFinite
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return &Translate{v: cp}, nil
}

// InputNdim implements Transform.
func (t *Translate) InputNdim() int { return len(t.v) }

// OutputNdim implements Transform.
func (t *Translate) OutputNdim() int { return len(t.v) }

// ApplyPoint writes buf[i] = pt[i] + v[i].
func (t *Translate) ApplyPoint(pt, buf []float64) {
	n := len(t.v)
	if len(pt) != n {
		panicLen("Translate.ApplyPoint", "pt", len(pt), n)
	}
	if len(buf) != n {
		panicLen("Translate.ApplyPoint", "buf", len(buf), n)
	}
	for i := 0; i < n; i++ {
		buf[i] = pt[i] + t.v[i]
	}
}

// ApplyBulk loops ApplyPoint.
func (t *Translate) ApplyBulk(pts, bufs [][]float64) { applyBulkViaPoint(t, pts, bufs) }

// ApplyColumns adds v[d] to every sample of column d, in place into outCols.
func (t *Translate) ApplyColumns(cols, outCols [][]float64) {
	n := len(t.v)
	if len(cols) != n {
		panicLen("Translate.ApplyColumns", "cols", len(cols), n)
	}
	if len(outCols) != n {
		panicLen("Translate.ApplyColumns", "outCols", len(outCols), n)
	}
	for d := 0; d < n; d++ {
		src := cols[d]
		dst := outCols[d]
		shift := t.v[d]
		for i, v := range src {
			dst[i] = v + shift
		}
	}
}

// Invert returns Translate(-v).
func (t *Translate) Invert() (Transform, bool) {
	neg := make([]float64, len(t.v))
	for i, v := range t.v {
		neg[i] = -v
	}

	return &Translate{v: neg}, true
}

// IsIdentity reports whether every component of v is exactly zero.
func (t *Translate) IsIdentity() bool {
	for _, v := range t.v {
		if v != 0 {
			return false
		}
	}

	return true
}
