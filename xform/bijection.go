package xform

// Bijection pairs an explicit forward transform f with its reverse g,
// where f.OutputNdim() == g.InputNdim() and f.InputNdim() == g.OutputNdim().
// ApplyPoint/Bulk/Columns delegate to f; Invert returns a fresh Bijection
// with f and g swapped rather than computing an inverse numerically.
type Bijection struct {
	forward Transform
	reverse Transform
}

// NewBijection builds a Bijection from forward f and reverse g.
func NewBijection(f, g Transform) (*Bijection, error) {
	if f.OutputNdim() != g.InputNdim() || f.InputNdim() != g.OutputNdim() {
		return nil, ErrDimensionMismatch
	}

	return &Bijection{forward: f, reverse: g}, nil
}

// InputNdim implements Transform.
func (b *Bijection) InputNdim() int { return b.forward.InputNdim() }

// OutputNdim implements Transform.
func (b *Bijection) OutputNdim() int { return b.forward.OutputNdim() }

// ApplyPoint delegates to the forward transform.
func (b *Bijection) ApplyPoint(pt, buf []float64) { b.forward.ApplyPoint(pt, buf) }

// ApplyBulk delegates to the forward transform.
func (b *Bijection) ApplyBulk(pts, bufs [][]float64) { b.forward.ApplyBulk(pts, bufs) }

// ApplyColumns delegates to the forward transform.
func (b *Bijection) ApplyColumns(cols, outCols [][]float64) { b.forward.ApplyColumns(cols, outCols) }

// Invert returns a new Bijection with forward and reverse swapped.
func (b *Bijection) Invert() (Transform, bool) {
	return &Bijection{forward: b.reverse, reverse: b.forward}, true
}

// IsIdentity reports whether both directions are (conservatively)
// identities.
func (b *Bijection) IsIdentity() bool {
	return b.forward.IsIdentity() && b.reverse.IsIdentity()
}
