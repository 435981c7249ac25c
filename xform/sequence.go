package xform

// Sequence chains stages so that stage i's output feeds stage i+1's input.
// Construction requires at least two stages and validates that successive
// OutputNdim()/InputNdim() pairs agree.
type Sequence struct {
	stages       []Transform
	maxInnerNdim int
}

// NewSequence builds a Sequence from at least two stages with matching
// adjacent dimensionality.
func NewSequence(stages []Transform) (*Sequence, error) {
	if len(stages) < 2 {
		return nil, ErrTooFewStages
	}
	for i := 1; i < len(stages); i++ {
		if stages[i-1].OutputNdim() != stages[i].InputNdim() {
			return nil, ErrDimensionMismatch
		}
	}
	cp := make([]Transform, len(stages))
	copy(cp, stages)

	maxInner := 0
	for i := 1; i < len(cp); i++ {
		if n := cp[i].InputNdim(); n > maxInner {
			maxInner = n
		}
	}

	return &Sequence{stages: cp, maxInnerNdim: maxInner}, nil
}

// InputNdim implements Transform.
func (s *Sequence) InputNdim() int { return s.stages[0].InputNdim() }

// OutputNdim implements Transform.
func (s *Sequence) OutputNdim() int { return s.stages[len(s.stages)-1].OutputNdim() }

// ApplyPoint runs pt through every stage, using two scratch buffers of
// width maxInnerNdim that are ping-ponged between stages.
func (s *Sequence) ApplyPoint(pt, buf []float64) {
	in := s.InputNdim()
	out := s.OutputNdim()
	if len(pt) != in {
		panicLen("Sequence.ApplyPoint", "pt", len(pt), in)
	}
	if len(buf) != out {
		panicLen("Sequence.ApplyPoint", "buf", len(buf), out)
	}

	var scratch [2][]float64
	scratch[0] = make([]float64, s.maxInnerNdim)
	scratch[1] = make([]float64, s.maxInnerNdim)
	s.runPoint(pt, buf, scratch)
}

func (s *Sequence) runPoint(pt, buf []float64, scratch [2][]float64) {
	cur := pt
	toggle := 0
	last := len(s.stages) - 1
	for i, stage := range s.stages {
		var out []float64
		if i == last {
			out = buf
		} else {
			out = scratch[toggle][:stage.OutputNdim()]
		}
		stage.ApplyPoint(cur, out)
		cur = out
		toggle = 1 - toggle
	}
}

// ApplyBulk allocates the two ping-pong scratch buffers once and reuses
// them across every point: zero per-point allocation in steady state.
func (s *Sequence) ApplyBulk(pts, bufs [][]float64) {
	if len(pts) != len(bufs) {
		panicLen("Sequence.ApplyBulk", "bufs", len(bufs), len(pts))
	}
	var scratch [2][]float64
	scratch[0] = make([]float64, s.maxInnerNdim)
	scratch[1] = make([]float64, s.maxInnerNdim)
	for i := range pts {
		s.runPoint(pts[i], bufs[i], scratch)
	}
}

// ApplyColumns ping-pongs two scratch 2D buffers sized maxInnerNdim x k.
// The first stage reads the caller's columns; the last stage writes the
// caller's output columns; middle stages read and write scratch.
func (s *Sequence) ApplyColumns(cols, outCols [][]float64) {
	in := s.InputNdim()
	out := s.OutputNdim()
	if len(cols) != in {
		panicLen("Sequence.ApplyColumns", "cols", len(cols), in)
	}
	if len(outCols) != out {
		panicLen("Sequence.ApplyColumns", "outCols", len(outCols), out)
	}
	k := 0
	if in > 0 {
		k = len(cols[0])
	} else if out > 0 {
		k = len(outCols[0])
	}

	var scratch [2][][]float64
	scratch[0] = allocColumns(s.maxInnerNdim, k)
	scratch[1] = allocColumns(s.maxInnerNdim, k)

	cur := cols
	toggle := 0
	last := len(s.stages) - 1
	for i, stage := range s.stages {
		var outCur [][]float64
		if i == last {
			outCur = outCols
		} else {
			outCur = scratch[toggle][:stage.OutputNdim()]
		}
		stage.ApplyColumns(cur, outCur)
		cur = outCur
		toggle = 1 - toggle
	}
}

func allocColumns(dims, k int) [][]float64 {
	out := make([][]float64, dims)
	for i := range out {
		out[i] = make([]float64, k)
	}

	return out
}

// Invert inverts every stage and reverses their order; fails (returns
// false) if any stage is non-invertible.
func (s *Sequence) Invert() (Transform, bool) {
	inv := make([]Transform, len(s.stages))
	for i, stage := range s.stages {
		inverted, ok := stage.Invert()
		if !ok {
			return nil, false
		}
		inv[len(s.stages)-1-i] = inverted
	}
	seq, err := NewSequence(inv)
	if err != nil {
		return nil, false
	}

	return seq, true
}

// IsIdentity reports whether every stage is (conservatively) an identity.
func (s *Sequence) IsIdentity() bool {
	for _, stage := range s.stages {
		if !stage.IsIdentity() {
			return false
		}
	}

	return true
}

// SequenceBuilder accumulates stages with dimensional-consistency checks,
// deferring construction until Build or BuildBestEffort.
type SequenceBuilder struct {
	stages []Transform
	err    error
}

// NewSequenceBuilder returns an empty builder.
func NewSequenceBuilder() *SequenceBuilder {
	return &SequenceBuilder{}
}

// Add appends a stage, checking it against the previously added stage's
// output dimensionality.
func (b *SequenceBuilder) Add(t Transform) *SequenceBuilder {
	if b.err != nil {
		return b
	}
	if len(b.stages) > 0 && b.stages[len(b.stages)-1].OutputNdim() != t.InputNdim() {
		b.err = ErrDimensionMismatch

		return b
	}
	b.stages = append(b.stages, t)

	return b
}

// Build requires at least two stages and returns a Sequence.
func (b *SequenceBuilder) Build() (*Sequence, error) {
	if b.err != nil {
		return nil, b.err
	}

	return NewSequence(b.stages)
}

// BuildBestEffort returns: an Identity of the determined dimensionality if
// every accumulated stage is an identity; the sole non-identity stage if
// exactly one remains after filtering identities; a Sequence otherwise.
// It fails only if no stages were ever added.
func (b *SequenceBuilder) BuildBestEffort() (Transform, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stages) == 0 {
		return nil, ErrNoStages
	}

	nonIdentity := make([]Transform, 0, len(b.stages))
	for _, stage := range b.stages {
		if !stage.IsIdentity() {
			nonIdentity = append(nonIdentity, stage)
		}
	}

	switch len(nonIdentity) {
	case 0:
		return NewIdentity(b.stages[0].InputNdim())
	case 1:
		return nonIdentity[0], nil
	default:
		return NewSequence(nonIdentity)
	}
}
