package xform

// ByDimEntry is one partition of a ByDimension transform: InDims lists the
// source-coordinate indices gathered to feed Transform, and OutDims lists
// the destination indices its output is scattered into.
type ByDimEntry struct {
	Transform Transform
	InDims    []int
	OutDims   []int
}

// ByDimension partitions input coordinates across independent sub-
// transforms and scatters their outputs. The union of every entry's
// InDims must equal {0,...,InputNdim()-1}, disjointly; likewise OutDims
// for {0,...,OutputNdim()-1}.
type ByDimension struct {
	entries   []ByDimEntry
	inputNdim int
	outNdim   int
}

// NewByDimension validates and builds a ByDimension from entries covering
// exactly [0,inputNdim) on the input side and [0,outputNdim) on the output
// side, disjointly.
func NewByDimension(entries []ByDimEntry, inputNdim, outputNdim int) (*ByDimension, error) {
	if inputNdim <= 0 || outputNdim <= 0 {
		return nil, ErrDimensionMismatch
	}
	inSeen := make([]bool, inputNdim)
	outSeen := make([]bool, outputNdim)
	cp := make([]ByDimEntry, len(entries))
	for i, e := range entries {
		if len(e.InDims) != e.Transform.InputNdim() || len(e.OutDims) != e.Transform.OutputNdim() {
			return nil, ErrDimensionMismatch
		}
		for _, d := range e.InDims {
			if d < 0 || d >= inputNdim || inSeen[d] {
				return nil, ErrDimensionMismatch
			}
			inSeen[d] = true
		}
		for _, d := range e.OutDims {
			if d < 0 || d >= outputNdim || outSeen[d] {
				return nil, ErrDimensionMismatch
			}
			outSeen[d] = true
		}
		inDims := make([]int, len(e.InDims))
		copy(inDims, e.InDims)
		outDims := make([]int, len(e.OutDims))
		copy(outDims, e.OutDims)
		cp[i] = ByDimEntry{Transform: e.Transform, InDims: inDims, OutDims: outDims}
	}
	for _, ok := range inSeen {
		if !ok {
			return nil, ErrDimensionMismatch
		}
	}
	for _, ok := range outSeen {
		if !ok {
			return nil, ErrDimensionMismatch
		}
	}

	return &ByDimension{entries: cp, inputNdim: inputNdim, outNdim: outputNdim}, nil
}

// InputNdim implements Transform.
func (b *ByDimension) InputNdim() int { return b.inputNdim }

// OutputNdim implements Transform.
func (b *ByDimension) OutputNdim() int { return b.outNdim }

// ApplyPoint gathers each entry's input indices into a scratch buffer,
// invokes its sub-transform, and scatters the result into buf.
func (b *ByDimension) ApplyPoint(pt, buf []float64) {
	if len(pt) != b.inputNdim {
		panicLen("ByDimension.ApplyPoint", "pt", len(pt), b.inputNdim)
	}
	if len(buf) != b.outNdim {
		panicLen("ByDimension.ApplyPoint", "buf", len(buf), b.outNdim)
	}
	for _, e := range b.entries {
		in := make([]float64, len(e.InDims))
		for j, d := range e.InDims {
			in[j] = pt[d]
		}
		out := make([]float64, len(e.OutDims))
		e.Transform.ApplyPoint(in, out)
		for j, d := range e.OutDims {
			buf[d] = out[j]
		}
	}
}

// ApplyBulk hoists the gather/scatter scratch buffers out of the point
// loop, one pair per entry, reused across every point.
func (b *ByDimension) ApplyBulk(pts, bufs [][]float64) {
	if len(pts) != len(bufs) {
		panicLen("ByDimension.ApplyBulk", "bufs", len(bufs), len(pts))
	}
	scratchIn := make([][]float64, len(b.entries))
	scratchOut := make([][]float64, len(b.entries))
	for i, e := range b.entries {
		scratchIn[i] = make([]float64, len(e.InDims))
		scratchOut[i] = make([]float64, len(e.OutDims))
	}
	for p := range pts {
		pt, buf := pts[p], bufs[p]
		for i, e := range b.entries {
			in := scratchIn[i]
			for j, d := range e.InDims {
				in[j] = pt[d]
			}
			out := scratchOut[i]
			e.Transform.ApplyPoint(in, out)
			for j, d := range e.OutDims {
				buf[d] = out[j]
			}
		}
	}
}

// ApplyColumns builds a read-only per-entry input column view (cheap:
// reference slices, no sample data copied) and, for the mutable output
// side, permutes the caller's outCols outer slice in place with recorded
// element swaps so each entry's OutDims sit contiguously at
// [start, start+k), calls the sub-transform directly against that window,
// then reverses the full swap log so the caller's column ordering is
// unchanged on return (only the column contents were mutated).
func (b *ByDimension) ApplyColumns(cols, outCols [][]float64) {
	if len(cols) != b.inputNdim {
		panicLen("ByDimension.ApplyColumns", "cols", len(cols), b.inputNdim)
	}
	if len(outCols) != b.outNdim {
		panicLen("ByDimension.ApplyColumns", "outCols", len(outCols), b.outNdim)
	}

	curPos := make([]int, b.outNdim) // original output index -> current slot
	curAt := make([]int, b.outNdim)  // current slot -> original output index
	for i := 0; i < b.outNdim; i++ {
		curPos[i] = i
		curAt[i] = i
	}
	type swap struct{ a, b int }
	var log []swap

	start := 0
	for _, e := range b.entries {
		in := make([][]float64, len(e.InDims))
		for j, d := range e.InDims {
			in[j] = cols[d]
		}

		k := len(e.OutDims)
		for j, d := range e.OutDims {
			target := start + j
			cur := curPos[d]
			if cur != target {
				outCols[target], outCols[cur] = outCols[cur], outCols[target]
				log = append(log, swap{target, cur})
				movedOrig := curAt[target]
				curAt[target], curAt[cur] = d, movedOrig
				curPos[d], curPos[movedOrig] = target, cur
			}
		}

		e.Transform.ApplyColumns(in, outCols[start:start+k])
		start += k
	}

	for i := len(log) - 1; i >= 0; i-- {
		s := log[i]
		outCols[s.a], outCols[s.b] = outCols[s.b], outCols[s.a]
	}
}

// Invert swaps InDims/OutDims on every entry and inverts its sub-transform;
// fails if any entry is non-invertible.
func (b *ByDimension) Invert() (Transform, bool) {
	inv := make([]ByDimEntry, len(b.entries))
	for i, e := range b.entries {
		inverted, ok := e.Transform.Invert()
		if !ok {
			return nil, false
		}
		inv[i] = ByDimEntry{Transform: inverted, InDims: e.OutDims, OutDims: e.InDims}
	}
	out, err := NewByDimension(inv, b.outNdim, b.inputNdim)
	if err != nil {
		return nil, false
	}

	return out, true
}

// IsIdentity reports whether every sub-transform is (conservatively) an
// identity.
func (b *ByDimension) IsIdentity() bool {
	for _, e := range b.entries {
		if !e.Transform.IsIdentity() {
			return false
		}
	}

	return true
}

// ByDimensionBuilder accumulates entries while tracking unused input and
// output indices, rejecting reuse.
type ByDimensionBuilder struct {
	inputNdim, outputNdim int
	entries               []ByDimEntry
	usedIn, usedOut       map[int]bool
	err                   error
}

// NewByDimensionBuilder returns an empty builder for the given total input
// and output dimensionality.
func NewByDimensionBuilder(inputNdim, outputNdim int) *ByDimensionBuilder {
	return &ByDimensionBuilder{
		inputNdim:  inputNdim,
		outputNdim: outputNdim,
		usedIn:     make(map[int]bool),
		usedOut:    make(map[int]bool),
	}
}

// Add appends one sub-entry, rejecting any index already assigned.
func (bb *ByDimensionBuilder) Add(t Transform, inDims, outDims []int) *ByDimensionBuilder {
	if bb.err != nil {
		return bb
	}
	for _, d := range inDims {
		if bb.usedIn[d] {
			bb.err = ErrIndexReused

			return bb
		}
	}
	for _, d := range outDims {
		if bb.usedOut[d] {
			bb.err = ErrIndexReused

			return bb
		}
	}
	for _, d := range inDims {
		bb.usedIn[d] = true
	}
	for _, d := range outDims {
		bb.usedOut[d] = true
	}
	bb.entries = append(bb.entries, ByDimEntry{Transform: t, InDims: append([]int(nil), inDims...), OutDims: append([]int(nil), outDims...)})

	return bb
}

// Build requires either every index assigned, or equal leftover counts on
// both sides (filled with a single Identity sub-entry pairing the sorted
// leftover inputs to the sorted leftover outputs).
func (bb *ByDimensionBuilder) Build() (*ByDimension, error) {
	if bb.err != nil {
		return nil, bb.err
	}
	var leftoverIn, leftoverOut []int
	for i := 0; i < bb.inputNdim; i++ {
		if !bb.usedIn[i] {
			leftoverIn = append(leftoverIn, i)
		}
	}
	for i := 0; i < bb.outputNdim; i++ {
		if !bb.usedOut[i] {
			leftoverOut = append(leftoverOut, i)
		}
	}
	entries := bb.entries
	if len(leftoverIn) != len(leftoverOut) {
		return nil, ErrLeftoverImbalance
	}
	if len(leftoverIn) > 0 {
		id, err := NewIdentity(len(leftoverIn))
		if err != nil {
			return nil, err
		}
		entries = append(append([]ByDimEntry(nil), entries...), ByDimEntry{Transform: id, InDims: leftoverIn, OutDims: leftoverOut})
	}

	return NewByDimension(entries, bb.inputNdim, bb.outputNdim)
}
