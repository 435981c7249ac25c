package xform

import (
	"math"
	"testing"

	"github.com/ome-ngff/coordspace/matrix"
	"github.com/stretchr/testify/require"
)

func TestSequence_EndToEnd(t *testing.T) {
	scale, err := NewScale([]float64{2, 2})
	require.NoError(t, err)
	translate, err := NewTranslate([]float64{1, -1})
	require.NoError(t, err)

	seq, err := NewSequence([]Transform{scale, translate})
	require.NoError(t, err)

	buf := make([]float64, 2)
	seq.ApplyPoint([]float64{3, 4}, buf)
	require.Equal(t, []float64{7, 7}, buf)
}

func TestSequence_RejectsTooFewStages(t *testing.T) {
	id, _ := NewIdentity(2)
	_, err := NewSequence([]Transform{id})
	require.ErrorIs(t, err, ErrTooFewStages)
}

func TestSequence_RejectsDimensionMismatch(t *testing.T) {
	a, _ := NewIdentity(2)
	b, _ := NewIdentity(3)
	_, err := NewSequence([]Transform{a, b})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSequence_Invert(t *testing.T) {
	scale, _ := NewScale([]float64{2, 4})
	translate, _ := NewTranslate([]float64{1, 1})
	seq, err := NewSequence([]Transform{scale, translate})
	require.NoError(t, err)

	inv, ok := seq.Invert()
	require.True(t, ok)

	fwd := make([]float64, 2)
	seq.ApplyPoint([]float64{3, 5}, fwd)
	back := make([]float64, 2)
	inv.ApplyPoint(fwd, back)
	require.InDeltaSlice(t, []float64{3, 5}, back, 1e-12)
}

func TestSequence_ApplyColumns_MatchesApplyPoint(t *testing.T) {
	scale, _ := NewScale([]float64{1.5, 0.5})
	rot, _ := NewRotation(mustRot90())
	seq, err := NewSequence([]Transform{scale, rot})
	require.NoError(t, err)

	pts := [][]float64{{1, 2}, {-3, 4}, {0, 0}}
	cols := [][]float64{{1, -3, 0}, {2, 4, 0}}
	outCols := [][]float64{make([]float64, 3), make([]float64, 3)}
	seq.ApplyColumns(cols, outCols)

	for i, p := range pts {
		want := make([]float64, 2)
		seq.ApplyPoint(p, want)
		require.InDelta(t, want[0], outCols[0][i], 1e-12)
		require.InDelta(t, want[1], outCols[1][i], 1e-12)
	}
}

func TestSequenceBuilder_BuildBestEffort(t *testing.T) {
	id2, _ := NewIdentity(2)

	t.Run("all identity collapses to Identity", func(t *testing.T) {
		b := NewSequenceBuilder().Add(id2).Add(id2)
		out, err := b.BuildBestEffort()
		require.NoError(t, err)
		_, isIdentity := out.(*Identity)
		require.True(t, isIdentity)
	})

	t.Run("single survivor returned directly", func(t *testing.T) {
		scale, _ := NewScale([]float64{2, 2})
		b := NewSequenceBuilder().Add(id2).Add(scale)
		out, err := b.BuildBestEffort()
		require.NoError(t, err)
		require.Same(t, scale, out)
	})

	t.Run("multiple survivors build a Sequence", func(t *testing.T) {
		scale, _ := NewScale([]float64{2, 2})
		translate, _ := NewTranslate([]float64{1, 1})
		b := NewSequenceBuilder().Add(scale).Add(translate)
		out, err := b.BuildBestEffort()
		require.NoError(t, err)
		_, isSeq := out.(*Sequence)
		require.True(t, isSeq)
	})

	t.Run("no stages fails", func(t *testing.T) {
		_, err := NewSequenceBuilder().BuildBestEffort()
		require.ErrorIs(t, err, ErrNoStages)
	})
}

func TestByDimension_EndToEnd(t *testing.T) {
	scale, _ := NewScale([]float64{10})
	mapAxis, _ := NewMapAxis([]int{1, 0})

	bd, err := NewByDimension([]ByDimEntry{
		{Transform: scale, InDims: []int{0}, OutDims: []int{0}},
		{Transform: mapAxis, InDims: []int{1, 2}, OutDims: []int{2, 1}},
	}, 3, 3)
	require.NoError(t, err)

	buf := make([]float64, 3)
	bd.ApplyPoint([]float64{1, 2, 3}, buf)
	require.Equal(t, []float64{10, 2, 3}, buf)
}

func TestByDimension_ApplyColumns_MatchesApplyPoint(t *testing.T) {
	scale, _ := NewScale([]float64{10})
	mapAxis, _ := NewMapAxis([]int{1, 0})
	bd, err := NewByDimension([]ByDimEntry{
		{Transform: mapAxis, InDims: []int{1, 2}, OutDims: []int{2, 1}},
		{Transform: scale, InDims: []int{0}, OutDims: []int{0}},
	}, 3, 3)
	require.NoError(t, err)

	pts := [][]float64{{1, 2, 3}, {4, 5, 6}, {0, -1, -2}}
	cols := [][]float64{{1, 4, 0}, {2, 5, -1}, {3, 6, -2}}
	outCols := [][]float64{make([]float64, 3), make([]float64, 3), make([]float64, 3)}
	bd.ApplyColumns(cols, outCols)

	for i, p := range pts {
		want := make([]float64, 3)
		bd.ApplyPoint(p, want)
		require.InDeltaSlice(t, want, []float64{outCols[0][i], outCols[1][i], outCols[2][i]}, 1e-12)
	}
}

func TestByDimension_RejectsOverlap(t *testing.T) {
	scale, _ := NewScale([]float64{1})
	_, err := NewByDimension([]ByDimEntry{
		{Transform: scale, InDims: []int{0}, OutDims: []int{0}},
		{Transform: scale, InDims: []int{0}, OutDims: []int{1}},
	}, 2, 2)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestByDimensionBuilder_AutoFillsLeftoverWithIdentity(t *testing.T) {
	scale, _ := NewScale([]float64{2})
	bd, err := NewByDimensionBuilder(3, 3).
		Add(scale, []int{0}, []int{0}).
		Build()
	require.NoError(t, err)

	buf := make([]float64, 3)
	bd.ApplyPoint([]float64{5, 7, 9}, buf)
	require.Equal(t, []float64{10, 7, 9}, buf)
}

func TestByDimensionBuilder_RejectsReuse(t *testing.T) {
	scale, _ := NewScale([]float64{2})
	b := NewByDimensionBuilder(2, 2).
		Add(scale, []int{0}, []int{0}).
		Add(scale, []int{0}, []int{1})
	_, err := b.Build()
	require.ErrorIs(t, err, ErrIndexReused)
}

func TestByDimensionBuilder_RejectsLeftoverImbalance(t *testing.T) {
	scale, _ := NewScale([]float64{1})
	b := NewByDimensionBuilder(3, 2).
		Add(scale, []int{0}, []int{0})
	_, err := b.Build()
	require.ErrorIs(t, err, ErrLeftoverImbalance)
}

func TestBijection_EndToEnd(t *testing.T) {
	f, _ := NewScale([]float64{2, 2})
	g, _ := NewScale([]float64{0.5, 0.5})
	bij, err := NewBijection(f, g)
	require.NoError(t, err)

	buf := make([]float64, 2)
	bij.ApplyPoint([]float64{3, 4}, buf)
	require.Equal(t, []float64{6, 8}, buf)

	inv, ok := bij.Invert()
	require.True(t, ok)
	back := make([]float64, 2)
	inv.ApplyPoint([]float64{3, 4}, back)
	require.Equal(t, []float64{1.5, 2}, back)
}

func TestBijection_RejectsDimensionMismatch(t *testing.T) {
	f, _ := NewScale([]float64{1, 1})
	g, _ := NewScale([]float64{1, 1, 1})
	_, err := NewBijection(f, g)
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestRotation_RejectsNonOrthonormal(t *testing.T) {
	m, _ := matrix.NewDenseRowMajor([]float64{1, 1, 0, 1}, 2)
	_, err := NewRotation(m)
	require.ErrorIs(t, err, ErrNotOrthonormal)
}

func TestRotation_Invert(t *testing.T) {
	r, err := NewRotation(mustRot90())
	require.NoError(t, err)
	inv, ok := r.Invert()
	require.True(t, ok)

	fwd := make([]float64, 2)
	r.ApplyPoint([]float64{1, 0}, fwd)
	back := make([]float64, 2)
	inv.ApplyPoint(fwd, back)
	require.InDeltaSlice(t, []float64{1, 0}, back, 1e-12)
}

func TestAffine_Invert_RoundTrip(t *testing.T) {
	aff := mustAffine2x2(t, 2, 0, 0, 4, 1, -1)
	inv, ok := aff.Invert()
	require.True(t, ok)

	fwd := make([]float64, 2)
	aff.ApplyPoint([]float64{3, 5}, fwd)
	back := make([]float64, 2)
	inv.ApplyPoint(fwd, back)
	require.InDeltaSlice(t, []float64{3, 5}, back, 1e-12)
}

func TestAffine_Invert_SingularFails(t *testing.T) {
	m, _ := matrix.NewDenseRowMajor([]float64{1, 2, 2, 4}, 2)
	aff, err := NewAffine(m, []float64{0, 0})
	require.NoError(t, err)
	_, ok := aff.Invert()
	require.False(t, ok)
}

// mustRot90 returns a 2x2 rotation-by-90-degrees matrix.
func mustRot90() *matrix.Dense {
	c, s := math.Cos(math.Pi/2), math.Sin(math.Pi/2)
	m, _ := matrix.NewDenseRowMajor([]float64{c, -s, s, c}, 2)

	return m
}
