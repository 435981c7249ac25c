package xform

import (
	"math"
	"testing"

	"github.com/ome-ngff/coordspace/matrix"
	"github.com/stretchr/testify/require"
)

func TestScale_EndToEnd(t *testing.T) {
	s, err := NewScale([]float64{1, 0.5, 2})
	require.NoError(t, err)
	buf := make([]float64, 3)
	s.ApplyPoint([]float64{4, 4, 4}, buf)
	require.Equal(t, []float64{4, 2, 8}, buf)

	inv, ok := s.Invert()
	require.True(t, ok)
	back := make([]float64, 3)
	inv.ApplyPoint(buf, back)
	require.InDeltaSlice(t, []float64{4, 4, 4}, back, 1e-12)
}

func TestTranslate_EndToEnd(t *testing.T) {
	tr, err := NewTranslate([]float64{1, 2, 3})
	require.NoError(t, err)
	buf := make([]float64, 3)
	tr.ApplyPoint([]float64{0, 0, 0}, buf)
	require.Equal(t, []float64{1, 2, 3}, buf)

	inv, ok := tr.Invert()
	require.True(t, ok)
	back := make([]float64, 3)
	inv.ApplyPoint(buf, back)
	require.Equal(t, []float64{0, 0, 0}, back)
}

func TestMapAxis_EndToEnd(t *testing.T) {
	m, err := NewMapAxis([]int{2, 0, 1})
	require.NoError(t, err)
	buf := make([]float64, 3)
	m.ApplyPoint([]float64{10, 20, 30}, buf)
	require.Equal(t, []float64{30, 10, 20}, buf)

	inv, ok := m.Invert()
	require.True(t, ok)
	mapInv, ok := inv.(*MapAxis)
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 0}, mapInv.p)
}

func TestMapAxis_RejectsDuplicates(t *testing.T) {
	_, err := NewMapAxis([]int{0, 0, 2})
	require.ErrorIs(t, err, ErrNotPermutation)
}

func TestMapAxis_RejectsOutOfRange(t *testing.T) {
	_, err := NewMapAxis([]int{0, 1, 5})
	require.ErrorIs(t, err, ErrNotPermutation)
}

func TestScale_RejectsNonPositive(t *testing.T) {
	_, err := NewScale([]float64{1, 0, 1})
	require.ErrorIs(t, err, ErrNonPositiveScale)

	_, err = NewScale([]float64{1, -2, 1})
	require.ErrorIs(t, err, ErrNonPositiveScale)
}

func TestScale_RejectsNonFinite(t *testing.T) {
	_, err := NewScale([]float64{1, math.NaN(), 1})
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestTranslate_RejectsNonFinite(t *testing.T) {
	_, err := NewTranslate([]float64{1, math.Inf(1), 1})
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestIdentity_Idempotent(t *testing.T) {
	id, err := NewIdentity(3)
	require.NoError(t, err)
	buf := make([]float64, 3)
	pt := []float64{1.5, -2.25, 7}
	id.ApplyPoint(pt, buf)
	require.Equal(t, pt, buf)
	require.True(t, id.IsIdentity())
}

func TestApplyPoint_PanicsOnBadLength(t *testing.T) {
	s, _ := NewScale([]float64{1, 2})
	require.Panics(t, func() {
		s.ApplyPoint([]float64{1}, make([]float64, 2))
	})
}

func TestBulkEqualsScalar_Translate(t *testing.T) {
	tr, _ := NewTranslate([]float64{1, -1})
	pts := [][]float64{{0, 0}, {1, 2}, {-3, 4.5}}
	bufs := make([][]float64, len(pts))
	for i := range bufs {
		bufs[i] = make([]float64, 2)
	}
	tr.ApplyBulk(pts, bufs)
	for i, p := range pts {
		want := make([]float64, 2)
		tr.ApplyPoint(p, want)
		require.Equal(t, want, bufs[i])
	}
}

func TestColumnsEqualsScalar_Affine(t *testing.T) {
	aff := mustAffine2x2(t, 1, 2, 3, 4, 0.5, -0.5)
	pts := [][]float64{{1, 1}, {2, -1}, {0, 3}}
	cols := [][]float64{{1, 2, 0}, {1, -1, 3}}
	outCols := [][]float64{make([]float64, 3), make([]float64, 3)}
	aff.ApplyColumns(cols, outCols)
	for i, p := range pts {
		want := make([]float64, 2)
		aff.ApplyPoint(p, want)
		require.InDelta(t, want[0], outCols[0][i], 1e-12)
		require.InDelta(t, want[1], outCols[1][i], 1e-12)
	}
}

// mustAffine2x2 builds a 2x2 Affine from row-major linear entries plus a
// translation, failing the test on any construction error.
func mustAffine2x2(t *testing.T, a, b, c, d, tx, ty float64) *Affine {
	t.Helper()
	m, err := matrix.NewDenseRowMajor([]float64{a, b, c, d}, 2)
	require.NoError(t, err)
	aff, err := NewAffine(m, []float64{tx, ty})
	require.NoError(t, err)

	return aff
}
