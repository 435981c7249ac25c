package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDenseRowMajor(t *testing.T) {
	m, err := NewDenseRowMajor([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestNewDenseRowMajor_BadLength(t *testing.T) {
	_, err := NewDenseRowMajor([]float64{1, 2, 3}, 2)
	require.ErrorIs(t, err, ErrDataLength)
}

func TestNewDenseColumnMajor(t *testing.T) {
	// Column-major [[1,2,3],[4,5,6]] as 2x3 row-major means columns are
	// (1,4) (2,5) (3,6): flat column-major data = 1,4,2,5,3,6 with minor=rows=2.
	m, err := NewDenseColumnMajor([]float64{1, 4, 2, 5, 3, 6}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			v, err := m.At(r, c)
			require.NoError(t, err)
			require.Equal(t, float64(r*3+c+1), v)
		}
	}
}

func TestDense_AtOutOfBounds(t *testing.T) {
	m, err := NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestDense_Transpose(t *testing.T) {
	m, err := NewDenseRowMajor([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	tr := m.Transpose()
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, err := tr.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

func TestDense_MatmulInto(t *testing.T) {
	m, err := NewDenseRowMajor([]float64{1, 0, 0, 1}, 2) // identity
	require.NoError(t, err)
	y := make([]float64, 2)
	m.MatmulInto([]float64{3, 4}, y)
	require.Equal(t, []float64{3, 4}, y)
}

func TestDense_MatmulInto_PanicsOnLengthMismatch(t *testing.T) {
	m, _ := NewDense(2, 2)
	require.Panics(t, func() {
		m.MatmulInto([]float64{1}, make([]float64, 2))
	})
}

func TestDense_MatmulTransposedInto(t *testing.T) {
	m, err := NewDenseRowMajor([]float64{2, 0, 0, 3}, 2) // diag(2,3)
	require.NoError(t, err)
	cols := [][]float64{{1, 2}, {10, 20}}
	out := [][]float64{make([]float64, 2), make([]float64, 2)}
	m.MatmulTransposedInto(cols, out)
	require.Equal(t, []float64{2, 4}, out[0])
	require.Equal(t, []float64{30, 60}, out[1])
}

func TestDense_IsIdentity(t *testing.T) {
	id, _ := NewDenseRowMajor([]float64{1, 0, 0, 1}, 2)
	require.True(t, id.IsIdentity())

	notId, _ := NewDenseRowMajor([]float64{1, 0, 0, 1.0000001}, 2)
	require.False(t, notId.IsIdentity())

	nonSquare, _ := NewDenseRowMajor([]float64{1, 0}, 2)
	require.False(t, nonSquare.IsIdentity())
}

func TestDense_HasOrthonormalRows(t *testing.T) {
	rot90, _ := NewDenseRowMajor([]float64{0, -1, 1, 0}, 2)
	require.True(t, rot90.HasOrthonormalRows())

	scaled, _ := NewDenseRowMajor([]float64{2, 0, 0, 2}, 2)
	require.False(t, scaled.HasOrthonormalRows())
}

func TestDense_Determinant(t *testing.T) {
	d1, _ := NewDenseRowMajor([]float64{5}, 1)
	v, err := d1.Determinant()
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	d2, _ := NewDenseRowMajor([]float64{1, 2, 3, 4}, 2)
	v, err = d2.Determinant()
	require.NoError(t, err)
	require.Equal(t, -2.0, v)

	id3, _ := NewDenseRowMajor([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, 3)
	v, err = id3.Determinant()
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	d4, _ := NewDense(4, 4)
	_, err = d4.Determinant()
	require.ErrorIs(t, err, ErrDimensionTooLarge)
}

func TestGeneralDeterminantAndInverse(t *testing.T) {
	m, _ := NewDenseRowMajor([]float64{4, 7, 2, 6}, 2)
	det, err := GeneralDeterminant(m)
	require.NoError(t, err)
	require.InDelta(t, 10.0, det, 1e-9)

	inv, err := Inverse(m)
	require.NoError(t, err)
	// m * inv should be identity.
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			var sum float64
			for k := 0; k < 2; k++ {
				a, _ := m.At(r, k)
				b, _ := inv.At(k, c)
				sum += a * b
			}
			if r == c {
				require.InDelta(t, 1.0, sum, 1e-9)
			} else {
				require.InDelta(t, 0.0, sum, 1e-9)
			}
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	m, _ := NewDenseRowMajor([]float64{1, 2, 2, 4}, 2)
	_, err := Inverse(m)
	require.True(t, errors.Is(err, ErrSingular))
}
