// SPDX-License-Identifier: MIT
package matrix

// SetForBuild writes v at (row, col) of m. It exists only for callers
// assembling a Dense element-by-element immediately after NewDense (e.g.
// xform.Affine's augmented-matrix constructors); Dense is otherwise
// immutable once handed to a Transform.
func SetForBuild(m *Dense, row, col int, v float64) error {
	idx, err := m.index(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
