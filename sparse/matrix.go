// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Entry is one stored matrix cell: a column index with its value.
type Entry struct {
	Column int
	Value  float64
}

// Matrix is an immutable compressed-sparse-row matrix. Rows correspond to
// nondeterministic choices; the grouping of rows into states is carried
// separately by a choice-index slice (see package doc).
type Matrix struct {
	rowCount    int
	columnCount int
	rowStart    []int // length rowCount+1
	columns     []int
	values      []float64
}

// RowCount reports the number of rows (choices).
func (m *Matrix) RowCount() int { return m.rowCount }

// ColumnCount reports the number of columns (states).
func (m *Matrix) ColumnCount() int { return m.columnCount }

// EntryCount reports the number of stored entries.
func (m *Matrix) EntryCount() int { return len(m.columns) }

// Row returns the column indices and values of row i as shared slices.
// Callers must not modify them. Panics on an out-of-range row
// (programmer error; every caller iterates rows it obtained from bounds).
func (m *Matrix) Row(i int) ([]int, []float64) {
	lo, hi := m.rowStart[i], m.rowStart[i+1]
	return m.columns[lo:hi], m.values[lo:hi]
}

// RowSum returns the sum of the entries of row i.
func (m *Matrix) RowSum(i int) float64 {
	_, vals := m.Row(i)
	var s float64
	for _, v := range vals {
		s += v
	}
	return s
}

// RowSumVector returns the per-row entry sums as a dense vector of length
// RowCount.
func (m *Matrix) RowSumVector() []float64 {
	out := make([]float64, m.rowCount)
	for i := range out {
		out[i] = m.RowSum(i)
	}
	return out
}

// MultiplyRow returns the dot product of row i with the dense vector x.
// x must have ColumnCount entries.
func (m *Matrix) MultiplyRow(i int, x []float64) float64 {
	cols, vals := m.Row(i)
	var s float64
	for k, c := range cols {
		// Explicit zero entries must not poison ±Inf vector values.
		if vals[k] != 0 {
			s += vals[k] * x[c]
		}
	}
	return s
}

// MultiplyWithVector computes out[i] = row_i · x for every row. out must
// have RowCount entries and x ColumnCount entries.
func (m *Matrix) MultiplyWithVector(x, out []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(x) != m.columnCount || len(out) != m.rowCount {
		return fmt.Errorf("%w: x has %d entries (want %d), out has %d (want %d)",
			ErrDimensionMismatch, len(x), m.columnCount, len(out), m.rowCount)
	}
	for i := 0; i < m.rowCount; i++ {
		out[i] = m.MultiplyRow(i, x)
	}
	return nil
}

// ValidateGroupIndices checks that idx is a strictly increasing partition
// of this matrix's rows: idx[0] == 0, idx[len-1] == RowCount and every
// group is non-empty.
func (m *Matrix) ValidateGroupIndices(idx []int) error {
	if len(idx) < 1 || idx[0] != 0 || idx[len(idx)-1] != m.rowCount {
		return fmt.Errorf("%w: boundaries must span [0, %d]", ErrBadGroupIndices, m.rowCount)
	}
	for i := 1; i < len(idx); i++ {
		if idx[i] <= idx[i-1] {
			return fmt.Errorf("%w: group %d is empty", ErrBadGroupIndices, i-1)
		}
	}
	return nil
}
