// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/veristoch/mdpcheck/bitvec"
)

// Submatrix returns the restriction of m to the states in keep. The matrix
// must be square over states at the column level, with rows grouped by
// groupIndices. Every row group of a kept state is kept in its entirety;
// dropped states lose all their choices. Columns are re-indexed onto the
// kept states by rank, and entries leading into dropped states are
// discarded (their mass is accounted for separately via
// ConstrainedRowSumVector).
func (m *Matrix) Submatrix(keep bitvec.Vector, groupIndices []int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.ValidateGroupIndices(groupIndices); err != nil {
		return nil, err
	}
	if keep.Len() != len(groupIndices)-1 || keep.Len() != m.columnCount {
		return nil, fmt.Errorf("%w: keep set over %d states, matrix has %d columns and %d groups",
			ErrDimensionMismatch, keep.Len(), m.columnCount, len(groupIndices)-1)
	}

	// Rank of every kept state: its column index in the submatrix.
	rank := make([]int, m.columnCount)
	for i := range rank {
		rank[i] = -1
	}
	subStates := 0
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		rank[s] = subStates
		subStates++
	}

	// Count kept rows and entries in one pass.
	subRows, subEntries := 0, 0
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			subRows++
			cols, _ := m.Row(r)
			for _, c := range cols {
				if rank[c] >= 0 {
					subEntries++
				}
			}
		}
	}

	sub := &Matrix{
		rowCount:    subRows,
		columnCount: subStates,
		rowStart:    make([]int, 1, subRows+1),
		columns:     make([]int, 0, subEntries),
		values:      make([]float64, 0, subEntries),
	}
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			cols, vals := m.Row(r)
			for k, c := range cols {
				if rank[c] >= 0 {
					sub.columns = append(sub.columns, rank[c])
					sub.values = append(sub.values, vals[k])
				}
			}
			sub.rowStart = append(sub.rowStart, len(sub.columns))
		}
	}
	return sub, nil
}

// ConstrainedRowSumVector returns, for every row of every kept state's
// group, the total mass flowing into the columns set. The result has one
// entry per kept row, ordered by state rank then by row within the group.
func (m *Matrix) ConstrainedRowSumVector(keep bitvec.Vector, groupIndices []int, columns bitvec.Vector) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.ValidateGroupIndices(groupIndices); err != nil {
		return nil, err
	}
	if keep.Len() != len(groupIndices)-1 || columns.Len() != m.columnCount {
		return nil, fmt.Errorf("%w: keep over %d states, columns over %d, matrix has %d columns",
			ErrDimensionMismatch, keep.Len(), columns.Len(), m.columnCount)
	}
	out := make([]float64, 0)
	for s, ok := keep.NextSet(0); ok; s, ok = keep.NextSet(s + 1) {
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			cols, vals := m.Row(r)
			var sum float64
			for k, c := range cols {
				if columns.Get(c) {
					sum += vals[k]
				}
			}
			out = append(out, sum)
		}
	}
	return out, nil
}

// PointwiseProductRowSumVector returns, per row, the sum of the entrywise
// products of m and other. Both matrices must share the exact sparsity
// pattern; for a transition matrix and its transition-reward matrix this
// yields the expected one-step reward of every choice.
func (m *Matrix) PointwiseProductRowSumVector(other *Matrix) ([]float64, error) {
	if m == nil || other == nil {
		return nil, ErrNilMatrix
	}
	if m.rowCount != other.rowCount || m.columnCount != other.columnCount {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, m.rowCount, m.columnCount, other.rowCount, other.columnCount)
	}
	out := make([]float64, m.rowCount)
	for i := 0; i < m.rowCount; i++ {
		cols, vals := m.Row(i)
		oCols, oVals := other.Row(i)
		if len(cols) != len(oCols) {
			return nil, fmt.Errorf("%w: row %d", ErrPatternMismatch, i)
		}
		var sum float64
		for k := range cols {
			if cols[k] != oCols[k] {
				return nil, fmt.Errorf("%w: row %d", ErrPatternMismatch, i)
			}
			sum += vals[k] * oVals[k]
		}
		out[i] = sum
	}
	return out, nil
}

// MakeRowsAbsorbing rewrites every row of every selected state's group
// into a single unit self-loop on that state. The receiver is modified in
// place; callers apply this only to matrices they own (submatrices).
func (m *Matrix) MakeRowsAbsorbing(states bitvec.Vector, groupIndices []int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := m.ValidateGroupIndices(groupIndices); err != nil {
		return err
	}
	if states.Len() != len(groupIndices)-1 || states.Len() != m.columnCount {
		return fmt.Errorf("%w: states over %d, matrix has %d columns and %d groups",
			ErrDimensionMismatch, states.Len(), m.columnCount, len(groupIndices)-1)
	}
	rowStart := make([]int, 1, m.rowCount+1)
	columns := make([]int, 0, len(m.columns))
	values := make([]float64, 0, len(m.values))
	for s := 0; s < states.Len(); s++ {
		absorbing := states.Get(s)
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			if absorbing {
				columns = append(columns, s)
				values = append(values, 1)
			} else {
				cols, vals := m.Row(r)
				columns = append(columns, cols...)
				values = append(values, vals...)
			}
			rowStart = append(rowStart, len(columns))
		}
	}
	m.rowStart, m.columns, m.values = rowStart, columns, values
	return nil
}

// TransposeToStates collapses the row-grouped matrix into the state-level
// backward transition relation: a square n×n matrix whose row t lists the
// states s with at least one choice carrying positive mass from s to t.
// Parallel edges from multiple choices are merged, values accumulated.
// The qualitative classifiers use only the structure of this matrix.
func (m *Matrix) TransposeToStates(groupIndices []int) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := m.ValidateGroupIndices(groupIndices); err != nil {
		return nil, err
	}
	n := len(groupIndices) - 1
	if m.columnCount != n {
		return nil, fmt.Errorf("%w: %d groups over %d columns", ErrDimensionMismatch, n, m.columnCount)
	}

	// First pass: count distinct predecessors per target state.
	counts := make([]int, n)
	seen := make([]int, n) // seen[t] = s+1 when (s→t) already counted for s
	for s := 0; s < n; s++ {
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			cols, vals := m.Row(r)
			for k, t := range cols {
				if vals[k] > 0 && seen[t] != s+1 {
					seen[t] = s + 1
					counts[t]++
				}
			}
		}
	}

	rowStart := make([]int, n+1)
	for t := 0; t < n; t++ {
		rowStart[t+1] = rowStart[t] + counts[t]
	}
	total := rowStart[n]
	columns := make([]int, total)
	values := make([]float64, total)
	next := make([]int, n)
	copy(next, rowStart[:n])
	pos := make([]int, n) // pos[t] = index of s's slot while processing s
	for t := range seen {
		seen[t] = 0
	}
	for s := 0; s < n; s++ {
		for r := groupIndices[s]; r < groupIndices[s+1]; r++ {
			cols, vals := m.Row(r)
			for k, t := range cols {
				if vals[k] <= 0 {
					continue
				}
				if seen[t] != s+1 {
					seen[t] = s + 1
					pos[t] = next[t]
					columns[next[t]] = s
					values[next[t]] = vals[k]
					next[t]++
				} else {
					values[pos[t]] += vals[k]
				}
			}
		}
	}
	return &Matrix{
		rowCount:    n,
		columnCount: n,
		rowStart:    rowStart,
		columns:     columns,
		values:      values,
	}, nil
}
