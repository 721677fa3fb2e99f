// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"math"
)

// Builder accumulates matrix entries in row-major order and produces an
// immutable Matrix. Entries must be appended with non-decreasing row
// indices and strictly increasing column indices within each row; this
// keeps construction a single O(entries) pass and guarantees sorted rows,
// which the group-aware operations rely on.
type Builder struct {
	rowCount    int
	columnCount int
	rowStart    []int
	columns     []int
	values      []float64
	currentRow  int
}

// NewBuilder returns a Builder for a rows × columns matrix.
func NewBuilder(rows, columns int) (*Builder, error) {
	if rows < 0 || columns < 0 {
		return nil, fmt.Errorf("%w: %d x %d", ErrBadShape, rows, columns)
	}
	b := &Builder{
		rowCount:    rows,
		columnCount: columns,
		rowStart:    make([]int, 1, rows+1),
		currentRow:  0,
	}
	return b, nil
}

// AddEntry appends the value at (row, column). Zero values are stored as
// given; callers that want a sparser matrix simply skip them.
func (b *Builder) AddEntry(row, column int, value float64) error {
	if row < 0 || row >= b.rowCount || column < 0 || column >= b.columnCount {
		return fmt.Errorf("%w: entry (%d,%d) in %d x %d matrix",
			ErrOutOfRange, row, column, b.rowCount, b.columnCount)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: entry (%d,%d)", ErrNaNInf, row, column)
	}
	if row < b.currentRow {
		return fmt.Errorf("%w: row %d after row %d", ErrUnorderedEntry, row, b.currentRow)
	}
	for b.currentRow < row {
		b.rowStart = append(b.rowStart, len(b.columns))
		b.currentRow++
	}
	if last := len(b.columns); last > b.rowStart[len(b.rowStart)-1] && b.columns[last-1] >= column {
		return fmt.Errorf("%w: column %d after column %d in row %d",
			ErrUnorderedEntry, column, b.columns[last-1], row)
	}
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return nil
}

// Build finalizes the accumulated entries into a Matrix. The Builder must
// not be reused afterwards.
func (b *Builder) Build() *Matrix {
	// Close every remaining row, including the final boundary.
	for b.currentRow < b.rowCount {
		b.rowStart = append(b.rowStart, len(b.columns))
		b.currentRow++
	}
	return &Matrix{
		rowCount:    b.rowCount,
		columnCount: b.columnCount,
		rowStart:    b.rowStart,
		columns:     b.columns,
		values:      b.values,
	}
}
