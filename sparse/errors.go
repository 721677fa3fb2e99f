// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. All public operations return these
// sentinels (possibly wrapped with context via %w); tests match them with
// errors.Is. Panics are reserved for programmer errors in private helpers.

package sparse

import "errors"

var (
	// ErrBadShape is returned when a matrix is requested with a negative
	// row or column count.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrUnorderedEntry is returned by the builder when entries arrive out
	// of order: rows must be non-decreasing and columns strictly increasing
	// within a row.
	ErrUnorderedEntry = errors.New("sparse: entries must be added in order")

	// ErrNaNInf is returned when a NaN or ±Inf value is inserted; the
	// numeric pipeline requires finite entries.
	ErrNaNInf = errors.New("sparse: NaN or Inf entry")

	// ErrDimensionMismatch indicates incompatible operand dimensions.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrPatternMismatch is returned when two matrices that must share a
	// sparsity pattern (transition vs. transition-reward) do not.
	ErrPatternMismatch = errors.New("sparse: sparsity pattern mismatch")

	// ErrBadGroupIndices is returned when a choice-index slice is not a
	// strictly increasing partition of the matrix rows.
	ErrBadGroupIndices = errors.New("sparse: invalid row-group indices")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
