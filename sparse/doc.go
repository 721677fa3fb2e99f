// SPDX-License-Identifier: MIT

// Package sparse implements the row-grouped sparse matrix underlying the
// model checker: a compressed-sparse-row matrix whose rows are partitioned
// into contiguous groups, one group per state, one row per nondeterministic
// choice of that state.
//
// The grouping itself is not stored inside the matrix; it travels alongside
// as a choice-index slice of length n+1 (group i spans rows
// [idx[i], idx[i+1])), mirroring how the model carries it. All group-aware
// operations take that slice as an argument.
//
// Supported operations, in the order the engine uses them:
//
//   - Builder → Matrix construction with ordered-insertion validation.
//   - Submatrix: restrict to the row groups and columns of a kept state
//     set, re-indexing columns onto the kept states. A state is kept or
//     dropped with all of its choices; single rows are never dropped.
//   - ConstrainedRowSumVector: per kept row, the mass flowing directly
//     into a given column set (the right-hand side of the reduced system).
//   - PointwiseProductRowSumVector: per-row Σ p·r against a second matrix
//     with the identical sparsity pattern (expected transition reward).
//   - MakeRowsAbsorbing: replace every row of selected groups by a single
//     unit self-loop (used to freeze target states in bounded queries).
//   - TransposeToStates: the state-level backward transition relation.
//
// Matrices are immutable after Build except for MakeRowsAbsorbing, which
// the engine only applies to submatrices it owns.
package sparse
