// SPDX-License-Identifier: MIT

// Package vecutil provides the dense-vector helpers shared by the solver
// and the checker engine: scatter/gather between full-length state vectors
// and reduced vectors over a kept state set, and the row-group-aware
// min/max reductions that resolve nondeterminism.
//
// Conventions:
//
//   - A "positions" bit vector addresses a full-length vector; reduced
//     vectors are indexed by the rank of a state within positions.
//   - Group-aware functions take a choice-index slice idx of length n+1;
//     group i spans rows [idx[i], idx[i+1]).
//   - Reductions scan each group left to right; on ties the first row
//     wins, which fixes the deterministic tie-break for extracted
//     schedulers.
//
// All functions panic on length mismatches: the callers assemble these
// vectors from validated models, so a mismatch is a programming error,
// not bad input.
package vecutil
