// Package bitvec provides fixed-length bit vectors over state indices.
//
// A Vector represents a subset of the state universe [0, n) and is the
// common currency between the qualitative classifiers, the equation-system
// reduction and the checker engine: phi/psi predicates, classification
// results and constraint sets are all Vectors of the same length.
//
// Design:
//
//   - The universe length is fixed at construction and never changes;
//     mixing Vectors of different lengths is a programmer error and panics.
//   - Word-level storage and set algebra are delegated to
//     github.com/bits-and-blooms/bitset; this package pins the length and
//     adds the rank/sub-universe operations the engine needs (Indices,
//     SelectFrom).
//   - Value-producing operations (Union, Intersect, Not, AndNot) never
//     mutate their operands; InPlace variants exist for scratch sets.
//
// Complexity: all set algebra is O(n/64); Count uses popcount per word.
package bitvec
