// Package solver hosts the pluggable equation solvers consumed by the
// checker engine: implementations of the min/max Bellman fixpoint
//
//	x = opt_choice(b + A·x)
//
// over a row-grouped matrix, plus the repeated optimizing matrix-vector
// multiplication used by step-bounded queries.
//
// Two backends are provided:
//
//   - ValueIteration: successive approximation until two iterates agree
//     within a configurable (absolute or relative) precision. The engine's
//     default.
//   - PolicyIteration: alternates evaluating the linear system induced by
//     a fixed memoryless policy (dense LU via gonum.org/v1/gonum/mat) with
//     greedy policy improvement; terminates when the policy is stable.
//     Suited to smaller systems where exact per-policy solves pay off.
//
// The engine is agnostic to the backend: it only requires that the
// returned vector satisfies the Bellman equation for the requested
// direction up to the backend's own guarantee, and it propagates solver
// failures unchanged.
package solver
