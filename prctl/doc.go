// Package prctl implements the quantitative reachability and reward
// engine for sparse MDPs: for every state, the minimal or maximal
// probability of satisfying a path condition, or the optimal expected
// reward, together with a memoryless scheduler realizing that optimum.
//
// A Checker is bound to one validated mdp.Model and an equation-solver
// backend. Every query runs the same pipeline to completion:
//
//	classify → (short-circuit | reduce → solve) → merge → extract
//
// Qualitative classification partitions the states into known-0, known-1
// (or known-∞ for rewards) and "maybe"; only the maybe-states enter the
// reduced equation system. When the initial states are disjoint from the
// maybe-set, or qualitative mode is on, the solve step is skipped and
// maybe-states receive a documented sentinel instead (0.5 for
// probabilities, 1 for rewards) — a deliberate approximation marking
// "neither bound", never a computed value.
//
// The optimization direction is an explicit argument on every entry
// point; there is no ambient minimizing/maximizing mode. Checkers hold no
// per-query mutable state, so independent queries against the same model
// may run concurrently.
//
// Step-bounded queries (Next, BoundedUntil, BoundedEventually,
// InstantaneousReward, CumulativeReward) use repeated optimizing
// matrix-vector multiplication instead of an equation solve: a finite
// horizon has no fixpoint.
package prctl
