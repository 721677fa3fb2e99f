// Package mdpcheck is a quantitative model checker for Markov decision
// processes in sparse representation.
//
// What it covers:
//
//	bitvec/  — fixed-length bit vectors over state spaces
//	sparse/  — row-grouped CSR matrices and the reductions on them
//	vecutil/ — vector kernels shared by classification and solving
//	mdp/     — the model: transitions, choice partition, rewards
//	qual/    — qualitative reachability (prob-0 / prob-1 classification)
//	solver/  — Bellman equation backends: value and policy iteration
//	prctl/   — the query engine: probability and reward operators with
//	           scheduler extraction
//
// A query runs in three stages: graph-based classification settles the
// states with probability zero or one (or infinite expected reward), the
// remaining maybe-states are reduced to a smaller equation system and
// solved, and the partial results are merged back into a full-length
// value vector together with a memoryless scheduler attaining it.
//
// Minimal usage:
//
//	model, err := mdp.New(transitions, choiceIndices,
//		mdp.WithInitialStates(initial),
//		mdp.WithStateRewards(rewards))
//	if err != nil {
//		return err
//	}
//	checker, err := prctl.New(model)
//	if err != nil {
//		return err
//	}
//	values, scheduler, err := checker.Eventually(prctl.Maximize, target)
package mdpcheck
