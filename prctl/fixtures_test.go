package prctl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/mdp"
	"github.com/veristoch/mdpcheck/sparse"
)

// dieSuccessors encodes Knuth and Yao's coin-flip simulation of a fair
// die: internal states 0..6, outcome states 7..12 (faces one to six),
// every flip a uniform branch to the listed pair.
var dieSuccessors = [7][2]int{
	{1, 2},
	{3, 4},
	{5, 6},
	{1, 7},
	{8, 9},
	{10, 11},
	{2, 12},
}

const (
	dieStates   = 13
	dieInternal = 7
)

// dieModel is the single die as a one-choice-per-state MDP: outcome
// states absorb, internal states carry reward 1 per flip.
func dieModel(t *testing.T) *mdp.Model {
	t.Helper()
	b, err := sparse.NewBuilder(dieStates, dieStates)
	require.NoError(t, err)
	idx := make([]int, 0, dieStates+1)
	rewards := make([]float64, dieStates)
	for s := 0; s < dieStates; s++ {
		idx = append(idx, s)
		if s < dieInternal {
			succ := dieSuccessors[s]
			require.NoError(t, b.AddEntry(s, succ[0], 0.5))
			require.NoError(t, b.AddEntry(s, succ[1], 0.5))
			rewards[s] = 1
		} else {
			require.NoError(t, b.AddEntry(s, s, 1))
		}
	}
	idx = append(idx, dieStates)
	model, err := mdp.New(b.Build(), idx,
		mdp.WithInitialStates(bitvec.NewFromIndices(dieStates, 0)),
		mdp.WithStateRewards(rewards),
	)
	require.NoError(t, err)
	return model
}

// dieOutcomes is the absorbing faces of the die.
func dieOutcomes() bitvec.Vector {
	return bitvec.NewFromIndices(dieStates, 7, 8, 9, 10, 11, 12)
}

// twoDiceModel interleaves two independent dice: as long as both are
// still rolling the scheduler picks which one flips next, afterwards the
// unfinished one flips alone. Every state with an unfinished die carries
// reward 1, so accumulated reward counts total flips.
func twoDiceModel(t *testing.T) *mdp.Model {
	t.Helper()
	const n = dieStates * dieStates
	id := func(a, c int) int { return a*dieStates + c }
	done := func(s int) bool { return s >= dieInternal }

	rows := 0
	for a := 0; a < dieStates; a++ {
		for c := 0; c < dieStates; c++ {
			if !done(a) && !done(c) {
				rows += 2
			} else {
				rows++
			}
		}
	}

	b, err := sparse.NewBuilder(rows, n)
	require.NoError(t, err)
	idx := make([]int, 0, n+1)
	rewards := make([]float64, n)
	row := 0
	for a := 0; a < dieStates; a++ {
		for c := 0; c < dieStates; c++ {
			idx = append(idx, row)
			switch {
			case done(a) && done(c):
				require.NoError(t, b.AddEntry(row, id(a, c), 1))
				row++
			case done(a):
				succ := dieSuccessors[c]
				require.NoError(t, b.AddEntry(row, id(a, succ[0]), 0.5))
				require.NoError(t, b.AddEntry(row, id(a, succ[1]), 0.5))
				rewards[id(a, c)] = 1
				row++
			case done(c):
				succ := dieSuccessors[a]
				require.NoError(t, b.AddEntry(row, id(succ[0], c), 0.5))
				require.NoError(t, b.AddEntry(row, id(succ[1], c), 0.5))
				rewards[id(a, c)] = 1
				row++
			default:
				succ := dieSuccessors[a]
				require.NoError(t, b.AddEntry(row, id(succ[0], c), 0.5))
				require.NoError(t, b.AddEntry(row, id(succ[1], c), 0.5))
				row++
				succ = dieSuccessors[c]
				require.NoError(t, b.AddEntry(row, id(a, succ[0]), 0.5))
				require.NoError(t, b.AddEntry(row, id(a, succ[1]), 0.5))
				row++
				rewards[id(a, c)] = 1
			}
		}
	}
	idx = append(idx, row)

	model, err := mdp.New(b.Build(), idx,
		mdp.WithInitialStates(bitvec.NewFromIndices(n, 0)),
		mdp.WithStateRewards(rewards),
	)
	require.NoError(t, err)
	return model
}

// twoDiceSum selects the finished states whose faces add up to sum.
func twoDiceSum(sum int) bitvec.Vector {
	v := bitvec.New(dieStates * dieStates)
	for a := dieInternal; a < dieStates; a++ {
		for c := dieInternal; c < dieStates; c++ {
			if (a - dieInternal + 1 + c - dieInternal + 1) == sum {
				v.Set(a*dieStates + c)
			}
		}
	}
	return v
}

// twoDiceDone selects the states where both dice have finished.
func twoDiceDone() bitvec.Vector {
	v := bitvec.New(dieStates * dieStates)
	for a := dieInternal; a < dieStates; a++ {
		for c := dieInternal; c < dieStates; c++ {
			v.Set(a*dieStates + c)
		}
	}
	return v
}

// coinModel has one genuinely nondeterministic state:
//
//	state 0: choice 0 → 0.5·goal + 0.5·trap ; choice 1 → 0.9·goal + 0.1·trap
//	state 1 (goal) and state 2 (trap) absorb.
func coinModel(t *testing.T, initial int) *mdp.Model {
	t.Helper()
	b, err := sparse.NewBuilder(4, 3)
	require.NoError(t, err)
	require.NoError(t, b.AddEntry(0, 1, 0.5))
	require.NoError(t, b.AddEntry(0, 2, 0.5))
	require.NoError(t, b.AddEntry(1, 1, 0.9))
	require.NoError(t, b.AddEntry(1, 2, 0.1))
	require.NoError(t, b.AddEntry(2, 1, 1))
	require.NoError(t, b.AddEntry(3, 2, 1))
	model, err := mdp.New(b.Build(), []int{0, 2, 3, 4},
		mdp.WithInitialStates(bitvec.NewFromIndices(3, initial)))
	require.NoError(t, err)
	return model
}

// rewardChainModel: state 0 either jumps straight to the target (state 2)
// or detours via state 1; every non-target state costs 1.
func rewardChainModel(t *testing.T) *mdp.Model {
	t.Helper()
	b, err := sparse.NewBuilder(4, 3)
	require.NoError(t, err)
	require.NoError(t, b.AddEntry(0, 2, 1))
	require.NoError(t, b.AddEntry(1, 1, 1))
	require.NoError(t, b.AddEntry(2, 2, 1))
	require.NoError(t, b.AddEntry(3, 2, 1))
	model, err := mdp.New(b.Build(), []int{0, 2, 3, 4},
		mdp.WithInitialStates(bitvec.NewFromIndices(3, 0)),
		mdp.WithStateRewards([]float64{1, 1, 0}))
	require.NoError(t, err)
	return model
}

// electionModel is an asymmetric election toy: four cyclic round states
// feed an absorbing elected state (4). Each round the scheduler backs the
// fast candidate (wins with 0.5) or the slow one (wins with 0.25); a lost
// round advances the cycle. Every round costs 1.
func electionModel(t *testing.T) *mdp.Model {
	t.Helper()
	const rounds = 4
	b, err := sparse.NewBuilder(2*rounds+1, rounds+1)
	require.NoError(t, err)
	idx := make([]int, 0, rounds+2)
	row := 0
	for r := 0; r < rounds; r++ {
		idx = append(idx, row)
		next := (r + 1) % rounds
		for _, win := range []float64{0.5, 0.25} {
			require.NoError(t, b.AddEntry(row, next, 1-win))
			require.NoError(t, b.AddEntry(row, rounds, win))
			row++
		}
	}
	idx = append(idx, row)
	require.NoError(t, b.AddEntry(row, rounds, 1))
	idx = append(idx, row+1)

	model, err := mdp.New(b.Build(), idx,
		mdp.WithInitialStates(bitvec.NewFromIndices(rounds+1, 0)),
		mdp.WithStateRewards([]float64{1, 1, 1, 1, 0}))
	require.NoError(t, err)
	return model
}

// rewardEscapeModel: state 0 either enters the target (state 1) or a
// rewardless sink (state 2) that never reaches it.
func rewardEscapeModel(t *testing.T) *mdp.Model {
	t.Helper()
	b, err := sparse.NewBuilder(4, 3)
	require.NoError(t, err)
	require.NoError(t, b.AddEntry(0, 1, 1))
	require.NoError(t, b.AddEntry(1, 2, 1))
	require.NoError(t, b.AddEntry(2, 1, 1))
	require.NoError(t, b.AddEntry(3, 2, 1))
	model, err := mdp.New(b.Build(), []int{0, 2, 3, 4},
		mdp.WithInitialStates(bitvec.NewFromIndices(3, 0)),
		mdp.WithStateRewards([]float64{1, 0, 0}))
	require.NoError(t, err)
	return model
}
