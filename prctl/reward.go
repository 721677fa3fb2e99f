package prctl

import (
	"fmt"
	"math"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/mdp"
	"github.com/veristoch/mdpcheck/qual"
	"github.com/veristoch/mdpcheck/vecutil"
)

// InstantaneousReward computes, per state, the extremal expected state
// reward collected exactly stepBound steps from now. Requires a
// state-based reward model.
func (c *Checker) InstantaneousReward(dir Direction, stepBound int) ([]float64, error) {
	if stepBound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStepBound, stepBound)
	}
	if !c.model.HasStateRewards() {
		return nil, ErrNoRewardModel
	}
	result := make([]float64, c.model.NumberOfStates())
	copy(result, c.model.StateRewardVector())
	err := c.solver.MatrixVectorMultiply(dir, c.model.TransitionMatrix(), result,
		c.model.NondeterministicChoiceIndices(), nil, stepBound)
	if err != nil {
		return nil, fmt.Errorf("instantaneous rewards: %w", err)
	}
	return result, nil
}

// CumulativeReward computes, per state, the extremal expected reward
// accumulated over stepBound steps. Requires some reward model.
func (c *Checker) CumulativeReward(dir Direction, stepBound int) ([]float64, error) {
	if stepBound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStepBound, stepBound)
	}
	if !c.model.HasStateRewards() && !c.model.HasTransitionRewards() {
		return nil, ErrNoRewardModel
	}
	total, err := c.choiceRewardVector()
	if err != nil {
		return nil, fmt.Errorf("cumulative rewards: %w", err)
	}
	result := make([]float64, c.model.NumberOfStates())
	if c.model.HasStateRewards() {
		copy(result, c.model.StateRewardVector())
	}
	err = c.solver.MatrixVectorMultiply(dir, c.model.TransitionMatrix(), result,
		c.model.NondeterministicChoiceIndices(), total, stepBound)
	if err != nil {
		return nil, fmt.Errorf("cumulative rewards: %w", err)
	}
	return result, nil
}

// ReachabilityReward computes, per state, the extremal expected reward
// accumulated until a target state is entered, together with a memoryless
// scheduler attaining it. States that miss the target with positive
// probability under the relevant quantification receive +Inf. Requires
// some reward model.
func (c *Checker) ReachabilityReward(dir Direction, target bitvec.Vector) ([]float64, *mdp.TotalScheduler, error) {
	if err := c.checkPredicate(target); err != nil {
		return nil, nil, err
	}
	if !c.model.HasStateRewards() && !c.model.HasTransitionRewards() {
		return nil, nil, ErrNoRewardModel
	}

	m := c.model.TransitionMatrix()
	idx := c.model.NondeterministicChoiceIndices()
	backward := c.model.BackwardTransitions()
	full := bitvec.Full(c.model.NumberOfStates())

	// The minimal expected reward is finite wherever some scheduler
	// reaches the target almost surely; the maximal one only where every
	// scheduler does, since otherwise a scheduler may accumulate reward
	// forever.
	var almostSure bitvec.Vector
	if dir == Minimize {
		almostSure = qual.Prob1E(m, idx, backward, full, target)
	} else {
		almostSure = qual.Prob1A(m, idx, backward, full, target)
	}
	infinity := almostSure.Not()
	maybe := almostSure.AndNot(target)
	c.logClassification("reachability reward", infinity.Count(), target.Count(), maybe.Count())

	result := make([]float64, c.model.NumberOfStates())
	if c.qualitative || c.model.InitialStates().IsDisjoint(maybe) {
		c.logShortCircuit("reachability reward", c.qualitative)
		vecutil.Fill(result, maybe, RewardSentinel)
	} else {
		sub, err := m.Submatrix(maybe, idx)
		if err != nil {
			return nil, nil, fmt.Errorf("reachability rewards: %w", err)
		}
		subIdx := vecutil.ConstrainedOffsetVector(idx, maybe)

		// Right-hand side: the per-choice reward of every kept row.
		total, err := c.choiceRewardVector()
		if err != nil {
			return nil, nil, fmt.Errorf("reachability rewards: %w", err)
		}
		b := vecutil.SelectValues(maybe, idx, total)

		x := make([]float64, maybe.Count())
		if err := c.solver.SolveEquationSystem(dir, sub, x, b, subIdx); err != nil {
			return nil, nil, fmt.Errorf("reachability rewards: %w", err)
		}
		vecutil.Scatter(result, maybe, x)
	}
	// Target states keep their zero entry.
	vecutil.Fill(result, infinity, math.Inf(1))

	scheduler, err := c.extractScheduler(dir, result, true)
	if err != nil {
		return nil, nil, err
	}
	return result, scheduler, nil
}
