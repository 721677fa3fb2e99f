package prctl

import (
	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/mdp"
	"github.com/veristoch/mdpcheck/vecutil"
)

// extractScheduler re-derives, from the final value vector, the choice per
// state whose one-step backup attains the extremal value. Ties go to the
// first qualifying choice of the group. For reward queries the per-choice
// rewards enter the backup.
func (c *Checker) extractScheduler(dir Direction, values []float64, withRewards bool) (*mdp.TotalScheduler, error) {
	m := c.model.TransitionMatrix()
	idx := c.model.NondeterministicChoiceIndices()

	backup := make([]float64, c.model.NumberOfChoices())
	for r := range backup {
		backup[r] = m.MultiplyRow(r, values)
	}
	if withRewards {
		total, err := c.choiceRewardVector()
		if err != nil {
			return nil, err
		}
		vecutil.AddInPlace(backup, total)
	}

	choices := make([]int, c.model.NumberOfStates())
	best := make([]float64, c.model.NumberOfStates())
	if dir == Minimize {
		vecutil.ReduceMin(backup, best, idx, choices)
	} else {
		vecutil.ReduceMax(backup, best, idx, choices)
	}
	return mdp.NewTotalScheduler(choices), nil
}

// choiceRewardVector flattens the model's reward structures into a single
// per-choice reward vector: the expected transition reward of each row
// plus the reward of the row's state.
func (c *Checker) choiceRewardVector() ([]float64, error) {
	idx := c.model.NondeterministicChoiceIndices()
	full := bitvec.Full(c.model.NumberOfStates())
	if !c.model.HasTransitionRewards() {
		return vecutil.SelectValuesRepeatedly(full, idx, c.model.StateRewardVector()), nil
	}
	total, err := c.model.TransitionMatrix().PointwiseProductRowSumVector(c.model.TransitionRewardMatrix())
	if err != nil {
		return nil, err
	}
	if c.model.HasStateRewards() {
		vecutil.AddInPlace(total, vecutil.SelectValuesRepeatedly(full, idx, c.model.StateRewardVector()))
	}
	return total, nil
}
