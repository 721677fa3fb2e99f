package prctl

import (
	"fmt"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/mdp"
	"github.com/veristoch/mdpcheck/qual"
	"github.com/veristoch/mdpcheck/vecutil"
)

// Next computes, per state, the extremal probability of entering
// nextStates in one step.
func (c *Checker) Next(dir Direction, nextStates bitvec.Vector) ([]float64, error) {
	if err := c.checkPredicate(nextStates); err != nil {
		return nil, err
	}
	result := make([]float64, c.model.NumberOfStates())
	vecutil.Fill(result, nextStates, 1)
	err := c.solver.MatrixVectorMultiply(dir, c.model.TransitionMatrix(), result,
		c.model.NondeterministicChoiceIndices(), nil, 1)
	if err != nil {
		return nil, fmt.Errorf("next probabilities: %w", err)
	}
	return result, nil
}

// BoundedUntil computes, per state, the extremal probability of reaching a
// psi-state within stepBound steps while staying in phi-states. A step
// bound of 0 yields exactly the psi indicator.
func (c *Checker) BoundedUntil(dir Direction, phi, psi bitvec.Vector, stepBound int) ([]float64, error) {
	if err := c.checkPredicate(phi); err != nil {
		return nil, err
	}
	if err := c.checkPredicate(psi); err != nil {
		return nil, err
	}
	if stepBound < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeStepBound, stepBound)
	}

	m := c.model.TransitionMatrix()
	idx := c.model.NondeterministicChoiceIndices()
	backward := c.model.BackwardTransitions()

	// States with probability 0 within the bound keep their zero entry and
	// drop out of the reduced system altogether.
	var greater0 bitvec.Vector
	if dir == Minimize {
		greater0 = qual.ProbGreater0A(m, idx, backward, phi, psi, qual.WithStepBound(stepBound))
	} else {
		greater0 = qual.ProbGreater0E(m, idx, backward, phi, psi, qual.WithStepBound(stepBound))
	}
	maybe := greater0.AndNot(psi)
	c.logClassification("bounded until", greater0.Not().Count(), psi.Count(), maybe.Count())

	result := make([]float64, c.model.NumberOfStates())
	if c.qualitative || c.model.InitialStates().IsDisjoint(maybe) {
		c.logShortCircuit("bounded until", c.qualitative)
		vecutil.Fill(result, maybe, ProbabilitySentinel)
		vecutil.Fill(result, psi, 1)
		return result, nil
	}

	sub, err := m.Submatrix(greater0, idx)
	if err != nil {
		return nil, fmt.Errorf("bounded until probabilities: %w", err)
	}
	subIdx := vecutil.ConstrainedOffsetVector(idx, greater0)
	subPsi := psi.SelectFrom(greater0)
	if err := sub.MakeRowsAbsorbing(subPsi, subIdx); err != nil {
		return nil, fmt.Errorf("bounded until probabilities: %w", err)
	}

	x := make([]float64, greater0.Count())
	vecutil.Fill(x, subPsi, 1)
	if err := c.solver.MatrixVectorMultiply(dir, sub, x, subIdx, nil, stepBound); err != nil {
		return nil, fmt.Errorf("bounded until probabilities: %w", err)
	}

	vecutil.Scatter(result, greater0, x)
	return result, nil
}

// Until computes, per state, the extremal probability of reaching a
// psi-state along phi-states, together with a memoryless scheduler
// attaining it.
func (c *Checker) Until(dir Direction, phi, psi bitvec.Vector) ([]float64, *mdp.TotalScheduler, error) {
	if err := c.checkPredicate(phi); err != nil {
		return nil, nil, err
	}
	if err := c.checkPredicate(psi); err != nil {
		return nil, nil, err
	}

	m := c.model.TransitionMatrix()
	idx := c.model.NondeterministicChoiceIndices()
	backward := c.model.BackwardTransitions()

	var prob0, prob1 bitvec.Vector
	if dir == Minimize {
		prob0, prob1 = qual.Prob01Min(m, idx, backward, phi, psi)
	} else {
		prob0, prob1 = qual.Prob01Max(m, idx, backward, phi, psi)
	}
	maybe := prob0.Union(prob1).Not()
	c.logClassification("until", prob0.Count(), prob1.Count(), maybe.Count())

	result := make([]float64, c.model.NumberOfStates())
	if c.qualitative || c.model.InitialStates().IsDisjoint(maybe) {
		c.logShortCircuit("until", c.qualitative)
		vecutil.Fill(result, maybe, ProbabilitySentinel)
	} else {
		sub, err := m.Submatrix(maybe, idx)
		if err != nil {
			return nil, nil, fmt.Errorf("until probabilities: %w", err)
		}
		subIdx := vecutil.ConstrainedOffsetVector(idx, maybe)

		// Right-hand side: per kept row, the one-step probability mass
		// flowing directly into a prob-1 state.
		b, err := m.ConstrainedRowSumVector(maybe, idx, prob1)
		if err != nil {
			return nil, nil, fmt.Errorf("until probabilities: %w", err)
		}

		x := make([]float64, maybe.Count())
		if err := c.solver.SolveEquationSystem(dir, sub, x, b, subIdx); err != nil {
			return nil, nil, fmt.Errorf("until probabilities: %w", err)
		}
		vecutil.Scatter(result, maybe, x)
	}
	vecutil.Fill(result, prob1, 1)

	scheduler, err := c.extractScheduler(dir, result, false)
	if err != nil {
		return nil, nil, err
	}
	return result, scheduler, nil
}

// Eventually computes extremal reachability probabilities for psi; it is
// until with an unconstrained left side.
func (c *Checker) Eventually(dir Direction, psi bitvec.Vector) ([]float64, *mdp.TotalScheduler, error) {
	return c.Until(dir, bitvec.Full(c.model.NumberOfStates()), psi)
}

// BoundedEventually computes extremal step-bounded reachability
// probabilities for psi.
func (c *Checker) BoundedEventually(dir Direction, psi bitvec.Vector, stepBound int) ([]float64, error) {
	return c.BoundedUntil(dir, bitvec.Full(c.model.NumberOfStates()), psi, stepBound)
}

// Globally computes, per state, the extremal probability of staying in
// psi-states forever. It rewrites to the complemented reachability query
// under the opposite direction and subtracts from one.
func (c *Checker) Globally(dir Direction, psi bitvec.Vector) ([]float64, error) {
	if err := c.checkPredicate(psi); err != nil {
		return nil, err
	}
	result, _, err := c.Eventually(dir.Opposite(), psi.Not())
	if err != nil {
		return nil, err
	}
	vecutil.SubtractFromConstantOne(result)
	return result, nil
}
