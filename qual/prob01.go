package qual

import (
	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/sparse"
)

// ProbGreater0E computes the states from which some scheduler satisfies
// phi-until-psi with positive probability: backward reachability from psi
// through phi-states. With WithStepBound(k), only states within k rounds
// are found.
//
// Complexity: O(entries of backward) unbounded; O(k · entries) bounded.
func ProbGreater0E(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector, opts ...Option) bitvec.Vector {
	o := gather(opts)
	result := psi.Clone()

	if o.bounded {
		// Level-synchronous rounds so the bound counts steps exactly.
		frontier := psi.Indices()
		for round := 0; round < o.stepBound && len(frontier) > 0; round++ {
			var next []int
			for _, t := range frontier {
				preds, _ := backward.Row(t)
				for _, p := range preds {
					if phi.Get(p) && !result.Get(p) {
						result.Set(p)
						next = append(next, p)
					}
				}
			}
			frontier = next
		}
		return result
	}

	stack := psi.Indices()
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		preds, _ := backward.Row(t)
		for _, p := range preds {
			if phi.Get(p) && !result.Get(p) {
				result.Set(p)
				stack = append(stack, p)
			}
		}
	}
	return result
}

// ProbGreater0A computes the states from which every scheduler satisfies
// phi-until-psi with positive probability: a state qualifies when each of
// its choices carries positive mass into the current set. Rounds are
// level-synchronous; WithStepBound(k) caps them at k.
//
// Complexity: O(rounds · entries), at most n rounds unbounded.
func ProbGreater0A(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector, opts ...Option) bitvec.Vector {
	o := gather(opts)
	maxRounds := phi.Len()
	if o.bounded {
		maxRounds = o.stepBound
	}

	current := psi.Clone()
	frontier := psi.Indices()
	for round := 0; round < maxRounds && len(frontier) > 0; round++ {
		// Eligibility is judged against the set as of the round start, so
		// that round r adds exactly the states with bound r.
		snapshot := current.Clone()
		// Candidates: phi-predecessors of last round's additions.
		var added []int
		for _, t := range frontier {
			preds, _ := backward.Row(t)
			for _, p := range preds {
				if !phi.Get(p) || current.Get(p) {
					continue
				}
				if everyChoiceEnters(m, choiceIndices, p, snapshot) {
					current.Set(p)
					added = append(added, p)
				}
			}
		}
		frontier = added
	}
	return current
}

// everyChoiceEnters reports whether each choice of state carries positive
// mass into target.
func everyChoiceEnters(m *sparse.Matrix, choiceIndices []int, state int, target bitvec.Vector) bool {
	for r := choiceIndices[state]; r < choiceIndices[state+1]; r++ {
		cols, vals := m.Row(r)
		enters := false
		for k, c := range cols {
			if vals[k] > 0 && target.Get(c) {
				enters = true
				break
			}
		}
		if !enters {
			return false
		}
	}
	return true
}

// Prob1E computes the states from which some scheduler satisfies
// phi-until-psi with probability one (double fixpoint, existential inner
// condition).
func Prob1E(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector) bitvec.Vector {
	return prob1(m, choiceIndices, backward, phi, psi, false)
}

// Prob1A computes the states from which every scheduler satisfies
// phi-until-psi with probability one (double fixpoint, universal inner
// condition).
func Prob1A(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector) bitvec.Vector {
	return prob1(m, choiceIndices, backward, phi, psi, true)
}

func prob1(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector, forall bool) bitvec.Vector {
	current := bitvec.Full(phi.Len())
	for {
		next := psi.Clone()
		stack := psi.Indices()
		for len(stack) > 0 {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			preds, _ := backward.Row(t)
			for _, p := range preds {
				if !phi.Get(p) || next.Get(p) || psi.Get(p) {
					continue
				}
				if prob1Qualifies(m, choiceIndices, p, current, next, forall) {
					next.Set(p)
					stack = append(stack, p)
				}
			}
		}
		if next.Equals(current) {
			return current
		}
		current = next
	}
}

// prob1Qualifies checks the inner condition for state: a choice is "good"
// when all its mass stays inside current and some mass enters next.
// Existential mode needs one good choice, universal mode all of them.
func prob1Qualifies(m *sparse.Matrix, choiceIndices []int, state int, current, next bitvec.Vector, forall bool) bool {
	for r := choiceIndices[state]; r < choiceIndices[state+1]; r++ {
		cols, vals := m.Row(r)
		allInCurrent, someInNext := true, false
		for k, c := range cols {
			if vals[k] <= 0 {
				continue
			}
			if !current.Get(c) {
				allInCurrent = false
				break
			}
			if next.Get(c) {
				someInNext = true
			}
		}
		good := allInCurrent && someInNext
		if forall && !good {
			return false
		}
		if !forall && good {
			return true
		}
	}
	return forall
}

// Prob01Min returns the probability-0 and probability-1 state sets under
// minimizing choice resolution: prob0 is the complement of ProbGreater0A,
// prob1 is Prob1A. The two sets are disjoint.
func Prob01Min(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector) (prob0, prob1 bitvec.Vector) {
	prob0 = ProbGreater0A(m, choiceIndices, backward, phi, psi).Not()
	prob1 = Prob1A(m, choiceIndices, backward, phi, psi)
	return prob0, prob1
}

// Prob01Max returns the probability-0 and probability-1 state sets under
// maximizing choice resolution: prob0 is the complement of ProbGreater0E,
// prob1 is Prob1E. The two sets are disjoint.
func Prob01Max(m *sparse.Matrix, choiceIndices []int, backward *sparse.Matrix, phi, psi bitvec.Vector) (prob0, prob1 bitvec.Vector) {
	prob0 = ProbGreater0E(m, choiceIndices, backward, phi, psi).Not()
	prob1 = Prob1E(m, choiceIndices, backward, phi, psi)
	return prob0, prob1
}

func gather(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
