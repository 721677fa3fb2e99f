package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/veristoch/mdpcheck/sparse"
)

// PolicyIteration solves Bellman systems by alternating exact evaluation
// of the linear system induced by a fixed memoryless policy with greedy
// policy improvement. Evaluation uses a dense LU factorization from
// gonum/mat, so the backend targets systems small enough to densify.
type PolicyIteration struct {
	opts options
}

// NewPolicyIteration returns a policy-iteration backend with the given
// options, or ErrOptionViolation for invalid ones.
func NewPolicyIteration(opts ...Option) (*PolicyIteration, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &PolicyIteration{opts: o}, nil
}

// SolveEquationSystem runs policy iteration starting from each state's
// first choice. It terminates when no state has a choice improving on the
// current policy by more than the configured precision, and returns
// ErrSingularSystem when a policy induces an unsolvable linear system.
func (p *PolicyIteration) SolveEquationSystem(dir Direction, m *sparse.Matrix, x, b []float64, choiceIndices []int) error {
	if err := checkSystem(m, x, b, choiceIndices); err != nil {
		return err
	}
	n := len(choiceIndices) - 1
	if n == 0 {
		return nil
	}
	policy := make([]int, n)

	for iter := 0; iter < p.opts.maxIterations; iter++ {
		values, err := evaluatePolicy(m, b, choiceIndices, policy, n)
		if err != nil {
			return err
		}

		improved := false
		for s := 0; s < n; s++ {
			current := policy[s]
			currentValue := choiceValue(m, b, choiceIndices[s]+current, values)
			best, bestValue := current, currentValue
			for offset := 0; offset < choiceIndices[s+1]-choiceIndices[s]; offset++ {
				if offset == current {
					continue
				}
				v := choiceValue(m, b, choiceIndices[s]+offset, values)
				if better(dir, v, bestValue, p.opts.precision) {
					best, bestValue = offset, v
				}
			}
			if best != current {
				policy[s] = best
				improved = true
			}
		}
		if !improved {
			copy(x, values)
			return nil
		}
	}
	return fmt.Errorf("%w: after %d policy improvements", ErrNoConvergence, p.opts.maxIterations)
}

// MatrixVectorMultiply performs repetitions rounds of x = opt(A·x [+ add]).
func (p *PolicyIteration) MatrixVectorMultiply(dir Direction, m *sparse.Matrix, x []float64, choiceIndices []int, add []float64, repetitions int) error {
	return multiplyReduce(dir, m, x, choiceIndices, add, repetitions)
}

// evaluatePolicy solves (I - A_policy)·v = b_policy with a dense LU.
func evaluatePolicy(m *sparse.Matrix, b []float64, choiceIndices []int, policy []int, n int) ([]float64, error) {
	system := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for s := 0; s < n; s++ {
		row := choiceIndices[s] + policy[s]
		system.Set(s, s, 1)
		cols, vals := m.Row(row)
		for k, c := range cols {
			system.Set(s, c, system.At(s, c)-vals[k])
		}
		rhs.SetVec(s, b[row])
	}

	var solution mat.VecDense
	if err := solution.SolveVec(system, rhs); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		// Ill-conditioned but solved; the improvement loop decides whether
		// the values are good enough to stop on.
	}
	out := make([]float64, n)
	for s := 0; s < n; s++ {
		out[s] = solution.AtVec(s)
	}
	return out, nil
}

// choiceValue computes b[row] + Σ P(row,succ)·values[succ].
func choiceValue(m *sparse.Matrix, b []float64, row int, values []float64) float64 {
	return b[row] + m.MultiplyRow(row, values)
}

// better reports whether candidate strictly improves on incumbent in the
// given direction by more than tolerance (the margin prevents cycling on
// floating-point noise).
func better(dir Direction, candidate, incumbent, tolerance float64) bool {
	if dir == Minimize {
		return candidate < incumbent-tolerance
	}
	return candidate > incumbent+tolerance
}
