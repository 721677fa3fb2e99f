// Package solver: direction type, solver contract, sentinel errors and
// functional options.
package solver

import (
	"errors"

	"github.com/veristoch/mdpcheck/sparse"
)

// Direction selects how nondeterministic choices are resolved.
type Direction int

const (
	// Minimize resolves every choice adversarially towards the smallest
	// value.
	Minimize Direction = iota
	// Maximize resolves every choice towards the largest value.
	Maximize
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Minimize {
		return "min"
	}
	return "max"
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Minimize {
		return Maximize
	}
	return Minimize
}

// NondeterministicEquationSolver solves Bellman systems over row-grouped
// matrices. Implementations must be safe for concurrent use by independent
// analyses.
type NondeterministicEquationSolver interface {
	// SolveEquationSystem computes x = opt(b + A·x) for the given
	// direction, overwriting x (one entry per row group) with the
	// fixpoint. b has one entry per matrix row. The initial content of x
	// may be used as the starting point.
	SolveEquationSystem(dir Direction, m *sparse.Matrix, x, b []float64, choiceIndices []int) error

	// MatrixVectorMultiply performs repetitions rounds of
	// x = opt(A·x [+ add]), the finite-horizon counterpart of
	// SolveEquationSystem. add, when non-nil, has one entry per matrix
	// row and is applied after each multiplication.
	MatrixVectorMultiply(dir Direction, m *sparse.Matrix, x []float64, choiceIndices []int, add []float64, repetitions int) error
}

// Sentinel errors shared by the solver backends.
var (
	// ErrNoConvergence is returned when the iteration budget is exhausted
	// before the convergence criterion holds.
	ErrNoConvergence = errors.New("solver: iteration did not converge")

	// ErrDimensionMismatch indicates inconsistently sized matrix/vector
	// arguments.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch")

	// ErrSingularSystem is returned by policy iteration when the linear
	// system induced by a policy cannot be solved.
	ErrSingularSystem = errors.New("solver: singular policy system")

	// ErrBadRepetitions is returned for a negative repetition count.
	ErrBadRepetitions = errors.New("solver: negative repetition count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Defaults - single source of truth for solver configuration.
const (
	// DefaultPrecision bounds the difference between successive iterates
	// accepted as converged.
	DefaultPrecision = 1e-6

	// DefaultRelative selects the relative convergence criterion.
	DefaultRelative = false

	// DefaultMaxIterations caps value-iteration rounds and
	// policy-improvement steps.
	DefaultMaxIterations = 10000
)

// Option configures a solver backend.
type Option func(*options)

type options struct {
	precision     float64
	relative      bool
	maxIterations int
	err           error
}

func defaultOptions() options {
	return options{
		precision:     DefaultPrecision,
		relative:      DefaultRelative,
		maxIterations: DefaultMaxIterations,
	}
}

// WithPrecision sets the convergence threshold.
//
//	p > 0: accepted
//	p ≤ 0: invalid option → ErrOptionViolation
func WithPrecision(p float64) Option {
	return func(o *options) {
		if p <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.precision = p
	}
}

// WithRelativeCriterion toggles the relative convergence criterion
// (|Δx| ≤ p·|x| per entry) instead of the absolute one.
func WithRelativeCriterion(relative bool) Option {
	return func(o *options) { o.relative = relative }
}

// WithMaxIterations caps the iteration count.
//
//	k > 0: accepted
//	k ≤ 0: invalid option → ErrOptionViolation
func WithMaxIterations(k int) Option {
	return func(o *options) {
		if k <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxIterations = k
	}
}
