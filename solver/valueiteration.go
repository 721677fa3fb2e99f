package solver

import (
	"fmt"
	"math"

	"github.com/veristoch/mdpcheck/sparse"
	"github.com/veristoch/mdpcheck/vecutil"
)

// ValueIteration solves Bellman systems by successive approximation.
// The zero value is not usable; construct with NewValueIteration.
type ValueIteration struct {
	opts options
}

// NewValueIteration returns a value-iteration backend with the given
// options, or ErrOptionViolation for invalid ones.
func NewValueIteration(opts ...Option) (*ValueIteration, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &ValueIteration{opts: o}, nil
}

// SolveEquationSystem iterates x = opt(b + A·x) until two iterates agree
// within the configured precision, or returns ErrNoConvergence when the
// iteration budget runs out. x is used as the starting point and
// overwritten with the result.
func (v *ValueIteration) SolveEquationSystem(dir Direction, m *sparse.Matrix, x, b []float64, choiceIndices []int) error {
	if err := checkSystem(m, x, b, choiceIndices); err != nil {
		return err
	}
	rowValues := make([]float64, m.RowCount())
	next := make([]float64, len(x))
	for iter := 0; iter < v.opts.maxIterations; iter++ {
		if err := m.MultiplyWithVector(x, rowValues); err != nil {
			return err
		}
		vecutil.AddInPlace(rowValues, b)
		reduceFor(dir, rowValues, next, choiceIndices)
		converged := equalUpTo(x, next, v.opts.precision, v.opts.relative)
		copy(x, next)
		if converged {
			return nil
		}
	}
	return fmt.Errorf("%w: after %d iterations", ErrNoConvergence, v.opts.maxIterations)
}

// MatrixVectorMultiply performs repetitions rounds of x = opt(A·x [+ add]).
func (v *ValueIteration) MatrixVectorMultiply(dir Direction, m *sparse.Matrix, x []float64, choiceIndices []int, add []float64, repetitions int) error {
	return multiplyReduce(dir, m, x, choiceIndices, add, repetitions)
}

// multiplyReduce is the shared finite-horizon primitive of both backends.
func multiplyReduce(dir Direction, m *sparse.Matrix, x []float64, choiceIndices []int, add []float64, repetitions int) error {
	if repetitions < 0 {
		return fmt.Errorf("%w: %d", ErrBadRepetitions, repetitions)
	}
	if err := checkSystem(m, x, nil, choiceIndices); err != nil {
		return err
	}
	if add != nil && len(add) != m.RowCount() {
		return fmt.Errorf("%w: add has %d entries, matrix %d rows", ErrDimensionMismatch, len(add), m.RowCount())
	}
	rowValues := make([]float64, m.RowCount())
	for rep := 0; rep < repetitions; rep++ {
		if err := m.MultiplyWithVector(x, rowValues); err != nil {
			return err
		}
		if add != nil {
			vecutil.AddInPlace(rowValues, add)
		}
		reduceFor(dir, rowValues, x, choiceIndices)
	}
	return nil
}

func reduceFor(dir Direction, rowValues, target []float64, choiceIndices []int) {
	if dir == Minimize {
		vecutil.ReduceMin(rowValues, target, choiceIndices, nil)
	} else {
		vecutil.ReduceMax(rowValues, target, choiceIndices, nil)
	}
}

// checkSystem validates the shared shape invariants of a row-grouped
// system. b may be nil when no right-hand side is involved.
func checkSystem(m *sparse.Matrix, x, b []float64, choiceIndices []int) error {
	if m == nil {
		return sparse.ErrNilMatrix
	}
	if err := m.ValidateGroupIndices(choiceIndices); err != nil {
		return err
	}
	n := len(choiceIndices) - 1
	if len(x) != n || m.ColumnCount() != n {
		return fmt.Errorf("%w: x has %d entries for %d groups over %d columns",
			ErrDimensionMismatch, len(x), n, m.ColumnCount())
	}
	if b != nil && len(b) != m.RowCount() {
		return fmt.Errorf("%w: b has %d entries, matrix %d rows", ErrDimensionMismatch, len(b), m.RowCount())
	}
	return nil
}

// equalUpTo reports whether a and b agree entrywise within precision,
// relatively when requested (entries of b close to zero fall back to the
// absolute criterion).
func equalUpTo(a, b []float64, precision float64, relative bool) bool {
	for i := range a {
		diff := math.Abs(a[i] - b[i])
		if relative {
			if scale := math.Abs(b[i]); scale > 0 {
				if diff/scale > precision {
					return false
				}
				continue
			}
		}
		if diff > precision {
			return false
		}
	}
	return true
}
