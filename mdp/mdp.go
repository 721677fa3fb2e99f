package mdp

import (
	"fmt"
	"math"
	"sync"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/sparse"
)

// Model is a finite Markov decision process over states [0, n). All fields
// are immutable after New returns.
type Model struct {
	transitions   *sparse.Matrix
	choiceIndices []int // length n+1, strictly increasing
	initial       bitvec.Vector

	stateRewards      []float64      // nil when absent
	transitionRewards *sparse.Matrix // nil when absent

	backwardOnce sync.Once
	backward     *sparse.Matrix
}

// New validates and assembles a Model. transitions is the row-grouped
// probability matrix, choiceIndices its state partition (length n+1).
// Validation enforces: one or more choices per state, non-negative
// entries, each row summing to one within tolerance, and well-shaped
// reward models.
func New(transitions *sparse.Matrix, choiceIndices []int, opts ...Option) (*Model, error) {
	if transitions == nil {
		return nil, ErrNilTransitions
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := transitions.ValidateGroupIndices(choiceIndices); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadChoiceIndices, err)
	}
	n := len(choiceIndices) - 1
	if transitions.ColumnCount() != n {
		return nil, fmt.Errorf("%w: %d states but %d columns",
			ErrBadChoiceIndices, n, transitions.ColumnCount())
	}

	for r := 0; r < transitions.RowCount(); r++ {
		_, vals := transitions.Row(r)
		for _, v := range vals {
			if v < 0 {
				return nil, fmt.Errorf("%w: row %d", ErrNegativeProbability, r)
			}
		}
		if math.Abs(transitions.RowSum(r)-1) > o.rowSumTolerance {
			return nil, fmt.Errorf("%w: row %d sums to %v", ErrNotStochastic, r, transitions.RowSum(r))
		}
	}

	initial := bitvec.New(n)
	if o.initial != nil {
		if o.initial.Len() != n {
			return nil, fmt.Errorf("%w: initial states over %d states, model has %d",
				ErrStateOutOfRange, o.initial.Len(), n)
		}
		initial = *o.initial
	}

	if o.stateRewards != nil && len(o.stateRewards) != n {
		return nil, fmt.Errorf("%w: %d state rewards for %d states",
			ErrRewardShape, len(o.stateRewards), n)
	}
	if o.transitionRewards != nil {
		if _, err := transitions.PointwiseProductRowSumVector(o.transitionRewards); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRewardShape, err)
		}
	}

	return &Model{
		transitions:       transitions,
		choiceIndices:     append([]int(nil), choiceIndices...),
		initial:           initial,
		stateRewards:      o.stateRewards,
		transitionRewards: o.transitionRewards,
	}, nil
}

// NumberOfStates reports n.
func (m *Model) NumberOfStates() int { return len(m.choiceIndices) - 1 }

// NumberOfChoices reports the total number of rows in the transition
// matrix.
func (m *Model) NumberOfChoices() int { return m.transitions.RowCount() }

// TransitionMatrix returns the row-grouped probability matrix.
func (m *Model) TransitionMatrix() *sparse.Matrix { return m.transitions }

// NondeterministicChoiceIndices returns the state partition of the matrix
// rows. Callers must not modify the slice.
func (m *Model) NondeterministicChoiceIndices() []int { return m.choiceIndices }

// InitialStates returns the initial-state set.
func (m *Model) InitialStates() bitvec.Vector { return m.initial }

// HasStateRewards reports whether a state-reward vector is attached.
func (m *Model) HasStateRewards() bool { return m.stateRewards != nil }

// StateRewardVector returns the state-reward vector, or nil when absent.
// Callers must not modify the slice.
func (m *Model) StateRewardVector() []float64 { return m.stateRewards }

// HasTransitionRewards reports whether a transition-reward matrix is
// attached.
func (m *Model) HasTransitionRewards() bool { return m.transitionRewards != nil }

// TransitionRewardMatrix returns the transition-reward matrix, or nil when
// absent.
func (m *Model) TransitionRewardMatrix() *sparse.Matrix { return m.transitionRewards }

// BackwardTransitions returns the state-level predecessor relation,
// computing and caching it on first use. Safe for concurrent callers.
func (m *Model) BackwardTransitions() *sparse.Matrix {
	m.backwardOnce.Do(func() {
		bw, err := m.transitions.TransposeToStates(m.choiceIndices)
		if err != nil {
			// The inputs were validated in New; failing here is a bug.
			panic(fmt.Sprintf("mdp: backward transition construction failed: %v", err))
		}
		m.backward = bw
	})
	return m.backward
}
