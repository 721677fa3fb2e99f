// Package mdp: sentinel errors and functional options for model
// construction.
package mdp

import (
	"errors"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/sparse"
)

// Sentinel errors for model construction.
var (
	// ErrNilTransitions is returned when no transition matrix is given.
	ErrNilTransitions = errors.New("mdp: transition matrix is nil")

	// ErrBadChoiceIndices is returned when the choice-index slice is not a
	// strictly increasing partition of the matrix rows. Every state must
	// own at least one choice.
	ErrBadChoiceIndices = errors.New("mdp: invalid nondeterministic choice indices")

	// ErrNotStochastic is returned when a choice's distribution does not
	// sum to one within the configured tolerance.
	ErrNotStochastic = errors.New("mdp: choice distribution does not sum to 1")

	// ErrNegativeProbability is returned when a transition entry is negative.
	ErrNegativeProbability = errors.New("mdp: negative transition probability")

	// ErrRewardShape is returned when a reward model does not match the
	// model: the state-reward vector must have one entry per state, the
	// transition-reward matrix the transition matrix's sparsity pattern.
	ErrRewardShape = errors.New("mdp: reward model shape mismatch")

	// ErrStateOutOfRange is returned for state arguments outside [0, n).
	ErrStateOutOfRange = errors.New("mdp: state index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mdp: invalid option supplied")
)

// DefaultRowSumTolerance is the absolute tolerance used when checking that
// every choice's probability mass sums to one.
const DefaultRowSumTolerance = 1e-9

// Option configures model construction via functional arguments. An
// invalid Option is recorded internally and surfaced as ErrOptionViolation
// by New.
type Option func(*options)

type options struct {
	initial           *bitvec.Vector
	stateRewards      []float64
	transitionRewards *sparse.Matrix
	rowSumTolerance   float64
	err               error
}

func defaultOptions() options {
	return options{rowSumTolerance: DefaultRowSumTolerance}
}

// WithInitialStates sets the model's initial-state set. Its length must
// equal the number of states; New validates this.
func WithInitialStates(initial bitvec.Vector) Option {
	return func(o *options) {
		v := initial.Clone()
		o.initial = &v
	}
}

// WithStateRewards attaches a dense state-reward vector (one entry per
// state).
func WithStateRewards(rewards []float64) Option {
	return func(o *options) {
		o.stateRewards = append([]float64(nil), rewards...)
	}
}

// WithTransitionRewards attaches a transition-reward matrix; it must share
// the transition matrix's sparsity pattern.
func WithTransitionRewards(rewards *sparse.Matrix) Option {
	return func(o *options) {
		o.transitionRewards = rewards
	}
}

// WithRowSumTolerance overrides the stochasticity tolerance.
//
//	tol ≥ 0: accepted
//	tol < 0: invalid option → ErrOptionViolation
func WithRowSumTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.rowSumTolerance = tol
	}
}
