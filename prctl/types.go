// Package prctl: sentinel errors, sentinels and functional options for
// the checker.
package prctl

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/veristoch/mdpcheck/solver"
)

// Direction re-exports the solver's choice-resolution direction; every
// entry point takes it explicitly.
type Direction = solver.Direction

// Minimize and Maximize are the two choice resolutions.
const (
	Minimize = solver.Minimize
	Maximize = solver.Maximize
)

// Sentinel errors of the checker. All are precondition violations in the
// sense of the error taxonomy: fatal, reported at the point of detection,
// never retried. Solver failures are propagated unchanged.
var (
	// ErrNilModel is returned when a Checker is constructed without a model.
	ErrNilModel = errors.New("prctl: model is nil")

	// ErrNoRewardModel is returned when a reward query meets a model with
	// neither state nor transition rewards (or, for instantaneous
	// rewards, no state rewards).
	ErrNoRewardModel = errors.New("prctl: missing reward model for formula")

	// ErrNegativeStepBound is returned for a negative step bound.
	ErrNegativeStepBound = errors.New("prctl: negative step bound")

	// ErrPredicateLength is returned when a predicate bit vector does not
	// cover the model's state space.
	ErrPredicateLength = errors.New("prctl: predicate length does not match state count")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prctl: invalid option supplied")
)

// Sentinel values written to maybe-states when the solve step is skipped
// (short-circuit or qualitative mode). They mark "strictly between the
// known bounds" per query kind and are not computed values.
const (
	// ProbabilitySentinel is used for probability queries: neither 0 nor 1.
	ProbabilitySentinel = 0.5

	// RewardSentinel is used for reachability-reward queries: a finite
	// positive stand-in, neither 0 nor +Inf.
	RewardSentinel = 1.0
)

// Option configures a Checker.
type Option func(*options)

type options struct {
	solver      solver.NondeterministicEquationSolver
	logger      zerolog.Logger
	qualitative bool
	err         error
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithSolver selects the equation-solver backend. nil is an invalid
// option → ErrOptionViolation.
func WithSolver(s solver.NondeterministicEquationSolver) Option {
	return func(o *options) {
		if s == nil {
			o.err = ErrOptionViolation
			return
		}
		o.solver = s
	}
}

// WithLogger attaches a logger for classification and short-circuit
// notices. The default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithQualitative switches probability queries to qualitative mode:
// classification only, maybe-states receive the probability sentinel and
// the solver is never invoked.
func WithQualitative(qualitative bool) Option {
	return func(o *options) { o.qualitative = qualitative }
}
