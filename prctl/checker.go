package prctl

import (
	"github.com/rs/zerolog"

	"github.com/veristoch/mdpcheck/bitvec"
	"github.com/veristoch/mdpcheck/mdp"
	"github.com/veristoch/mdpcheck/solver"
)

// Checker evaluates probability and reward queries against one MDP. It is
// immutable after construction; independent queries may run concurrently.
type Checker struct {
	model       *mdp.Model
	solver      solver.NondeterministicEquationSolver
	log         zerolog.Logger
	qualitative bool
}

// New builds a Checker for the given model. Without WithSolver, a
// value-iteration backend with default options is used.
func New(model *mdp.Model, opts ...Option) (*Checker, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.solver == nil {
		vi, err := solver.NewValueIteration()
		if err != nil {
			return nil, err
		}
		o.solver = vi
	}
	return &Checker{
		model:       model,
		solver:      o.solver,
		log:         o.logger,
		qualitative: o.qualitative,
	}, nil
}

// Model returns the checked model.
func (c *Checker) Model() *mdp.Model { return c.model }

// checkPredicate validates that a predicate covers the state space.
func (c *Checker) checkPredicate(v bitvec.Vector) error {
	if v.Len() != c.model.NumberOfStates() {
		return ErrPredicateLength
	}
	return nil
}

// logClassification reports the outcome of a qualitative preprocessing
// step.
func (c *Checker) logClassification(kind string, known0, known1, maybe int) {
	c.log.Info().
		Str("query", kind).
		Int("known0", known0).
		Int("known1", known1).
		Int("maybe", maybe).
		Msg("qualitative classification complete")
}

// logShortCircuit reports that the solve step was skipped.
func (c *Checker) logShortCircuit(kind string, qualitative bool) {
	e := c.log.Info().Str("query", kind)
	if qualitative {
		e.Msg("qualitative mode: no exact values computed")
		return
	}
	e.Msg("initial-state values determined by preprocessing: no exact values computed")
}
