// Package qual: functional options for the fixpoint computations.
package qual

// DefaultStepBound disables step bounding: fixpoints run to convergence.
const DefaultStepBound = 0

// Option configures a fixpoint computation.
type Option func(*options)

type options struct {
	stepBound int
	bounded   bool
}

func defaultOptions() options {
	return options{stepBound: DefaultStepBound, bounded: false}
}

// WithStepBound caps the number of fixpoint rounds at bound, giving the
// step-bounded reachability used by bounded until. A bound of 0 means
// "psi now": no round is performed and the result is exactly the
// psi-states. Negative bounds panic (programmer error).
func WithStepBound(bound int) Option {
	if bound < 0 {
		panic("qual: negative step bound")
	}
	return func(o *options) {
		o.stepBound = bound
		o.bounded = true
	}
}
