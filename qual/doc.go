// Package qual implements the qualitative graph fixpoints of the checker:
// classifying states whose probability of satisfying phi-until-psi is
// exactly 0 or exactly 1 under minimizing or maximizing resolution of the
// nondeterministic choices.
//
// Naming follows the quantifier over schedulers:
//
//   - E (existential): some scheduler — the maximizing side.
//   - A (universal): all schedulers — the minimizing side.
//
// ProbGreater0E/A compute the states with positive probability by a
// backward least fixpoint from psi through phi; their complements are the
// probability-0 sets. A step bound caps the number of fixpoint rounds for
// the bounded-until classification.
//
// Prob1E/A compute the probability-1 sets with the standard double
// fixpoint: an outer greatest fixpoint shrinking the candidate set, and an
// inner backward exploration requiring, per choice, that all mass stays
// inside the candidates and some mass makes progress toward psi. The
// simple single fixpoint is not sufficient here — a state looping with
// probability ½ and escaping to psi with ½ reaches psi almost surely but
// has a successor outside every intermediate set.
//
// Prob01Min/Max bundle the pair used by unbounded until. All functions are
// pure: they allocate their results and never touch the inputs.
package qual
