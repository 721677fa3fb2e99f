package mdp

import "fmt"

// TotalScheduler is a memoryless deterministic scheduler: for every state
// it fixes one choice, given as the 0-based offset of a row within the
// state's row group. It is a result artifact and never mutated after
// construction.
type TotalScheduler struct {
	choices []int
}

// NewTotalScheduler copies the given per-state choice offsets.
func NewTotalScheduler(choices []int) *TotalScheduler {
	return &TotalScheduler{choices: append([]int(nil), choices...)}
}

// NumberOfStates reports the number of states covered.
func (s *TotalScheduler) NumberOfStates() int { return len(s.choices) }

// Choice returns the chosen row offset of state. It returns
// ErrStateOutOfRange for an invalid state.
func (s *TotalScheduler) Choice(state int) (int, error) {
	if state < 0 || state >= len(s.choices) {
		return 0, fmt.Errorf("%w: %d of %d", ErrStateOutOfRange, state, len(s.choices))
	}
	return s.choices[state], nil
}

// Choices returns a copy of the full state → choice-offset mapping.
func (s *TotalScheduler) Choices() []int {
	return append([]int(nil), s.choices...)
}
