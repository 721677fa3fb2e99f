// Package mdp defines the Markov decision process consumed by the checker:
// a row-grouped transition matrix, the choice-index partition tying rows to
// states, the initial-state set and the optional reward models.
//
// A Model is validated once at construction and read-only afterwards; it
// may be shared across concurrently running analyses. The backward
// transition relation is derived lazily on first use and cached.
//
// The package also defines TotalScheduler, the memoryless deterministic
// scheduler the engine returns: one fixed choice offset per state,
// created once and never mutated.
package mdp
