// Package roommates computes a stable matching for a one-sided matching
// market via Irving's (1985) algorithm, and checks whether a given
// matching is stable.
//
// Unlike galeshapley, there are no separate proposer/reviewer populations:
// every agent both proposes and receives proposals from the same pool, and
// a stable matching need not exist at all. Solve runs in two phases — a
// Gale-Shapley-style proposal loop that trims each agent's preference list
// down to the partners still reachable in some stable matching, followed by
// repeated rotation elimination until every remaining list has exactly one
// entry.
//
// Ground truth: original_source/src/roommate.cpp.
package roommates

import "errors"

// Sentinel errors returned by Solve and CheckStability.
var (
	// ErrNilInput indicates a nil matrix argument.
	ErrNilInput = errors.New("roommates: input matrix is nil")

	// ErrInvalidPreferences indicates the preference matrix is not an
	// (N-1)xN table of mutually consistent rankings — e.g. an agent's
	// column does not contain every other agent exactly once, so a
	// partner removed from one side of the table can never be found on
	// the other.
	ErrInvalidPreferences = errors.New("roommates: invalid preference matrix")

	// ErrNoStableMatching indicates that no stable matching exists for
	// the given preferences: some agent exhausted their entire
	// preference list during the proposal phase, or every remaining
	// candidate was eliminated from an agent's list during trimming or
	// rotation elimination.
	ErrNoStableMatching = errors.New("roommates: no stable matching exists")
)

// IsNoStableMatching reports whether err wraps ErrNoStableMatching. Mirrors
// the reference's zero-vector sentinel for callers who'd rather branch on a
// predicate than match a specific error value.
func IsNoStableMatching(err error) bool {
	return errors.Is(err, ErrNoStableMatching)
}

// Options configures Solve.
type Options struct {
	// Trace, if non-nil, receives one line per accepted proposal in the
	// proposal phase and one per rotation search during rotation
	// elimination. Never load-bearing for correctness.
	Trace func(string)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithTrace installs a diagnostic sink invoked once per accepted proposal
// and once per rotation search during rotation elimination.
func WithTrace(fn func(string)) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the zero-config defaults: no tracing.
func DefaultOptions() Options {
	return Options{}
}
