// Package ttc implements David Gale's Top Trading Cycles algorithm for a
// Shapley-Scarf housing market: N agents, each endowed with one indivisible
// good and a strict ranking over every good (including their own), trade
// until nobody can gain by trading further. Unlike galeshapley and
// roommates, a TTC allocation always exists, is unique, and is the market's
// unambiguous "core" — there is no analogue of ErrNoStableMatching here.
//
// Solve repeatedly traces each agent's pointer to the owner of their most
// preferred remaining good; any such trail must eventually revisit an agent
// still pointing within the current trail, which closes a trading cycle.
// Every agent on that cycle gets their pointed-to good and leaves the
// market; the process repeats over whoever remains.
//
// Ground truth: original_source/src/toptradingcycle.cpp.
package ttc

import (
	"errors"
)

// Sentinel errors returned by Solve and CheckStability.
var (
	// ErrNilInput indicates a nil matrix argument.
	ErrNilInput = errors.New("ttc: input matrix is nil")

	// ErrInvalidPreferences indicates the preference matrix is not a
	// square NxN table of every agent ranking every good (including
	// their own), or that a matching argument disagrees with it in
	// size.
	ErrInvalidPreferences = errors.New("ttc: invalid preference matrix")
)

// Options configures Solve.
type Options struct {
	// Trace, if non-nil, receives one line per provisional trade and one
	// per closed trading cycle. Never load-bearing for correctness.
	Trace func(string)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithTrace installs a diagnostic sink invoked once per provisional trade.
func WithTrace(fn func(string)) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the zero-config defaults: no tracing.
func DefaultOptions() Options {
	return Options{}
}
