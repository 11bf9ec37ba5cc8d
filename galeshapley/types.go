// Package galeshapley computes the proposer-optimal stable matching between
// two disjoint populations via deferred acceptance (Gale & Shapley 1962),
// and checks whether a given two-sided matching is stable.
//
// Solve runs a FIFO queue of "bachelor" proposers, each walking
// their preference column top-to-bottom, displacing a reviewer's current
// partner whenever the reviewer prefers the new proposer. The queue always
// empties — each re-enqueueing event strictly improves the displaced
// reviewer's occupant, so the potential function "sum over reviewers of the
// rank of their current partner" strictly decreases every time a proposer
// is pushed back onto the queue.
//
// CheckStability runs an exhaustive blocking-pair scan
// over every (worker, firm, slot, slot) tuple, with the short side's
// utility matrix padded by a virtual "unmatched" row so that being
// unmatched is always worse than any real pairing.
//
// Ground truth: original_source/src/galeshapley.cpp.
package galeshapley

import (
	"errors"

	"github.com/jtilly/matchingr/matrix"
)

// Sentinel errors returned by Solve and CheckStability.
var (
	// ErrDimensionMismatch indicates that ProposerPref's column count does
	// not match ReviewerUtils' row count (both must describe M proposers), or
	// that ProposerPref's row count does not match ReviewerUtils' column
	// count (both must describe N reviewers).
	ErrDimensionMismatch = errors.New("galeshapley: dimension mismatch between proposer and reviewer inputs")

	// ErrNilInput indicates a nil matrix argument.
	ErrNilInput = errors.New("galeshapley: input matrix is nil")
)

// Result holds the outcome of Solve.
type Result struct {
	// Proposals holds, for each proposer, the reviewer it is matched to.
	// An entry equal to N (the number of reviewers) means "unmatched".
	Proposals *matrix.IntDense

	// Engagements holds, for each reviewer, the proposer matched to it.
	// An entry equal to M (the number of proposers) means "unmatched".
	Engagements *matrix.IntDense
}

// Indexing selects the convention used by a caller-supplied matching when
// checking stability: the reference implementation sometimes expects
// 1-based matchings (R's native vector indexing) and sometimes 0-based.
// This module exposes a single 0-based contract by default and accepts
// OneBased as an explicit opt-in.
type Indexing int

const (
	// ZeroBased treats Proposals/Engagements entries as already 0-indexed.
	ZeroBased Indexing = iota
	// OneBased subtracts 1 from every entry before processing (R convention).
	OneBased
)

// CheckOptions configures CheckStability.
type CheckOptions struct {
	// Indexing selects how to interpret the Proposals/Engagements matrices.
	Indexing Indexing

	// Trace, if non-nil, receives one line per discovered blocking pair
	// before CheckStability returns false. Never load-bearing for
	// correctness.
	Trace func(string)
}

// CheckOption is a functional option for CheckStability.
type CheckOption func(*CheckOptions)

// WithIndexing sets the indexing convention of the supplied matching.
func WithIndexing(idx Indexing) CheckOption {
	return func(o *CheckOptions) { o.Indexing = idx }
}

// WithTrace installs a diagnostic sink invoked once per blocking pair found.
func WithTrace(fn func(string)) CheckOption {
	return func(o *CheckOptions) { o.Trace = fn }
}

// DefaultCheckOptions returns the zero-config defaults: 0-based indexing,
// no tracing.
func DefaultCheckOptions() CheckOptions {
	return CheckOptions{Indexing: ZeroBased}
}

// Options configures Solve.
type Options struct {
	// Trace, if non-nil, receives one line per accepted proposal (a match
	// to a free reviewer or a displacement); rejected proposals are not
	// traced.
	Trace func(string)
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithSolveTrace installs a diagnostic sink invoked once per accepted
// proposal (a match to a free reviewer or a displacement) during the
// deferred-acceptance loop.
func WithSolveTrace(fn func(string)) Option {
	return func(o *Options) { o.Trace = fn }
}

// DefaultOptions returns the zero-config defaults: no tracing.
func DefaultOptions() Options {
	return Options{}
}
