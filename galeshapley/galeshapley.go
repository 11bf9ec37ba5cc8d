package galeshapley

import (
	"container/list"
	"fmt"

	"github.com/jtilly/matchingr/matrix"
)

// Solve computes the proposer-optimal stable matching via deferred
// acceptance. proposerPref is an N×M integer matrix: column p holds
// proposer p's reviewers ranked best-to-worst (the ranks, not utilities).
// reviewerUtils is an M×N cardinal utility matrix: reviewerUtils.At(p, r)
// is reviewer r's utility for proposer p.
//
// Every proposer starts as a "bachelor" and walks down its own preference
// column. The first reviewer who is either unmatched or who strictly
// prefers this proposer to its current partner accepts; a displaced
// incumbent is pushed back onto the bachelor queue. The loop terminates
// because each push-back strictly raises the utility of someone's current
// occupant, and there are only finitely many (proposer, reviewer) pairs.
//
// Ground truth: original_source/src/galeshapley.cpp:galeShapleyMatching.
//
// Complexity: O(N*M) in the worst case — each proposer can be rejected by
// at most N reviewers before running out of options.
func Solve(proposerPref *matrix.IntDense, reviewerUtils *matrix.Dense, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if proposerPref == nil || reviewerUtils == nil {
		return nil, ErrNilInput
	}

	// M = number of proposers, N = number of reviewers.
	m := proposerPref.Cols()
	n := proposerPref.Rows()
	if reviewerUtils.Rows() != m || reviewerUtils.Cols() != n {
		return nil, fmt.Errorf("%w: proposerPref is %dx%d, reviewerUtils is %dx%d",
			ErrDimensionMismatch, n, m, reviewerUtils.Rows(), reviewerUtils.Cols())
	}
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: proposerPref must have positive dimensions", ErrDimensionMismatch)
	}

	r := &runner{
		proposerPref:  proposerPref,
		reviewerUtils: reviewerUtils,
		n:             n,
		m:             m,
		trace:         cfg.Trace,
	}
	r.init()
	r.process()

	return &Result{Proposals: r.proposals, Engagements: r.engagements}, nil
}

// runner holds the mutable state of one Solve execution.
type runner struct {
	proposerPref  *matrix.IntDense
	reviewerUtils *matrix.Dense
	n, m          int // reviewers, proposers

	proposals   *matrix.IntDense // proposals[p] = reviewer matched to p, or n
	engagements *matrix.IntDense // engagements[r] = proposer matched to r, or m
	bachelors   *list.List       // FIFO queue of unmatched proposer ids
	trace       func(string)
}

// init seeds proposals/engagements with the sentinel "unmatched" values and
// fills the bachelor queue with every proposer, id 0 first. The final
// matching is independent of proposal order (any processing order of the
// bachelor queue converges to the same proposer-optimal stable matching),
// so this is a deterministic but otherwise arbitrary choice.
func (r *runner) init() {
	// Dimensions are already validated positive by Solve, so these errors
	// cannot occur in practice.
	r.proposals, _ = matrix.NewIntVector(r.m, r.n)
	r.engagements, _ = matrix.NewIntVector(r.n, r.m)
	r.bachelors = list.New()
	for p := r.m - 1; p >= 0; p-- {
		r.bachelors.PushFront(p)
	}
}

// process runs the deferred-acceptance loop until every proposer is either
// matched or has exhausted their preference list.
func (r *runner) process() {
	for r.bachelors.Len() > 0 {
		front := r.bachelors.Front()
		proposer := front.Value.(int)

		r.proposeOnBehalfOf(proposer)

		r.bachelors.Remove(front)
	}
}

// proposeOnBehalfOf walks proposer's preference column top-to-bottom until
// it finds a reviewer that is free or poachable, then commits that match
// (displacing the reviewer's prior partner back onto the bachelor queue).
func (r *runner) proposeOnBehalfOf(proposer int) {
	for rank := 0; rank < r.n; rank++ {
		reviewer, _ := r.proposerPref.At(rank, proposer)

		incumbent, _ := r.engagements.At(reviewer, 0)
		if incumbent == r.m {
			r.engage(proposer, reviewer)
			if r.trace != nil {
				r.trace(fmt.Sprintf("proposer %d matched to free reviewer %d", proposer, reviewer))
			}
			return
		}

		incumbentUtil, _ := r.reviewerUtils.At(incumbent, reviewer)
		proposerUtil, _ := r.reviewerUtils.At(proposer, reviewer)
		if proposerUtil > incumbentUtil {
			r.proposals.Set(incumbent, 0, r.n)
			r.bachelors.PushBack(incumbent)
			r.engage(proposer, reviewer)
			if r.trace != nil {
				r.trace(fmt.Sprintf("proposer %d displaces %d at reviewer %d", proposer, incumbent, reviewer))
			}
			return
		}
	}
	// proposer exhausted every reviewer on their list and remains unmatched;
	// proposals/engagements already carry the sentinel for this case.
}

// engage records a committed (proposer, reviewer) pair in both directions.
func (r *runner) engage(proposer, reviewer int) {
	r.proposals.Set(proposer, 0, reviewer)
	r.engagements.Set(reviewer, 0, proposer)
}
