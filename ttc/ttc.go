package ttc

import (
	"fmt"

	"github.com/jtilly/matchingr/matrix"
)

// unmatched marks an agent who has not yet been assigned a good in the
// current pass, and a matchings slot nobody has tentatively claimed yet.
const unmatched = -1

// Solve computes the Top Trading Cycles allocation for pref, an NxN
// preference table where column j is agent j's ranking of every good
// (including their own), most preferred first. The returned IntDense has
// one column; entry i is the agent whose good agent i ends up with. The
// result is always a permutation of 0..N-1 — TTC never leaves anyone
// unmatched.
//
// Ground truth: original_source/src/toptradingcycle.cpp:topTradingCycle.
//
// Complexity: O(N^2) worst case.
func Solve(pref *matrix.IntDense, opts ...Option) (*matrix.IntDense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if pref == nil {
		return nil, ErrNilInput
	}
	n := pref.Cols()
	if n == 0 || pref.Rows() != n {
		return nil, ErrInvalidPreferences
	}

	r := &runner{pref: pref, n: n, trace: cfg.Trace}

	return r.solve()
}

// runner holds the working state of one Solve call.
type runner struct {
	pref  *matrix.IntDense
	n     int
	trace func(string)

	isMatched []bool
	matchings []int
}

// solve runs the outer loop: find an unmatched agent to resume from, trace
// their trail of best-remaining-good pointers until a cycle closes, remove
// the cycle, and repeat until everyone has traded.
func (r *runner) solve() (*matrix.IntDense, error) {
	n := r.n
	r.isMatched = make([]bool, n)
	r.matchings = make([]int, n)
	for i := range r.matchings {
		r.matchings[i] = unmatched
	}

	currentAgent := unmatched

	for {
		if currentAgent == unmatched {
			currentAgent = r.firstUnmatched()
		}

		for {
			target, err := r.mostPreferredUnmatched(currentAgent)
			if err != nil {
				return nil, err
			}
			r.matchings[currentAgent] = target
			if r.trace != nil {
				r.trace(fmt.Sprintf("ttc: agent %d's best remaining good belongs to %d", currentAgent, target))
			}
			if r.matchings[r.matchings[currentAgent]] != unmatched {
				// target already points somewhere: the trail has revisited
				// an agent from this pass, closing a cycle at currentAgent.
				break
			}
			currentAgent = r.matchings[currentAgent]
		}

		if r.trace != nil {
			r.trace(fmt.Sprintf("ttc: cycle closes at agent %d", currentAgent))
		}
		for i := r.matchings[currentAgent]; i != currentAgent; i = r.matchings[i] {
			r.isMatched[i] = true
		}
		r.isMatched[currentAgent] = true

		if r.countMatched() == n {
			break
		}

		if r.wholeChainConsumed() {
			currentAgent = unmatched
		} else {
			currentAgent = r.danglingHead(currentAgent)
		}
	}

	return r.result()
}

// mostPreferredUnmatched returns agent's highest-ranked good whose owner
// has not yet left the market. An agent's own good is always an eventual
// fallback, since an agent is only ever a candidate here while unmatched.
func (r *runner) mostPreferredUnmatched(agent int) (int, error) {
	col, err := r.pref.Column(agent)
	if err != nil {
		return 0, err
	}
	for _, candidate := range col {
		if candidate >= 0 && candidate < r.n && !r.isMatched[candidate] {
			return candidate, nil
		}
	}

	return 0, ErrInvalidPreferences
}

func (r *runner) firstUnmatched() int {
	for i := 0; i < r.n; i++ {
		if !r.isMatched[i] {
			return i
		}
	}

	return unmatched
}

func (r *runner) countMatched() int {
	count := 0
	for _, m := range r.isMatched {
		if m {
			count++
		}
	}

	return count
}

// wholeChainConsumed reports whether every still-unmatched agent has no
// tentative trade pending — i.e. the just-closed cycle consumed this
// pass's entire trail, with no dangling "head" left to resume from.
func (r *runner) wholeChainConsumed() bool {
	for i := 0; i < r.n; i++ {
		if !r.isMatched[i] && r.matchings[i] != unmatched {
			return false
		}
	}

	return true
}

// danglingHead finds the still-unmatched agent whose pending trade pointed
// into the cycle that just closed at currentAgent — the point where this
// pass's trail forked off before reaching the cycle, and where the search
// for the next cycle should resume.
func (r *runner) danglingHead(currentAgent int) int {
	target := r.matchings[currentAgent]
	for i := 0; i < r.n; i++ {
		if !r.isMatched[i] && r.matchings[i] == target {
			return i
		}
	}

	return unmatched
}

func (r *runner) result() (*matrix.IntDense, error) {
	out, err := matrix.NewIntDense(r.n, 1)
	if err != nil {
		return nil, err
	}
	for i, v := range r.matchings {
		if err := out.Set(i, 0, v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
