package roommates

import (
	"fmt"

	"github.com/jtilly/matchingr/matrix"
)

// Solve computes a stable matching for a one-sided market of N agents via
// Irving's (1985) algorithm. pref is the (N-1)xN preference table: column j
// is agent j's ranking of every other agent, most preferred first (the
// shape prefutil.SortIndexOneSided produces directly from cardinal
// utilities). The returned IntDense has one column; entry i is the agent
// matched to agent i. Every matching this returns is an involution:
// matching[matching[i]] == i.
//
// Ground truth: original_source/src/roommate.cpp:stableRoommateMatching.
//
// Complexity: O(N^2) for the proposal phase and table construction,
// O(N^2) amortized for rotation elimination.
func Solve(pref *matrix.IntDense, opts ...Option) (*matrix.IntDense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if pref == nil {
		return nil, ErrNilInput
	}
	n := pref.Cols()
	if n == 0 || pref.Rows() != n-1 {
		return nil, ErrInvalidPreferences
	}

	r := &runner{pref: pref, n: n, trace: cfg.Trace}
	if err := r.proposalPhase(); err != nil {
		return nil, err
	}
	if err := r.buildTable(); err != nil {
		return nil, err
	}
	if err := r.trimFirstRound(); err != nil {
		return nil, err
	}
	if err := r.eliminateRotations(); err != nil {
		return nil, err
	}

	return r.matchings()
}

// runner holds the working state of one Solve call.
type runner struct {
	pref  *matrix.IntDense
	n     int
	trace func(string)

	// proposalTo[p] is the agent p currently holds a mutual proposal
	// with, or n (sentinel) while p is still free.
	proposalTo []int
	// proposalFrom[p] is the agent currently holding a proposal to p, or
	// n (sentinel) if nobody has proposed to p yet.
	proposalFrom []int
	// proposedTo[p] is how many entries of p's own preference column p
	// has already proposed down.
	proposedTo []int

	// table[a] is agent a's remaining acceptable partners, most
	// preferred first, trimmed as the algorithm progresses.
	table [][]int
}

// proposalPhase runs the Gale-Shapley-style proposal loop: every free agent
// repeatedly proposes to the next candidate on their own list until either
// every agent holds exactly one mutual proposal, or some agent exhausts
// their list while still free (no stable matching exists).
func (r *runner) proposalPhase() error {
	n := r.n
	r.proposalTo = make([]int, n)
	r.proposalFrom = make([]int, n)
	r.proposedTo = make([]int, n)
	for i := 0; i < n; i++ {
		r.proposalTo[i] = n
		r.proposalFrom[i] = n
	}

	stable := false
	for !stable {
		stable = true
		for p := 0; p < n; p++ {
			if r.proposalTo[p] != n {
				continue // already holds a mutual proposal this pass
			}
			// A free agent's own preference column holds exactly n-1
			// candidates (every other agent, self excluded); reaching
			// that many proposals while still free means the list is
			// exhausted.
			if r.proposedTo[p] == n-1 {
				return ErrNoStableMatching
			}

			proposee, err := r.pref.At(r.proposedTo[p], p)
			if err != nil {
				return err
			}
			proposeeCol, err := r.pref.Column(proposee)
			if err != nil {
				return err
			}

			rankOfProposer := rankOf(proposeeCol, p)
			rankOfIncumbent := rankOf(proposeeCol, r.proposalFrom[proposee])

			if rankOfProposer < rankOfIncumbent {
				if r.trace != nil {
					r.trace(fmt.Sprintf("roommates: %d accepts proposal from %d", proposee, p))
				}
				if r.proposalFrom[proposee] != n {
					r.proposalTo[r.proposalFrom[proposee]] = n
				}
				r.proposalTo[p] = proposee
				r.proposalFrom[proposee] = p
			}

			r.proposedTo[p]++
			stable = false
		}
	}

	return nil
}

// rankOf returns the index of agent within col, or len(col) if agent does
// not appear — used both for real agents and for the n (sentinel) "nobody"
// value, which never appears in a real preference column and therefore
// always ranks worse than any genuine candidate.
func rankOf(col []int, agent int) int {
	for i, v := range col {
		if v == agent {
			return i
		}
	}

	return len(col)
}

// buildTable copies each agent's full preference column into a mutable
// working list that trimFirstRound and eliminateRotations shrink in place.
func (r *runner) buildTable() error {
	r.table = make([][]int, r.n)
	for a := 0; a < r.n; a++ {
		col, err := r.pref.Column(a)
		if err != nil {
			return err
		}
		r.table[a] = append([]int(nil), col...)
	}

	return nil
}

// trimFirstRound removes, from the back of every agent's list, every
// candidate ranked worse than the partner that agent ended the proposal
// phase holding. Removal is symmetric: if b is removed from a's list, a is
// also removed from b's list, since stability rules out a and b ever
// matching once either has rejected the other.
func (r *runner) trimFirstRound() error {
	for a := 0; a < r.n; a++ {
		for {
			if len(r.table[a]) == 0 {
				return ErrNoStableMatching
			}
			back := r.table[a][len(r.table[a])-1]
			if back == r.proposalFrom[a] {
				break
			}
			if err := r.removeSymmetric(a, back); err != nil {
				return err
			}
		}
	}

	return nil
}

// removeSymmetric deletes b from a's table and a from b's table. a's entry
// is always the current back of its list; b's entry is found by value.
func (r *runner) removeSymmetric(a, b int) error {
	list := r.table[b]
	idx := -1
	for j, v := range list {
		if v == a {
			idx = j
			break
		}
	}
	if idx == -1 {
		return ErrInvalidPreferences
	}
	r.table[b] = append(list[:idx], list[idx+1:]...)
	r.table[a] = r.table[a][:len(r.table[a])-1]

	return nil
}

// eliminateRotations repeatedly finds and deletes rotations — cycles of
// agents each preferring the next agent's second choice to their own
// current last choice — until every agent's table has at most one entry
// left, at which point the matching is fully determined.
func (r *runner) eliminateRotations() error {
	stable := false
	for !stable {
		stable = true
		for a := 0; a < r.n; a++ {
			if len(r.table[a]) <= 1 {
				continue
			}
			stable = false
			if r.trace != nil {
				r.trace(fmt.Sprintf("roommates: searching for a rotation starting at %d", a))
			}

			x, index, rotTail, err := r.findRotation(a)
			if err != nil {
				return err
			}

			for i := rotTail + 1; i < len(index); i++ {
				for {
					if len(r.table[x[i]]) == 0 {
						return ErrNoStableMatching
					}
					back := r.table[x[i]][len(r.table[x[i]])-1]
					if back == index[i-1] {
						break
					}
					if err := r.removeSymmetric(x[i], back); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// findRotation walks the trail of second choices from a — x[i] is the
// agent holding a's i-th successor's second choice, index[i] is that
// agent's own current worst remaining choice — until an agent repeats,
// which closes a rotation. rotTail is the position in index where the
// repeat was first seen; everything after it is the rotation to eliminate.
func (r *runner) findRotation(a int) (x, index []int, rotTail int, err error) {
	newIndex := a
	rotTail = -1

	for {
		if len(r.table[newIndex]) < 2 {
			return nil, nil, 0, ErrNoStableMatching
		}
		newX := r.table[newIndex][1]
		if len(r.table[newX]) == 0 {
			return nil, nil, 0, ErrNoStableMatching
		}
		newIndex = r.table[newX][len(r.table[newX])-1]

		found := -1
		for k, v := range index {
			if v == newIndex {
				found = k
				break
			}
		}

		x = append(x, newX)
		index = append(index, newIndex)
		rotTail = found
		if found != -1 {
			return x, index, rotTail, nil
		}
	}
}

// matchings reads off table[a][0] for every agent once every table has
// exactly one entry, failing if any agent's list was eliminated entirely.
func (r *runner) matchings() (*matrix.IntDense, error) {
	for a := 0; a < r.n; a++ {
		if len(r.table[a]) == 0 {
			return nil, ErrNoStableMatching
		}
	}

	out, err := matrix.NewIntDense(r.n, 1)
	if err != nil {
		return nil, err
	}
	for a := 0; a < r.n; a++ {
		if err := out.Set(a, 0, r.table[a][0]); err != nil {
			return nil, err
		}
	}

	return out, nil
}
