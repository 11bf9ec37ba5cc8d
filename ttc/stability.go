package ttc

import "github.com/jtilly/matchingr/matrix"

// CheckStability reports whether a TTC allocation lies in the market's
// core: no two agents would both rather hold each other's allocated good
// than their own. pref is the NxN preference table Solve consumes (every
// agent ranks every good, including their own); matching is an Nx1 vector,
// entry i holding the good agent i currently ends up with.
//
// TTC's own output always passes this check by construction (Gale's
// algorithm produces the unique core allocation); CheckStability exists to
// validate allocations built or modified outside Solve.
//
// Ground truth: original_source/src/toptradingcycle.cpp, generalizing the
// same pairwise scan roommates.CheckStability uses — asymmetric in that it
// stops scanning an agent's column as soon as it reaches that agent's own
// current good, rather than maintaining a separate "current match" column.
//
// Complexity: O(N^3) worst case.
func CheckStability(pref, matching *matrix.IntDense) (bool, error) {
	if pref == nil || matching == nil {
		return false, ErrNilInput
	}

	n := pref.Cols()
	if n == 0 || pref.Rows() != n {
		return false, ErrInvalidPreferences
	}
	if matching.Rows() != n || matching.Cols() != 1 {
		return false, ErrInvalidPreferences
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			partnerI, err := matching.At(i, 0)
			if err != nil {
				return false, err
			}
			partnerJ, err := matching.At(j, 0)
			if err != nil {
				return false, err
			}

			// A blocking pair here is i and j each preferring the good the
			// OTHER currently holds over their own — not preferring the
			// other agent's original endowment or identity.
			iPrefers, err := prefersAlternative(pref, i, partnerJ, partnerI)
			if err != nil {
				return false, err
			}
			jPrefers, err := prefersAlternative(pref, j, partnerI, partnerJ)
			if err != nil {
				return false, err
			}

			if iPrefers && jPrefers {
				return false, nil
			}
		}
	}

	return true, nil
}

// prefersAlternative reports whether agent strictly prefers holding
// alternative's good to currentGood: it scans agent's preference column
// top to bottom and returns true the moment alternative is seen, false the
// moment currentGood is seen first. Holding the good you already hold can
// never be an improvement, so alternative == currentGood short-circuits to
// false.
func prefersAlternative(pref *matrix.IntDense, agent, alternative, currentGood int) (bool, error) {
	if alternative == currentGood {
		return false, nil
	}

	col, err := pref.Column(agent)
	if err != nil {
		return false, err
	}

	for _, candidate := range col {
		if candidate == alternative {
			return true, nil
		}
		if candidate == currentGood {
			return false, nil
		}
	}

	return false, nil
}
