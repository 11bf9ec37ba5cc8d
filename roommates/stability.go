package roommates

import "github.com/jtilly/matchingr/matrix"

// CheckStability reports whether matching admits a blocking pair: two
// agents who would both rather be matched to each other than to their
// current partners. pref is the (N-1)xN preference table Solve consumes;
// matching is an Nx1 vector, entry i holding the agent i is matched to.
//
// Ground truth: original_source/src/roommate.cpp:checkStabilityRoommate.
//
// Complexity: O(N^3) worst case (O(N^2) pairs, O(N) preference scan each).
func CheckStability(pref, matching *matrix.IntDense) (bool, error) {
	if pref == nil || matching == nil {
		return false, ErrNilInput
	}

	n := pref.Cols()
	if n == 0 || pref.Rows() != n-1 {
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

			iPrefers, err := prefersAlternative(pref, i, j, partnerI)
			if err != nil {
				return false, err
			}
			jPrefers, err := prefersAlternative(pref, j, i, partnerJ)
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

// prefersAlternative reports whether agent strictly prefers alternative to
// currentPartner: it scans agent's preference column top to bottom and
// returns true the moment alternative is seen, false the moment
// currentPartner is seen first. A candidate can never be an improvement
// over itself, so alternative == currentPartner short-circuits to false.
func prefersAlternative(pref *matrix.IntDense, agent, alternative, currentPartner int) (bool, error) {
	if alternative == currentPartner {
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
		if candidate == currentPartner {
			return false, nil
		}
	}

	return false, nil
}
