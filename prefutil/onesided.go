package prefutil

import "github.com/jtilly/matchingr/matrix"

// SortIndexOneSided behaves like SortIndex, but is meant for a one-sided
// market's utility matrix: row i of column j holds agent j's utility for
// the i-th *other* agent (self excluded), so raw sorted indices live in
// [0, rows) and must be remapped to real agent ids in [0, cols) \ {j}.
// Any sorted index at or beyond its own column index j is incremented by
// one, producing RoommatePref's (N-1)×N shape directly.
//
// Ground truth: original_source/src/stable.cpp:sortIndexOneSided.
//
// Complexity: O(N log N) per column, O(N*M log N) total.
func SortIndexOneSided(u *matrix.Dense) (*matrix.IntDense, error) {
	sorted, err := SortIndex(u)
	if err != nil {
		return nil, err
	}

	n, m := sorted.Rows(), sorted.Cols()
	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			v, err := sorted.At(i, j)
			if err != nil {
				return nil, err
			}
			if v >= j {
				if err = sorted.Set(i, j, v+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return sorted, nil
}
