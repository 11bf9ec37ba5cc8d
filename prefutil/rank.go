package prefutil

import "github.com/jtilly/matchingr/matrix"

// RankIndex inverts a sorted-index matrix (as produced by SortIndex) back
// into per-element ranks: RankIndex(sortedIdx)[sortedIdx[i,j], j] == i. The
// highest-utility element in a column receives rank 0.
//
// Ground truth: original_source/src/utils.cpp:rankIndex.
//
// Complexity: O(N*M).
func RankIndex(sortedIdx *matrix.IntDense) (*matrix.IntDense, error) {
	n, m := sortedIdx.Rows(), sortedIdx.Cols()
	if n == 0 || m == 0 {
		return nil, ErrEmptyMatrix
	}

	ranked, err := matrix.NewIntDense(n, m)
	if err != nil {
		return nil, err
	}

	for j := 0; j < m; j++ {
		for i := 0; i < n; i++ {
			agent, err := sortedIdx.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = ranked.Set(agent, j, i); err != nil {
				return nil, err
			}
		}
	}

	return ranked, nil
}
