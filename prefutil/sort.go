package prefutil

import (
	"sort"

	"github.com/jtilly/matchingr/matrix"
)

// SortIndex returns, for each column of u, the row indices in descending
// order of value — column j of the result is agent j's ordinal preference
// list derived from column j of u's cardinal utilities (row 0 most
// preferred). Ties are broken by ascending original index, which keeps the
// result deterministic.
//
// Ground truth: original_source/src/utils.cpp:sortIndex.
//
// Complexity: O(N log N) per column, O(N*M log N) total.
func SortIndex(u *matrix.Dense) (*matrix.IntDense, error) {
	n, m := u.Rows(), u.Cols()
	if n == 0 || m == 0 {
		return nil, ErrEmptyMatrix
	}

	sorted, err := matrix.NewIntDense(n, m)
	if err != nil {
		return nil, err
	}

	for j := 0; j < m; j++ {
		col, err := u.Column(j)
		if err != nil {
			return nil, err
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			if col[idx[a]] != col[idx[b]] {
				return col[idx[a]] > col[idx[b]]
			}
			return idx[a] < idx[b]
		})
		if err = sorted.SetColumn(j, idx); err != nil {
			return nil, err
		}
	}

	return sorted, nil
}
