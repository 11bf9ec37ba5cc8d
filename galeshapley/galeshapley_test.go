package galeshapley_test

import (
	"testing"

	"github.com/jtilly/matchingr/galeshapley"
	"github.com/jtilly/matchingr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPref(t *testing.T, cols [][]int) *matrix.IntDense {
	t.Helper()
	m, err := matrix.NewIntDenseFromColumns(cols)
	require.NoError(t, err)

	return m
}

func mustUtils(t *testing.T, cols [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromColumns(cols)
	require.NoError(t, err)

	return m
}

func TestSolve_NoDisplacementWhenIncumbentsArePreferred(t *testing.T) {
	proposerPref := mustPref(t, [][]int{
		{0, 1, 2}, // proposer 0
		{1, 0, 2}, // proposer 1
		{0, 1, 2}, // proposer 2
	})
	// reviewerUtils rows = proposers, cols = reviewers; each literal below is
	// one reviewer's column. Every reviewer ranks proposer 2 last, so
	// proposer 2 is turned away by reviewers 0 and 1 and ends at reviewer 2.
	reviewerUtils := mustUtils(t, [][]float64{
		{2, 3, 1}, // reviewer 0's utility for proposer 0,1,2
		{3, 2, 1}, // reviewer 1's utility for proposer 0,1,2
		{3, 2, 1}, // reviewer 2's utility for proposer 0,1,2
	})

	result, err := galeshapley.Solve(proposerPref, reviewerUtils)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, result.Proposals.Vector())
	assert.Equal(t, []int{0, 1, 2}, result.Engagements.Vector())
}

func TestSolve_DisplacementChainEndsInStableMatching(t *testing.T) {
	proposerPref := mustPref(t, [][]int{
		{0, 1, 2},
		{1, 0, 2},
		{0, 1, 2},
	})
	reviewerUtils := mustUtils(t, [][]float64{
		{2, 3, 3},
		{3, 2, 2},
		{5, 1, 1}, // reviewer 2 strongly prefers proposer 0
	})

	result, err := galeshapley.Solve(proposerPref, reviewerUtils)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 0}, result.Proposals.Vector())
	assert.Equal(t, []int{2, 0, 1}, result.Engagements.Vector())

	// The produced matching must itself be stable.
	proposerUtils := mustUtils(t, [][]float64{
		// N (reviewers) rows x M (proposers) cols; arbitrary consistent cardinal utilities.
		{3, 2, 1},
		{2, 3, 1},
		{1, 1, 3},
	})
	ok, err := galeshapley.CheckStability(proposerUtils, reviewerUtils, result.Proposals, result.Engagements)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSolve_RejectsDimensionMismatch(t *testing.T) {
	proposerPref := mustPref(t, [][]int{{0, 1}, {1, 0}})
	reviewerUtils := mustUtils(t, [][]float64{{1, 2, 3}})

	_, err := galeshapley.Solve(proposerPref, reviewerUtils)
	assert.ErrorIs(t, err, galeshapley.ErrDimensionMismatch)
}

func TestSolve_RejectsNilInput(t *testing.T) {
	_, err := galeshapley.Solve(nil, nil)
	assert.ErrorIs(t, err, galeshapley.ErrNilInput)
}

func TestSolve_EveryProposerMatchedInBalancedMarket(t *testing.T) {
	// With M == N and complete preference lists, deferred acceptance always
	// terminates with every proposer and every reviewer matched.
	proposerPref := mustPref(t, [][]int{
		{1, 0},
		{0, 1},
	})
	reviewerUtils := mustUtils(t, [][]float64{
		{1, 2},
		{2, 1},
	})

	result, err := galeshapley.Solve(proposerPref, reviewerUtils)
	require.NoError(t, err)

	n := proposerPref.Rows()
	for _, v := range result.Proposals.Vector() {
		assert.NotEqual(t, n, v, "every proposer should be matched in a balanced complete market")
	}
}
