package ttc_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jtilly/matchingr/matrix"
	"github.com/jtilly/matchingr/ttc"
)

// benchSizes are the market sizes to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination.
var (
	sinkMatching *matrix.IntDense
	sinkBool     bool
)

// randPrefMatrix builds an nxn IntDense where every column is an
// independent random permutation of [0, n) — a full housing-market
// preference table always admits a Top Trading Cycles allocation, so no
// solvability precondition is needed here unlike the roommates benchmark.
func randPrefMatrix(b *testing.B, n int, seed int64) *matrix.IntDense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	cols := make([][]int, n)
	for j := 0; j < n; j++ {
		cols[j] = rng.Perm(n)
	}
	m, err := matrix.NewIntDenseFromColumns(cols)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pref := randPrefMatrix(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matching, err := ttc.Solve(pref)
				if err != nil {
					b.Fatal(err)
				}
				sinkMatching = matching
			}
		})
	}
}

func BenchmarkCheckStability(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			pref := randPrefMatrix(b, n, 7)
			matching, err := ttc.Solve(pref)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := ttc.CheckStability(pref, matching)
				if err != nil {
					b.Fatal(err)
				}
				sinkBool = ok
			}
		})
	}
}
