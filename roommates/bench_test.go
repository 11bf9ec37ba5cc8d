package roommates_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jtilly/matchingr/matrix"
	"github.com/jtilly/matchingr/roommates"
)

// benchSizes are the market sizes to benchmark (must be even: a roommates
// market needs to pair off into couples).
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination.
var (
	sinkMatching *matrix.IntDense
	sinkBool     bool
)

// masterListPref builds an (n-1)xn preference table where every agent
// ranks everyone else in the same shared order (a "master list" instance).
// A master-list instance is always solvable — repeatedly pairing the two
// most-preferred remaining agents is a stable matching by construction —
// which keeps this benchmark's Solve calls free of ErrNoStableMatching
// regardless of market size, while still exercising the proposal phase,
// table construction, and rotation-elimination control flow end to end.
func masterListPref(b *testing.B, n int, seed int64) *matrix.IntDense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	order := rng.Perm(n)

	cols := make([][]int, n)
	for _, a := range order {
		col := make([]int, 0, n-1)
		for _, x := range order {
			if x != a {
				col = append(col, x)
			}
		}
		cols[a] = col
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
			pref := masterListPref(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matching, err := roommates.Solve(pref)
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
			pref := masterListPref(b, n, 7)
			matching, err := roommates.Solve(pref)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := roommates.CheckStability(pref, matching)
				if err != nil {
					b.Fatal(err)
				}
				sinkBool = ok
			}
		})
	}
}
