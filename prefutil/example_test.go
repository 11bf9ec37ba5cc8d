package prefutil_test

import (
	"fmt"

	"github.com/jtilly/matchingr/matrix"
	"github.com/jtilly/matchingr/prefutil"
)

// ExampleSortIndex shows how a cardinal utility matrix becomes an ordinal
// preference matrix: column j is read top-to-bottom as agent j's ranking.
func ExampleSortIndex() {
	u, err := matrix.NewDenseFromColumns([][]float64{
		{2, 1, 0},
		{1, 2, 1},
		{0, 0, 2},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pref, err := prefutil.SortIndex(u)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(pref)
	// Output:
	// [0, 1, 2]
	// [1, 0, 0]
	// [2, 2, 1]
}
