// Package matchingr implements the matching-market algorithms behind the
// R package jtilly/matchingR, rendered as an idiomatic Go library — pure
// functions over dense preference/utility matrices, no package-level
// state, safe to call concurrently on disjoint inputs.
//
// 🚀 What is matchingr?
//
//	A zero-dependency-beyond-testify library covering three classic
//	two-sided and one-sided matching problems:
//		• Gale-Shapley deferred acceptance: proposer-optimal stable matching
//		  between two populations (workers/firms, students/schools, …)
//		• Irving's stable roommates: one-sided stable matching, which may
//		  not exist for a given set of preferences
//		• Top Trading Cycles: the unique core allocation of a Shapley-Scarf
//		  housing market (each agent endowed with one good)
//
// ✨ Why choose matchingr?
//
//   - Minimal API — one Solve and one CheckStability per algorithm
//   - Pure Go — no cgo, no hidden deps, every entry point is a pure function
//   - Deterministic — ties in sorted preferences break the same way every run
//   - Extensible — every engine accepts a Trace sink for step-by-step diagnostics
//
// Under the hood, everything is organized by algorithm:
//
//	matrix/     — Dense (float64) and IntDense (int) row-major matrix types
//	prefutil/   — cardinal utilities -> ordinal preference conversions
//	galeshapley/ — two-sided stable matching
//	roommates/  — one-sided stable matching (Irving 1985)
//	ttc/        — Top Trading Cycles / Shapley-Scarf housing markets
//
// Quick example: two workers, two firms. Both workers rank firm 0 first;
// firm 0 prefers worker 0, so worker 1 ends up at firm 1.
//
//	proposerPref, _ := matrix.NewIntDenseFromColumns([][]int{{0, 1}, {0, 1}})
//	reviewerUtils, _ := matrix.NewDenseFromColumns([][]float64{{2, 1}, {1, 2}})
//	result, _ := galeshapley.Solve(proposerPref, reviewerUtils)
//
//	go get github.com/jtilly/matchingr
package matchingr
