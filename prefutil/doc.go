// Package prefutil converts cardinal utility matrices into the ordinal
// preference matrices the matching engines consume, and back.
//
// They sit upstream of every engine in this module but carry no
// matching-market semantics of their own — just a per-column sort and its
// inverse permutation.
//
//   - SortIndex ranks a two-sided utility column (size N) descending.
//   - RankIndex inverts a sorted-index matrix back into per-element ranks.
//   - SortIndexOneSided does the same as SortIndex but shifts any entry at
//     or beyond its own column index up by one, because a one-sided market
//     column never contains the agent's own id (the roommates engine's
//     expected (N-1)×N input shape).
//
// Ground truth: original_source/src/utils.cpp (sortIndex, rankIndex) and
// original_source/src/stable.cpp (sortIndexOneSided).
package prefutil
