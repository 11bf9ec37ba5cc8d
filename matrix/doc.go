// Package matrix provides the dense numeric storage shared by every
// matching-market engine in this module.
//
// Two concrete types cover the data model:
//
//   - Dense holds float64 cardinal utilities (ProposerUtils, ReviewerUtils).
//   - IntDense holds int ordinal/index data (preference columns, match
//     slots, matching vectors).
//
// Both are row-major, bounds-checked, and support Clone for call-frame
// isolation — an engine never mutates a caller's matrix in place unless
// the caller passed ownership explicitly (documented per function).
//
// Neither type carries graph, decomposition, or statistics machinery: the
// matching engines only ever index, compare, and permute — see DESIGN.md
// for why the rest of a general-purpose linear-algebra surface has no
// consumer here.
package matrix
