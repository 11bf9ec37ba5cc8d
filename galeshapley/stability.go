package galeshapley

import (
	"fmt"

	"github.com/jtilly/matchingr/matrix"
)

// CheckStability reports whether a two-sided matching admits a blocking
// pair: a proposer and reviewer who both strictly prefer each other to
// their current assignment. proposerUtils is N×M (reviewer-indexed rows,
// proposer-indexed columns) and reviewerUtils is M×N (proposer rows,
// reviewer columns) — mirroring the orientation Solve uses. proposals and
// engagements may carry more than one column to represent "one-to-many"
// matchings where a proposer or reviewer holds multiple slots.
//
// When one side has strictly more total slots than the other, the shorter
// side's utility matrix is padded with a virtual row holding a utility so
// low (-1e10) that any real partner is always preferred over remaining
// unmatched — this is how the reference encodes "being unmatched" as a
// comparable outcome rather than a special case.
//
// Ground truth: original_source/src/galeshapley.cpp:checkStability.
//
// Complexity: O(M*N*slotsProposers*slotsReviewers).
func CheckStability(proposerUtils, reviewerUtils *matrix.Dense, proposals, engagements *matrix.IntDense, opts ...CheckOption) (bool, error) {
	cfg := DefaultCheckOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if proposerUtils == nil || reviewerUtils == nil || proposals == nil || engagements == nil {
		return false, ErrNilInput
	}

	m := proposerUtils.Cols() // workers/proposers
	n := proposerUtils.Rows() // firms/reviewers
	if reviewerUtils.Rows() != m || reviewerUtils.Cols() != n {
		return false, ErrDimensionMismatch
	}
	slotsProposers := proposals.Cols()
	slotsReviewers := engagements.Cols()

	props := normalizeIndices(proposals, cfg.Indexing)
	engs := normalizeIndices(engagements, cfg.Indexing)

	// Pad the short side with a virtual "unmatched" outcome so that a
	// proposer/reviewer with a free slot never appears starved of options.
	if n*slotsReviewers > m*slotsProposers {
		reviewerUtils = reviewerUtils.WithAddedRow(-1e10)
	}
	if m*slotsProposers > n*slotsReviewers {
		proposerUtils = proposerUtils.WithAddedRow(-1e10)
	}

	for w := 0; w < m; w++ {
		for f := 0; f < n; f++ {
			for sw := 0; sw < slotsProposers; sw++ {
				for sf := 0; sf < slotsReviewers; sf++ {
					blocking, err := isBlockingPair(reviewerUtils, proposerUtils, props, engs, w, f, sw, sf)
					if err != nil {
						return false, err
					}
					if blocking {
						if cfg.Trace != nil {
							cfg.Trace(blockingPairMessage(w, f))
						}
						return false, nil
					}
				}
			}
		}
	}

	return true, nil
}

// isBlockingPair checks whether worker w and firm f would both rather be
// matched to each other than to their current (slot sw, slot sf) partners.
func isBlockingPair(reviewerUtils, proposerUtils *matrix.Dense, props, engs *matrix.IntDense, w, f, sw, sf int) (bool, error) {
	currentFirmPartner, err := engs.At(f, sf)
	if err != nil {
		return false, err
	}
	currentWorkerPartner, err := props.At(w, sw)
	if err != nil {
		return false, err
	}

	firmPrefersWorker, err := reviewerUtils.At(w, f)
	if err != nil {
		return false, err
	}
	firmPrefersIncumbent, err := reviewerUtils.At(currentFirmPartner, f)
	if err != nil {
		return false, err
	}
	workerPrefersFirm, err := proposerUtils.At(f, w)
	if err != nil {
		return false, err
	}
	workerPrefersIncumbent, err := proposerUtils.At(currentWorkerPartner, w)
	if err != nil {
		return false, err
	}

	return firmPrefersWorker > firmPrefersIncumbent && workerPrefersFirm > workerPrefersIncumbent, nil
}

// normalizeIndices returns m itself for ZeroBased, and for OneBased a clone
// of m with every entry shifted down by one. The input is never mutated.
func normalizeIndices(m *matrix.IntDense, idx Indexing) *matrix.IntDense {
	if idx == ZeroBased {
		return m
	}
	out := m.Clone()
	for i := 0; i < out.Rows(); i++ {
		for j := 0; j < out.Cols(); j++ {
			v, _ := out.At(i, j)
			_ = out.Set(i, j, v-1)
		}
	}

	return out
}

func blockingPairMessage(worker, firm int) string {
	return fmt.Sprintf("matching is not stable: worker %d and firm %d would rather be matched to each other", worker, firm)
}
