// Package evidence selects the resume sentences that justify each
// requirement match.
package evidence

import (
	"jobmatch/internal/scoring"
	"jobmatch/internal/types"
)

// Extract builds the per-requirement match record: the requirement's best
// similarity plus up to topK evidence links above the similarity threshold.
// The threshold is strictly greater-than so zero-similarity sentences are
// never cited. A requirement with no sentence above threshold is marked
// unmatched with an empty evidence list rather than citing weak evidence.
func Extract(req types.Requirement, ranker scoring.SentenceRanker, topK int, threshold float64) types.RequirementMatch {
	ranked := ranker.Rank(req)

	links := make([]types.EvidenceLink, 0, topK)
	best := 0.0
	for i, rs := range ranked {
		if i == 0 {
			best = rs.Similarity
		}
		if rs.Similarity <= threshold {
			break
		}
		if len(links) == topK {
			break
		}
		links = append(links, types.EvidenceLink{
			SentenceText: rs.Sentence.Text,
			Position:     rs.Sentence.Position,
			Section:      rs.Sentence.Section,
			Similarity:   rs.Similarity,
		})
	}

	return types.RequirementMatch{
		Requirement: req,
		Similarity:  best,
		Evidence:    links,
		Unmatched:   len(links) == 0,
	}
}
