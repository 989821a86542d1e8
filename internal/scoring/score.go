package scoring

import "jobmatch/internal/types"

// minCorpusSentences is the resume size at which the corpus-size factor of
// the confidence stops penalizing. Below it, confidence scales down
// linearly: a three-sentence resume cannot justify a confident verdict.
const minCorpusSentences = 5

// Overall computes the weighted mean of per-requirement similarities.
// Must-have requirements weigh mustHaveWeight, nice-to-haves 1.0.
// Returns a value in [0,1]; an empty requirement list scores 0.0.
func Overall(matches []types.RequirementMatch, mustHaveWeight float64) float64 {
	var weighted, total float64
	for _, m := range matches {
		w := m.Requirement.Weight(mustHaveWeight)
		weighted += w * m.Similarity
		total += w
	}
	if total == 0 {
		return 0.0
	}
	return clamp01(weighted / total)
}

// Confidence reflects how much of the requirement vocabulary is present in
// the resume at all, scaled by corpus size. Low coverage yields low
// confidence even when local similarities are high, which keeps sparse
// input from producing overconfident scores.
func Confidence(reqs []types.Requirement, ranker SentenceRanker) float64 {
	if len(reqs) == 0 {
		return 0.0
	}
	var coverage float64
	for _, req := range reqs {
		coverage += ranker.Coverage(req)
	}
	coverage /= float64(len(reqs))

	corpusFactor := float64(ranker.CorpusSize()) / float64(minCorpusSentences)
	if corpusFactor > 1.0 {
		corpusFactor = 1.0
	}

	return clamp01(coverage * corpusFactor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
