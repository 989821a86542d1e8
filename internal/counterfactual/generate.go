// Package counterfactual proposes minimal, non-fabricated resume edits that
// would raise the match score for weakly-matched requirements.
package counterfactual

import (
	"fmt"
	"strings"

	"jobmatch/internal/config"
	"jobmatch/internal/parsing"
	"jobmatch/internal/scoring"
	"jobmatch/internal/types"
)

// Generate proposes one edit per requirement whose best similarity falls
// below the target threshold. Weakly-matched requirements get a rephrase of
// their best evidence sentence surfacing terms already present elsewhere in
// the resume; unmatched requirements get an explicit gap acknowledgment.
// Each proposal carries a score delta estimated by re-running the scorer on
// the hypothetical edited sentence set.
func Generate(resume *types.ParsedResume, matches []types.RequirementMatch, opts config.Options) []types.Counterfactual {
	vocab := resumeVocabulary(resume)

	out := make([]types.Counterfactual, 0)
	for i, m := range matches {
		if m.Similarity >= opts.TargetThreshold && !m.Unmatched {
			continue
		}

		var c types.Counterfactual
		var ok bool
		if m.Unmatched {
			c, ok = gapProposal(resume, matches, i, opts)
		} else {
			c, ok = rephraseProposal(resume, matches, i, vocab, opts)
		}
		if !ok {
			continue
		}

		// Non-fabrication gate: drop any proposal whose suggested text
		// introduces terms absent from the source resume.
		if len(UntraceableTerms(c, vocab)) > 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// rephraseProposal rewrites the best evidence sentence to surface
// requirement terms that appear elsewhere in the resume but not in that
// sentence. Only resume vocabulary is ever added.
func rephraseProposal(resume *types.ParsedResume, matches []types.RequirementMatch, idx int, vocab map[string]bool, opts config.Options) (types.Counterfactual, bool) {
	m := matches[idx]
	best := m.Evidence[0]

	sentenceTerms := make(map[string]bool)
	for _, sent := range resume.Sentences {
		if sent.Position == best.Position {
			for _, term := range sent.Terms {
				sentenceTerms[term] = true
			}
		}
	}

	var surfaced []string
	for _, term := range m.Requirement.Terms {
		if vocab[term] && !sentenceTerms[term] {
			surfaced = append(surfaced, term)
		}
	}
	if len(surfaced) == 0 {
		return types.Counterfactual{}, false
	}

	after := fmt.Sprintf("%s, using %s", best.SentenceText, strings.Join(surfaced, ", "))

	delta, overallDelta := estimateDelta(resume, matches, idx, best.Position, after, opts)
	return types.Counterfactual{
		Requirement:   m.Requirement.Text,
		Type:          types.CounterfactualRephrase,
		Before:        best.SentenceText,
		After:         after,
		Section:       best.Section,
		ScoreDelta:    delta,
		OverallDelta:  overallDelta,
		Rationale:     fmt.Sprintf("surfaces %s, already present elsewhere in the resume", strings.Join(surfaced, ", ")),
		SurfacedTerms: surfaced,
	}, true
}

// gapProposal acknowledges a requirement with no supporting resume content.
// The estimated delta assumes the candidate genuinely gains the experience.
func gapProposal(resume *types.ParsedResume, matches []types.RequirementMatch, idx int, opts config.Options) (types.Counterfactual, bool) {
	m := matches[idx]

	subject := m.Requirement.Skill
	if subject == "" {
		subject = m.Requirement.Text
	}

	delta, overallDelta := estimateDelta(resume, matches, idx, -1, m.Requirement.Text, opts)
	return types.Counterfactual{
		Requirement:  m.Requirement.Text,
		Type:         types.CounterfactualGap,
		After:        fmt.Sprintf("not currently evidenced - consider adding experience with %s", subject),
		ScoreDelta:   delta,
		OverallDelta: overallDelta,
		Rationale:    "no resume content supports this requirement; listed as a skill to acquire, not as possessed experience",
		Gap:          true,
	}, true
}

// estimateDelta re-runs the scorer on a hypothetical sentence set where the
// sentence at replacePos is replaced by hypothetical text (or, when
// replacePos is negative, the text is appended as a new sentence). Returns
// the requirement's similarity delta and the resulting overall score delta.
func estimateDelta(resume *types.ParsedResume, matches []types.RequirementMatch, idx, replacePos int, hypothetical string, opts config.Options) (float64, float64) {
	augmented := hypotheticalResume(resume, replacePos, hypothetical)
	ranker := scoring.NewTFIDF(augmented)

	m := matches[idx]
	ranked := ranker.Rank(m.Requirement)
	newBest := 0.0
	if len(ranked) > 0 {
		newBest = ranked[0].Similarity
	}

	before := scoring.Overall(matches, opts.MustHaveWeight)
	patched := make([]types.RequirementMatch, len(matches))
	copy(patched, matches)
	patched[idx].Similarity = newBest
	after := scoring.Overall(patched, opts.MustHaveWeight)

	return newBest - m.Similarity, after - before
}

func hypotheticalResume(resume *types.ParsedResume, replacePos int, text string) *types.ParsedResume {
	sentences := make([]types.ResumeSentence, 0, len(resume.Sentences)+1)
	replaced := false
	for _, sent := range resume.Sentences {
		if sent.Position == replacePos {
			sentences = append(sentences, hypotheticalSentence(text, sent.Position, sent.Section))
			replaced = true
			continue
		}
		sentences = append(sentences, sent)
	}
	if !replaced {
		sentences = append(sentences, hypotheticalSentence(text, len(resume.Sentences), types.SectionExperience))
	}
	return &types.ParsedResume{Sentences: sentences}
}

func hypotheticalSentence(text string, position int, section types.Section) types.ResumeSentence {
	return types.ResumeSentence{
		Text:     text,
		Position: position,
		Section:  section,
		Terms:    parsing.Tokenize(text),
	}
}
