package counterfactual

import (
	"jobmatch/internal/parsing"
	"jobmatch/internal/types"
)

// UntraceableTerms returns the terms of a counterfactual's suggested text
// that cannot be traced to the source resume or to the requirement it
// targets. Gap proposals are exempt: they are explicitly tagged as skills
// to acquire, never presented as possessed experience.
//
// This is the system's non-fabrication invariant. A non-gap proposal whose
// suggested text introduces vocabulary absent from the resume is fabricating
// a claim and must be rejected, regardless of how the proposal was produced.
func UntraceableTerms(c types.Counterfactual, resumeVocab map[string]bool) []string {
	if c.Gap {
		return nil
	}

	allowed := make(map[string]bool, len(resumeVocab))
	for term := range resumeVocab {
		allowed[term] = true
	}
	for _, term := range parsing.Tokenize(c.Before) {
		allowed[term] = true
	}

	var untraceable []string
	for _, term := range parsing.Tokenize(c.After) {
		if !allowed[term] {
			untraceable = append(untraceable, term)
		}
	}
	return untraceable
}

// resumeVocabulary collects every normalized term appearing in the resume.
func resumeVocabulary(resume *types.ParsedResume) map[string]bool {
	vocab := make(map[string]bool)
	for _, sent := range resume.Sentences {
		for _, term := range sent.Terms {
			vocab[term] = true
		}
	}
	return vocab
}
