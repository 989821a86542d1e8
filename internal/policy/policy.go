// Package policy maps an aggregate score and confidence to a recommended action.
package policy

import (
	"jobmatch/internal/config"
	"jobmatch/internal/types"
)

// Decide is a total, deterministic function from (score, confidence) to an
// Action. Threshold semantics, with the documented defaults in parentheses:
//
//   - score >= HighScore (0.75) and confidence >= MinConfidence (0.60): interview
//   - score >= LowScore (0.45), or confidence below MinConfidence: request-more-information
//   - otherwise: suggest-learning-path
//
// Boundary values are inclusive for the upper tier: score exactly at
// HighScore with confidence exactly at MinConfidence recommends an interview.
func Decide(score, confidence float64, opts config.Options) (types.Action, string) {
	if score >= opts.HighScore && confidence >= opts.MinConfidence {
		return types.ActionInterview, "high match score with sufficient confidence"
	}
	if score >= opts.LowScore || confidence < opts.MinConfidence {
		return types.ActionRequestInfo, "partial match or low confidence; more information would sharpen the verdict"
	}
	return types.ActionLearningPath, "low match score; closing the identified gaps would improve fit"
}
