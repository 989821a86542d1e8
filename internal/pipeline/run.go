// Package pipeline orchestrates the full match computation:
// parse, score, extract evidence, decide policy, generate counterfactuals.
package pipeline

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"jobmatch/internal/config"
	"jobmatch/internal/counterfactual"
	"jobmatch/internal/evidence"
	"jobmatch/internal/parsing"
	"jobmatch/internal/policy"
	"jobmatch/internal/scoring"
	"jobmatch/internal/types"
)

// Score runs the whole pipeline over in-memory text. It is pure with
// respect to its inputs: identical inputs produce identical results, and
// concurrent calls share no state.
//
// Fails with *config.ConfigurationError before any scoring work when
// options are invalid, and with *parsing.ParseError when either input is
// empty or yields nothing parseable.
func Score(resumeText, jobText string, opts config.Options) (*types.MatchResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	resume, err := parsing.ParseResume(resumeText)
	if err != nil {
		return nil, err
	}
	job, err := parsing.ParseJob(jobText)
	if err != nil {
		return nil, err
	}

	ranker := scoring.NewTFIDF(resume)

	// Requirements are independent; fan out, writing to indexed slots so
	// the output order (and every float in it) stays deterministic.
	matches := make([]types.RequirementMatch, len(job.Requirements))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, req := range job.Requirements {
		i, req := i, req
		g.Go(func() error {
			matches[i] = evidence.Extract(req, ranker, opts.TopKEvidence, opts.SimilarityThreshold)
			return nil
		})
	}
	_ = g.Wait() // extraction has no failure mode

	score := scoring.Overall(matches, opts.MustHaveWeight)
	confidence := scoring.Confidence(job.Requirements, ranker)
	action, rationale := policy.Decide(score, confidence, opts)
	counterfactuals := counterfactual.Generate(resume, matches, opts)

	return &types.MatchResult{
		Score:           score,
		Confidence:      confidence,
		Requirements:    matches,
		Counterfactuals: counterfactuals,
		Action:          action,
		Rationale:       rationale,
	}, nil
}
