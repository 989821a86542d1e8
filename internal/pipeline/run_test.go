package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/config"
	"jobmatch/internal/parsing"
	"jobmatch/internal/policy"
	"jobmatch/internal/types"
)

const sampleResume = `Jane Doe

Summary
Backend engineer focused on ML serving infrastructure.

Experience
- Built a FastAPI inference service handling 2k requests per second.
- Containerized services with Docker and deployed them to AWS ECS.
- Implemented RAG retrieval over Qdrant with sentence embeddings.
- Mentored two junior engineers.
`

const sampleJob = `Requirements:
- Python and PyTorch experience
- FastAPI in production
- Docker and AWS

Nice to have:
- Qdrant or FAISS
`

func TestScoreEndToEnd(t *testing.T) {
	opts := config.DefaultOptions()
	result, err := Score(sampleResume, sampleJob, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.Score, 0.0)
	assert.LessOrEqual(t, result.Score, 1.0)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	require.Len(t, result.Requirements, 4)

	byText := make(map[string]types.RequirementMatch)
	for _, m := range result.Requirements {
		byText[m.Requirement.Text] = m
	}

	// The resume never mentions Python or PyTorch, so that requirement has
	// zero overlap: similarity exactly 0.0, no evidence cited.
	pytorch := byText["Python and PyTorch experience"]
	assert.True(t, pytorch.Unmatched)
	assert.Equal(t, 0.0, pytorch.Similarity)
	assert.Empty(t, pytorch.Evidence)

	fastapi := byText["FastAPI in production"]
	assert.False(t, fastapi.Unmatched)
	require.NotEmpty(t, fastapi.Evidence)
	assert.Contains(t, fastapi.Evidence[0].SentenceText, "FastAPI")

	docker := byText["Docker and AWS"]
	assert.Greater(t, docker.Similarity, 0.0)

	// Unmatched must-have yields an explicit gap counterfactual.
	var gap *types.Counterfactual
	for i, c := range result.Counterfactuals {
		if c.Requirement == "Python and PyTorch experience" {
			gap = &result.Counterfactuals[i]
		}
	}
	require.NotNil(t, gap)
	assert.True(t, gap.Gap)
	assert.Equal(t, types.CounterfactualGap, gap.Type)
	assert.Greater(t, gap.OverallDelta, 0.0)

	// The recommended action is exactly what the policy derives from the
	// reported score and confidence.
	action, _ := policy.Decide(result.Score, result.Confidence, opts)
	assert.Equal(t, action, result.Action)
	assert.NotEmpty(t, result.Rationale)
}

func TestScoreEvidenceOrderingAndLimits(t *testing.T) {
	opts := config.DefaultOptions()
	opts.TopKEvidence = 2

	result, err := Score(sampleResume, sampleJob, opts)
	require.NoError(t, err)

	for _, m := range result.Requirements {
		assert.LessOrEqual(t, len(m.Evidence), 2)
		for i, link := range m.Evidence {
			assert.Greater(t, link.Similarity, opts.SimilarityThreshold)
			if i > 0 {
				assert.GreaterOrEqual(t, m.Evidence[i-1].Similarity, link.Similarity)
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	opts := config.DefaultOptions()
	first, err := Score(sampleResume, sampleJob, opts)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Score(sampleResume, sampleJob, opts)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestScoreInputErrors(t *testing.T) {
	opts := config.DefaultOptions()

	var parseErr *parsing.ParseError
	_, err := Score("", sampleJob, opts)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "resume", parseErr.Input)

	_, err = Score(sampleResume, "   \n  ", opts)
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "job description", parseErr.Input)
}

func TestScoreRejectsInvalidOptions(t *testing.T) {
	opts := config.DefaultOptions()
	opts.TopKEvidence = 0

	_, err := Score(sampleResume, sampleJob, opts)
	var cfgErr *config.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TopKEvidence", cfgErr.Field)
}
