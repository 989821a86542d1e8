package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch/internal/parsing"
	"jobmatch/internal/types"
)

func mustParseResume(t *testing.T, text string) *types.ParsedResume {
	t.Helper()
	resume, err := parsing.ParseResume(text)
	require.NoError(t, err)
	return resume
}

func requirement(text string, category types.RequirementCategory) types.Requirement {
	return types.Requirement{
		Text:     text,
		Terms:    parsing.Tokenize(text),
		Category: category,
	}
}

const rankerResume = `Built a FastAPI microservice and deployed it with Docker on AWS ECS
Implemented RAG search over Qdrant
Mentored two junior engineers
`

func TestRankZeroOverlapIsExactlyZero(t *testing.T) {
	ranker := NewTFIDF(mustParseResume(t, rankerResume))
	ranked := ranker.Rank(requirement("PyTorch", types.CategoryMustHave))

	require.Len(t, ranked, 3)
	for _, rs := range ranked {
		assert.Equal(t, 0.0, rs.Similarity)
		assert.False(t, rs.Similarity != rs.Similarity, "similarity must never be NaN")
	}
}

func TestRankBestSentenceFirst(t *testing.T) {
	ranker := NewTFIDF(mustParseResume(t, rankerResume))
	ranked := ranker.Rank(requirement("Qdrant", types.CategoryMustHave))

	assert.Equal(t, "Implemented RAG search over Qdrant", ranked[0].Sentence.Text)
	assert.Greater(t, ranked[0].Similarity, 0.0)
	assert.Equal(t, 0.0, ranked[1].Similarity)
}

func TestRankTiesBreakByEarliestPosition(t *testing.T) {
	// Two identical sentences tie exactly; the earlier one must rank first.
	resume := mustParseResume(t, "Shipped Docker images\nShipped Docker images\n")
	ranker := NewTFIDF(resume)
	ranked := ranker.Rank(requirement("Docker", types.CategoryMustHave))

	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Similarity, ranked[1].Similarity)
	assert.Equal(t, 0, ranked[0].Sentence.Position)
	assert.Equal(t, 1, ranked[1].Sentence.Position)
}

func TestRankIsDeterministic(t *testing.T) {
	resume := mustParseResume(t, rankerResume)
	req := requirement("AWS (Docker, ECS/EKS)", types.CategoryMustHave)

	first := NewTFIDF(resume).Rank(req)
	for i := 0; i < 10; i++ {
		again := NewTFIDF(resume).Rank(req)
		require.Equal(t, first, again, "repeated runs must be bit-identical")
	}
}

func TestRankSimilarityBounds(t *testing.T) {
	ranker := NewTFIDF(mustParseResume(t, rankerResume))
	for _, text := range []string{"FastAPI", "Docker AWS ECS", "Qdrant RAG search", "underwater basket weaving"} {
		for _, rs := range ranker.Rank(requirement(text, types.CategoryNiceToHave)) {
			assert.GreaterOrEqual(t, rs.Similarity, 0.0)
			assert.LessOrEqual(t, rs.Similarity, 1.0)
		}
	}
}

func TestRankMonotonicity(t *testing.T) {
	// Swapping a term absent from the resume for one present in it must
	// never decrease the requirement's best similarity.
	ranker := NewTFIDF(mustParseResume(t, rankerResume))

	weaker := ranker.Rank(requirement("Docker and Fortran", types.CategoryMustHave))[0].Similarity
	stronger := ranker.Rank(requirement("Docker and ECS", types.CategoryMustHave))[0].Similarity

	assert.GreaterOrEqual(t, stronger, weaker)
}

func TestCoverage(t *testing.T) {
	ranker := NewTFIDF(mustParseResume(t, rankerResume))

	tests := []struct {
		name     string
		req      string
		expected float64
	}{
		{"all terms present", "Docker ECS", 1.0},
		{"half present", "Docker Fortran", 0.5},
		{"none present", "Fortran COBOL", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ranker.Coverage(requirement(tt.req, types.CategoryMustHave)), 1e-12)
		})
	}
}

func TestCorpusSize(t *testing.T) {
	assert.Equal(t, 3, NewTFIDF(mustParseResume(t, rankerResume)).CorpusSize())
}
