// Package scoring computes term-weighted similarity between job requirements
// and resume sentences.
package scoring

import (
	"math"
	"sort"

	"jobmatch/internal/types"
)

// RankedSentence pairs a resume sentence with its similarity to one requirement.
type RankedSentence struct {
	Sentence   types.ResumeSentence
	Similarity float64
}

// SentenceRanker ranks resume sentences by relevance to a requirement.
// Consumers (evidence extraction, counterfactual generation) depend only on
// this contract, so a dense-vector implementation can replace the TF-IDF one
// without touching them.
type SentenceRanker interface {
	// Rank returns all sentences ordered by similarity descending.
	// Ties break by earliest sentence position.
	Rank(req types.Requirement) []RankedSentence
	// Coverage returns the fraction of the requirement's terms present
	// anywhere in the resume.
	Coverage(req types.Requirement) float64
	// CorpusSize returns the number of resume sentences.
	CorpusSize() int
}

// TFIDF is a deterministic lexical SentenceRanker. Document frequency is
// computed over the resume's sentences as the corpus.
type TFIDF struct {
	sentences []types.ResumeSentence
	idf       map[string]float64
	norms     []float64
	termSets  []map[string]bool
	vocab     map[string]bool
}

// NewTFIDF builds the ranker for one parsed resume. The ranker is read-only
// after construction and safe for concurrent use.
func NewTFIDF(resume *types.ParsedResume) *TFIDF {
	n := len(resume.Sentences)
	s := &TFIDF{
		sentences: resume.Sentences,
		idf:       make(map[string]float64),
		norms:     make([]float64, n),
		termSets:  make([]map[string]bool, n),
		vocab:     make(map[string]bool),
	}

	df := make(map[string]int)
	for i, sent := range resume.Sentences {
		set := make(map[string]bool, len(sent.Terms))
		for _, term := range sent.Terms {
			set[term] = true
			df[term]++
			s.vocab[term] = true
		}
		s.termSets[i] = set
	}

	// Smoothed idf; terms absent from the corpus resolve via idfFor.
	for term, count := range df {
		s.idf[term] = math.Log(float64(n+1)/float64(count+1)) + 1
	}

	// Sentence norms accumulate over the sorted term slice so repeated
	// construction is bit-identical.
	for i, sent := range resume.Sentences {
		var sum float64
		for _, term := range sent.Terms {
			w := s.idf[term]
			sum += w * w
		}
		s.norms[i] = math.Sqrt(sum)
	}

	return s
}

// idfFor returns the idf weight for a term, including terms never seen in
// the resume (document frequency zero).
func (s *TFIDF) idfFor(term string) float64 {
	if w, ok := s.idf[term]; ok {
		return w
	}
	return math.Log(float64(len(s.sentences)+1)) + 1
}

// Rank implements SentenceRanker. A requirement sharing no terms with a
// sentence scores exactly 0.0 against it, never NaN.
func (s *TFIDF) Rank(req types.Requirement) []RankedSentence {
	var reqNorm float64
	for _, term := range req.Terms {
		w := s.idfFor(term)
		reqNorm += w * w
	}
	reqNorm = math.Sqrt(reqNorm)

	ranked := make([]RankedSentence, 0, len(s.sentences))
	for i, sent := range s.sentences {
		ranked = append(ranked, RankedSentence{
			Sentence:   sent,
			Similarity: s.cosine(req.Terms, reqNorm, i),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Similarity != ranked[j].Similarity {
			return ranked[i].Similarity > ranked[j].Similarity
		}
		return ranked[i].Sentence.Position < ranked[j].Sentence.Position
	})

	return ranked
}

// cosine computes similarity between a requirement term set and sentence i.
// Requirement terms are already sorted, which fixes the float accumulation order.
func (s *TFIDF) cosine(reqTerms []string, reqNorm float64, i int) float64 {
	if reqNorm == 0 || s.norms[i] == 0 {
		return 0.0
	}
	var dot float64
	for _, term := range reqTerms {
		if s.termSets[i][term] {
			w := s.idf[term]
			dot += w * w
		}
	}
	if dot == 0 {
		return 0.0
	}
	return dot / (reqNorm * s.norms[i])
}

// Coverage implements SentenceRanker.
func (s *TFIDF) Coverage(req types.Requirement) float64 {
	if len(req.Terms) == 0 {
		return 0.0
	}
	found := 0
	for _, term := range req.Terms {
		if s.vocab[term] {
			found++
		}
	}
	return float64(found) / float64(len(req.Terms))
}

// CorpusSize implements SentenceRanker.
func (s *TFIDF) CorpusSize() int {
	return len(s.sentences)
}
