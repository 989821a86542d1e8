// Package types provides type definitions for structured data used throughout the job-match pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RequirementCategory distinguishes hard requirements from nice-to-haves.
type RequirementCategory string

const (
	CategoryMustHave   RequirementCategory = "must_have"
	CategoryNiceToHave RequirementCategory = "nice_to_have"
)

// Requirement represents a single need extracted from a job description.
// Immutable once parsed.
type Requirement struct {
	Text     string              `json:"text"`
	Terms    []string            `json:"terms"`
	Category RequirementCategory `json:"category"`
	Skill    string              `json:"skill,omitempty"`
}

// Weight returns the scoring weight for the requirement's category.
// mustHaveWeight applies to must-haves; nice-to-haves weigh 1.0.
func (r Requirement) Weight(mustHaveWeight float64) float64 {
	if r.Category == CategoryMustHave {
		return mustHaveWeight
	}
	return 1.0
}

// Section identifies which part of a resume a sentence came from.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionEducation  Section = "education"
	SectionOther      Section = "other"
)

// ResumeSentence represents one sentence from the resume.
// Immutable once parsed.
type ResumeSentence struct {
	Text     string   `json:"text"`
	Position int      `json:"position"`
	Section  Section  `json:"section"`
	Terms    []string `json:"terms"`
}

// ParsedResume holds the structured output of resume parsing.
type ParsedResume struct {
	Sentences []ResumeSentence `json:"sentences"`
}

// ParsedJob holds the structured output of job-description parsing.
type ParsedJob struct {
	Requirements []Requirement `json:"requirements"`
}

// EvidenceLink relates a requirement to one resume sentence with the
// similarity of that pairing.
type EvidenceLink struct {
	SentenceText string  `json:"sentence_text"`
	Position     int     `json:"position"`
	Section      Section `json:"section"`
	Similarity   float64 `json:"similarity"`
}

// RequirementMatch is the per-requirement scoring outcome.
// A requirement with no evidence above the similarity threshold is
// unmatched and carries an empty evidence list.
type RequirementMatch struct {
	Requirement Requirement    `json:"requirement"`
	Similarity  float64        `json:"similarity"`
	Evidence    []EvidenceLink `json:"evidence"`
	Unmatched   bool           `json:"unmatched"`
}

// CounterfactualType distinguishes the two permitted edit proposals.
type CounterfactualType string

const (
	// CounterfactualRephrase rephrases an existing resume sentence to
	// surface terms already present in the resume.
	CounterfactualRephrase CounterfactualType = "rephrase"
	// CounterfactualGap acknowledges a requirement with no supporting
	// resume content at all. Never presented as possessed experience.
	CounterfactualGap CounterfactualType = "gap"
)

// Counterfactual is a proposed minimal resume edit. Generated, never mutated.
type Counterfactual struct {
	Requirement   string             `json:"requirement"`
	Type          CounterfactualType `json:"type"`
	Before        string             `json:"before,omitempty"`
	After         string             `json:"after"`
	Section       Section            `json:"section,omitempty"`
	ScoreDelta    float64            `json:"score_delta"`
	OverallDelta  float64            `json:"overall_delta"`
	Rationale     string             `json:"rationale"`
	Gap           bool               `json:"gap"`
	SurfacedTerms []string           `json:"surfaced_terms,omitempty"`
}

// Action is the recommended next step derived from score and confidence.
type Action string

const (
	ActionInterview    Action = "interview"
	ActionRequestInfo  Action = "request-more-information"
	ActionLearningPath Action = "suggest-learning-path"
)

// MatchResult is the aggregate output of one scoring request.
// It is returned and discarded; nothing is persisted.
type MatchResult struct {
	Score           float64            `json:"score"`
	Confidence      float64            `json:"confidence"`
	Requirements    []RequirementMatch `json:"requirements"`
	Counterfactuals []Counterfactual   `json:"counterfactuals"`
	Action          Action             `json:"action"`
	Rationale       string             `json:"rationale"`
}
