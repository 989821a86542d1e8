package server

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"jobmatch/internal/config"
	"jobmatch/internal/pipeline"
	"jobmatch/internal/types"
)

// scoreRequest is the decoded request body shared by the three POST endpoints.
type scoreRequest struct {
	ResumeText string          `json:"resume_text"`
	JobText    string          `json:"job_text"`
	Options    *optionsPayload `json:"options,omitempty"`
}

// optionsPayload uses pointers so an omitted field falls back to the
// server's default rather than a zero value.
type optionsPayload struct {
	TopKEvidence        *int     `json:"top_k_evidence,omitempty"`
	SimilarityThreshold *float64 `json:"similarity_threshold,omitempty"`
	TargetThreshold     *float64 `json:"target_threshold,omitempty"`
	HighScore           *float64 `json:"high_score,omitempty"`
	LowScore            *float64 `json:"low_score,omitempty"`
	MinConfidence       *float64 `json:"min_confidence,omitempty"`
	MustHaveWeight      *float64 `json:"must_have_weight,omitempty"`
}

// merge overlays the payload's set fields onto the server defaults.
func (p *optionsPayload) merge(base config.Options) config.Options {
	if p == nil {
		return base
	}
	if p.TopKEvidence != nil {
		base.TopKEvidence = *p.TopKEvidence
	}
	if p.SimilarityThreshold != nil {
		base.SimilarityThreshold = *p.SimilarityThreshold
	}
	if p.TargetThreshold != nil {
		base.TargetThreshold = *p.TargetThreshold
	}
	if p.HighScore != nil {
		base.HighScore = *p.HighScore
	}
	if p.LowScore != nil {
		base.LowScore = *p.LowScore
	}
	if p.MinConfidence != nil {
		base.MinConfidence = *p.MinConfidence
	}
	if p.MustHaveWeight != nil {
		base.MustHaveWeight = *p.MustHaveWeight
	}
	return base
}

type scoreResponse struct {
	Score        float64                  `json:"score"`
	Confidence   float64                  `json:"confidence"`
	Requirements []types.RequirementMatch `json:"requirements"`
	Action       types.Action             `json:"action"`
}

type counterfactualResponse struct {
	Counterfactuals []types.Counterfactual `json:"counterfactuals"`
}

type actionResponse struct {
	Action     types.Action `json:"action"`
	Rationale  string       `json:"rationale"`
	Score      float64      `json:"score"`
	Confidence float64      `json:"confidence"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runPipeline(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, scoreResponse{
		Score:        result.Score,
		Confidence:   result.Confidence,
		Requirements: result.Requirements,
		Action:       result.Action,
	})
}

func (s *Server) handleCounterfactual(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runPipeline(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, counterfactualResponse{Counterfactuals: result.Counterfactuals})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runPipeline(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, actionResponse{
		Action:     result.Action,
		Rationale:  result.Rationale,
		Score:      result.Score,
		Confidence: result.Confidence,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// runPipeline decodes, validates and scores a request. On failure it writes
// the error response itself and returns ok=false.
func (s *Server) runPipeline(w http.ResponseWriter, r *http.Request) (*types.MatchResult, bool) {
	req, err := s.decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}

	result, err := pipeline.Score(req.ResumeText, req.JobText, req.Options.merge(s.defaults))
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return result, true
}

func (s *Server) decodeRequest(r *http.Request) (*scoreRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, &requestError{status: http.StatusBadRequest, message: "failed to read request body"}
	}

	if err := validateScoreBody(body); err != nil {
		return nil, err
	}

	var req scoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &requestError{status: http.StatusBadRequest, message: "invalid JSON body"}
	}
	return &req, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, httpStatus(err), map[string]string{"error": err.Error()})
}
