// Package config provides the scoring options surface and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults for all tunable thresholds. These are configuration, not
// behavior: callers may override any of them per request.
const (
	// DefaultTopKEvidence is the number of evidence sentences cited per requirement.
	DefaultTopKEvidence = 3
	// DefaultSimilarityThreshold is the minimum similarity for a sentence to count as evidence.
	// Strictly greater-than: zero-similarity sentences are never cited.
	DefaultSimilarityThreshold = 0.0
	// DefaultTargetThreshold is the per-requirement similarity below which
	// a counterfactual edit is proposed.
	DefaultTargetThreshold = 0.5
	// DefaultHighScore is the overall score at or above which an interview is recommended.
	DefaultHighScore = 0.75
	// DefaultLowScore is the overall score below which a learning path is suggested.
	DefaultLowScore = 0.45
	// DefaultMinConfidence gates the interview recommendation.
	DefaultMinConfidence = 0.60
	// DefaultMustHaveWeight is the weight of must-have requirements relative
	// to nice-to-haves (which always weigh 1.0).
	DefaultMustHaveWeight = 2.0
)

// Options configures one scoring request. The zero value is not usable;
// start from DefaultOptions and override fields as needed.
type Options struct {
	TopKEvidence        int     `json:"top_k_evidence"        mapstructure:"top-k-evidence"        validate:"gte=1,lte=25"`
	SimilarityThreshold float64 `json:"similarity_threshold"  mapstructure:"similarity-threshold"  validate:"gte=0,lt=1"`
	TargetThreshold     float64 `json:"target_threshold"      mapstructure:"target-threshold"      validate:"gte=0,lte=1"`
	HighScore           float64 `json:"high_score"            mapstructure:"high-score"            validate:"gte=0,lte=1,gtefield=LowScore"`
	LowScore            float64 `json:"low_score"             mapstructure:"low-score"             validate:"gte=0,lte=1"`
	MinConfidence       float64 `json:"min_confidence"        mapstructure:"min-confidence"        validate:"gte=0,lte=1"`
	MustHaveWeight      float64 `json:"must_have_weight"      mapstructure:"must-have-weight"      validate:"gte=1"`
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		TopKEvidence:        DefaultTopKEvidence,
		SimilarityThreshold: DefaultSimilarityThreshold,
		TargetThreshold:     DefaultTargetThreshold,
		HighScore:           DefaultHighScore,
		LowScore:            DefaultLowScore,
		MinConfidence:       DefaultMinConfidence,
		MustHaveWeight:      DefaultMustHaveWeight,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks option ranges and cross-field constraints.
// It fails fast: scoring never runs with invalid thresholds.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return &ConfigurationError{
				Field:   first.Field(),
				Message: fmt.Sprintf("failed %q constraint (value %v)", first.Tag(), first.Value()),
			}
		}
		return &ConfigurationError{Message: err.Error()}
	}
	return nil
}

// ConfigurationError reports an invalid option value. Surfaced to the
// caller before any scoring work begins.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}
