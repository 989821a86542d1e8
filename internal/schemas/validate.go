// Package schemas provides JSON Schema validation for API request payloads.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apischemas "jobmatch/schemas"
)

// ValidationError collects every schema violation in a request body.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("request validation failed:")
	for _, e := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", e.Field, e.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateScoreRequest validates a raw request body against the embedded
// score request schema. Malformed JSON and schema violations both return
// *ValidationError; the schema itself is embedded and cannot fail to load
// at runtime.
func ValidateScoreRequest(body []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(apischemas.ScoreRequest),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(body)", Message: err.Error()}}}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return &ValidationError{Errors: fieldErrors}
}
