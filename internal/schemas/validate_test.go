package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScoreRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			"minimal valid request",
			`{"resume_text": "Built services in Go", "job_text": "Go developer"}`,
			false,
		},
		{
			"valid request with options",
			`{"resume_text": "r", "job_text": "j", "options": {"top_k_evidence": 5, "high_score": 0.8}}`,
			false,
		},
		{
			"missing job text",
			`{"resume_text": "r"}`,
			true,
		},
		{
			"empty resume text",
			`{"resume_text": "", "job_text": "j"}`,
			true,
		},
		{
			"resume text wrong type",
			`{"resume_text": 42, "job_text": "j"}`,
			true,
		},
		{
			"unknown top-level field",
			`{"resume_text": "r", "job_text": "j", "resume": "r"}`,
			true,
		},
		{
			"unknown option field",
			`{"resume_text": "r", "job_text": "j", "options": {"topk": 3}}`,
			true,
		},
		{
			"top k out of range",
			`{"resume_text": "r", "job_text": "j", "options": {"top_k_evidence": 0}}`,
			true,
		},
		{
			"malformed json",
			`{"resume_text": "r",`,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScoreRequest([]byte(tt.body))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Errors)
		})
	}
}

func TestValidationErrorMessageNamesFields(t *testing.T) {
	err := ValidateScoreRequest([]byte(`{"resume_text": "r"}`))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "job_text")
}
