package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft/pkg/model"
)

func TestValidationResponseValid(t *testing.T) {
	raw := []byte(`{
		"confidence": 0.85,
		"issues": [
			{
				"issue_type": "dangerous_pattern",
				"severity": "critical",
				"description": "Unlimited indemnification with no cap",
				"location_hint": "second sentence"
			},
			{
				"issue_type": "vague_language",
				"severity": "minor",
				"description": "'reasonable time' is undefined"
			}
		],
		"overall_assessment": "Clause needs a liability cap before acceptance"
	}`)

	var resp ValidationResponse
	require.NoError(t, resp.UnmarshalValidate(raw))
	assert.Equal(t, 0.85, resp.Confidence)
	require.Len(t, resp.Issues, 2)
	assert.Equal(t, model.IssueDangerousPattern, resp.Issues[0].IssueType)
	assert.Equal(t, model.IssueCritical, resp.Issues[0].Severity)
	assert.Equal(t, model.IssueMinor, resp.Issues[1].Severity)
	assert.Empty(t, resp.Issues[1].LocationHint, "location_hint is optional")
}

func TestValidationResponseNoIssues(t *testing.T) {
	var resp ValidationResponse
	require.NoError(t, resp.UnmarshalValidate([]byte(`{"confidence": 0.95, "issues": []}`)))
	assert.Empty(t, resp.Issues)
}

func TestValidationResponseMissingConfidence(t *testing.T) {
	var resp ValidationResponse
	assert.Error(t, resp.UnmarshalValidate([]byte(`{"issues": []}`)))
}

func TestValidationResponseConfidenceOutOfRange(t *testing.T) {
	var resp ValidationResponse
	assert.Error(t, resp.UnmarshalValidate([]byte(`{"confidence": 1.2, "issues": []}`)))
	assert.Error(t, resp.UnmarshalValidate([]byte(`{"confidence": -0.1, "issues": []}`)))
}

func TestValidationResponseUnknownIssueType(t *testing.T) {
	raw := []byte(`{"confidence": 0.9, "issues": [{"issue_type": "made_up", "severity": "minor", "description": "d"}]}`)
	var resp ValidationResponse
	assert.Error(t, resp.UnmarshalValidate(raw), "issue_type is a closed taxonomy")
}

func TestValidationResponseUnknownSeverity(t *testing.T) {
	raw := []byte(`{"confidence": 0.9, "issues": [{"issue_type": "completeness", "severity": "catastrophic", "description": "d"}]}`)
	var resp ValidationResponse
	assert.Error(t, resp.UnmarshalValidate(raw))
}

func TestValidationResponseMissingDescription(t *testing.T) {
	raw := []byte(`{"confidence": 0.9, "issues": [{"issue_type": "completeness", "severity": "minor"}]}`)
	var resp ValidationResponse
	assert.Error(t, resp.UnmarshalValidate(raw))
}
