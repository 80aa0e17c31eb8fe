package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiationResponseValid(t *testing.T) {
	raw := []byte(`{
		"counter_clause": "Tenant's indemnification obligation is capped at 12 months of rent.",
		"justification": "Caps exposure while preserving the landlord's core protection.",
		"risk_reduction": 75.0
	}`)

	var resp NegotiationResponse
	require.NoError(t, resp.UnmarshalValidate(raw))
	assert.Equal(t, 75.0, resp.RiskReduction)
	assert.Contains(t, resp.CounterClause, "capped at 12 months")
}

func TestNegotiationResponseMissingCounterClause(t *testing.T) {
	var resp NegotiationResponse
	err := resp.UnmarshalValidate([]byte(`{"justification": "j", "risk_reduction": 50}`))
	assert.Error(t, err)
}

func TestNegotiationResponseEmptyCounterClause(t *testing.T) {
	var resp NegotiationResponse
	err := resp.UnmarshalValidate([]byte(`{"counter_clause": "", "justification": "j", "risk_reduction": 50}`))
	assert.Error(t, err, "counter_clause must be non-empty")
}

func TestNegotiationResponseCategoricalRiskReduction(t *testing.T) {
	// "High" instead of a number is the known failure mode; it must be
	// rejected so the retry fires, never coerced.
	var resp NegotiationResponse
	err := resp.UnmarshalValidate([]byte(`{"counter_clause": "c", "justification": "j", "risk_reduction": "High"}`))
	assert.Error(t, err)
}

func TestNegotiationResponseRiskReductionOutOfRange(t *testing.T) {
	var resp NegotiationResponse
	assert.Error(t, resp.UnmarshalValidate([]byte(`{"counter_clause": "c", "justification": "j", "risk_reduction": 120}`)))
	assert.Error(t, resp.UnmarshalValidate([]byte(`{"counter_clause": "c", "justification": "j", "risk_reduction": -5}`)))
}

func TestNegotiationResponseClipsLongFields(t *testing.T) {
	longClause := strings.Repeat("a", 3000)
	longJustification := strings.Repeat("b", 500)
	raw := []byte(`{"counter_clause": "` + longClause + `", "justification": "` + longJustification + `", "risk_reduction": 60}`)

	var resp NegotiationResponse
	require.NoError(t, resp.UnmarshalValidate(raw))
	assert.Len(t, resp.CounterClause, maxCounterClauseLen)
	assert.Len(t, resp.Justification, maxJustificationLen)
}
