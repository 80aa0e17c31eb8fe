package risk

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft/pkg/llm"
	"github.com/clausecraft/clausecraft/pkg/model"
)

type fakeClient struct {
	calls   int
	prompts []string
	respond func(call int) (string, error)
}

func (f *fakeClient) Chat(ctx context.Context, prompt string, opts llm.ChatOptions) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.respond(f.calls - 1)
}

func (f *fakeClient) Model() string { return "fake-model" }

const validRiskResponse = `{
  "financial": {
    "score": 80,
    "key_findings": ["7% annual escalation"],
    "problematic_clauses": [
      {"clause_text": "Section 3.1 Rent Escalation", "severity": 85, "confidence": 0.9,
       "risk_explanation": "Escalation far above market", "recommended_action": "Cap at 3%"}
    ]
  },
  "legal_compliance": {
    "score": 60,
    "key_findings": ["Uncapped indemnification"],
    "problematic_clauses": [
      {"clause_text": "Section 9.2 Indemnification", "severity": 72, "confidence": 0.85,
       "risk_explanation": "No liability cap", "recommended_action": "Add 12-month cap"}
    ]
  },
  "operational": {
    "score": 40,
    "key_findings": ["Sublease requires consent"],
    "problematic_clauses": [
      {"clause_text": "Section 12 Assignment", "severity": 45, "confidence": 0.8,
       "risk_explanation": "Consent may be withheld", "recommended_action": "Add reasonableness standard"}
    ]
  },
  "timeline": {
    "score": 20,
    "key_findings": ["Standard notice periods"],
    "problematic_clauses": []
  },
  "strategic_reputational": {
    "score": 0,
    "key_findings": ["Broad non-disparagement clause"],
    "problematic_clauses": []
  },
  "top_risks": ["Rent escalation", "Indemnification"],
  "immediate_actions": ["Negotiate escalation cap"],
  "negotiation_priorities": ["Section 3.1", "Section 9.2"],
  "total_clauses_analyzed": 42
}`

func TestScoreWeightedAggregation(t *testing.T) {
	client := &fakeClient{respond: func(call int) (string, error) {
		return validRiskResponse, nil
	}}

	result, err := New(client).Score(context.Background(), "lease text", "")
	require.NoError(t, err)

	assert.Equal(t, model.AssessmentComplete, result.Status)

	// 80*0.35 + 60*0.30 + 40*0.20 + 20*0.15; strategic contributes nothing.
	want := 80*0.35 + 60*0.30 + 40*0.20 + 20*0.15
	assert.InDelta(t, want, result.OverallScore, 1e-6)
	assert.Equal(t, model.SeverityMedium, result.OverallSeverity)

	assert.Equal(t, model.SeverityHigh, result.Financial.Severity)
	assert.Equal(t, model.SeverityMedium, result.LegalCompliance.Severity)
	assert.Equal(t, model.SeverityMedium, result.Operational.Severity)
	assert.Equal(t, model.SeverityLow, result.Timeline.Severity)

	require.NotNil(t, result.Financial.Weight)
	assert.Equal(t, 0.35, *result.Financial.Weight)
	assert.Nil(t, result.StrategicReputational.Weight, "qualitative dimension carries no weight")

	assert.Equal(t, 42, result.TotalClausesAnalyzed)
	assert.Equal(t, 2, result.HighRiskClausesCount, "severity 85 and 72 cross the high-risk threshold, 45 does not")

	require.Len(t, result.Financial.ProblematicClauses, 1)
	clause := result.Financial.ProblematicClauses[0]
	assert.Equal(t, model.DimensionFinancial, clause.Category)
	assert.Equal(t, model.SeverityHigh, clause.SeverityLevel)
	assert.Equal(t, 1, client.calls)
}

func TestScoreWeightsSumToOne(t *testing.T) {
	sum := model.WeightFinancial + model.WeightLegalCompliance + model.WeightOperational + model.WeightTimeline
	assert.True(t, math.Abs(sum-1.0) < 1e-9)
}

func TestScoreRetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{respond: func(call int) (string, error) {
		if call == 0 {
			return "sorry, I cannot help with that", nil
		}
		return validRiskResponse, nil
	}}

	result, err := New(client).Score(context.Background(), "lease text", "")
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentComplete, result.Status)
	assert.Equal(t, 2, client.calls)
}

func TestScoreDegradesToIncompleteAssessment(t *testing.T) {
	client := &fakeClient{respond: func(call int) (string, error) {
		return "garbage", nil
	}}

	result, err := New(client).Score(context.Background(), "lease text", "")

	// Double failure degrades, it does not error: one broken document must
	// not abort a multi-document pipeline.
	require.NoError(t, err)
	assert.Equal(t, model.AssessmentIncomplete, result.Status)
	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, model.SeverityLow, result.OverallSeverity)
	for name, dim := range result.Dimensions() {
		assert.Equal(t, []string{"Analysis incomplete"}, dim.KeyFindings, "dimension %s", name)
		assert.Empty(t, dim.ProblematicClauses)
	}
	assert.Equal(t, 2, client.calls, "exactly two attempts before degrading")
}

func TestScoreEmptyDocument(t *testing.T) {
	client := &fakeClient{respond: func(call int) (string, error) {
		t.Fatal("no LLM call expected for invalid input")
		return "", nil
	}}

	_, err := New(client).Score(context.Background(), "   ", "")

	var invalid *model.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "document_text", invalid.Field)
	assert.Equal(t, 0, client.calls)
}

func TestScorePromptCarriesContext(t *testing.T) {
	client := &fakeClient{respond: func(call int) (string, error) {
		return validRiskResponse, nil
	}}

	_, err := New(client).Score(context.Background(), "UNIQUE LEASE MARKER", "UNIQUE HISTORY MARKER")
	require.NoError(t, err)
	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "UNIQUE LEASE MARKER")
	assert.Contains(t, client.prompts[0], "UNIQUE HISTORY MARKER")
}
