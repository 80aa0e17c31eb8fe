package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clausecraft/clausecraft/pkg/model"
)

func TestRiskScoringPromptDeterministic(t *testing.T) {
	a := BuildRiskScoringPrompt("lease text", "history")
	b := BuildRiskScoringPrompt("lease text", "history")
	assert.Equal(t, a, b, "identical inputs must produce identical prompts")
}

func TestRiskScoringPromptContents(t *testing.T) {
	prompt := BuildRiskScoringPrompt("THE LEASE BODY", "")

	assert.Contains(t, prompt, "THE LEASE BODY")
	assert.Contains(t, prompt, "FINANCIAL RISK (Weight: 35%)")
	assert.Contains(t, prompt, "LEGAL/COMPLIANCE RISK (Weight: 30%)")
	assert.Contains(t, prompt, "OPERATIONAL RISK (Weight: 20%)")
	assert.Contains(t, prompt, "TIMELINE RISK (Weight: 15%)")
	assert.Contains(t, prompt, "STRATEGIC/REPUTATIONAL RISK (Qualitative only")
	assert.NotContains(t, prompt, "HISTORICAL CONTEXT")
}

func TestRiskScoringPromptHistoricalContext(t *testing.T) {
	prompt := BuildRiskScoringPrompt("doc", "prior review of similar indemnity clauses")
	assert.Contains(t, prompt, "HISTORICAL CONTEXT")
	assert.Contains(t, prompt, "prior review of similar indemnity clauses")
}

func TestNegotiationPromptRoundZero(t *testing.T) {
	prompt := BuildNegotiationPrompt(0, model.StanceDefensive, "clause body", "indemnification", 85, "uncapped", nil)

	assert.Contains(t, prompt, "NEGOTIATION STANCE: Defensive")
	assert.Contains(t, prompt, "Target Risk Reduction: 80-100%")
	assert.Contains(t, prompt, "ROUND 0 (IDEAL)")
	assert.Contains(t, prompt, "FIRST and BEST attempt")
	assert.Contains(t, prompt, `Clause Text: "clause body"`)
	assert.NotContains(t, prompt, "rejected")
}

func TestNegotiationPromptRoundOneEmbedsRejection(t *testing.T) {
	rejection := "The counterparty cannot accept this change due to internal policy."
	prior := []model.NegotiationRound{{
		RoundNumber:   0,
		CounterClause: "cap at 12 months rent",
		RiskReduction: 85,
		RejectionText: &rejection,
	}}

	prompt := BuildNegotiationPrompt(1, model.StanceBalanced, "clause", "indemnification", 55, "risky", prior)

	assert.Contains(t, prompt, "ROUND 1 (ALTERNATIVE)")
	assert.Contains(t, prompt, "Target Risk Reduction: 40-60%")
	assert.Contains(t, prompt, rejection)
	assert.Contains(t, prompt, "cap at 12 months rent")
	assert.Contains(t, prompt, "ALTERNATIVE approach")
}

func TestNegotiationPromptRoundTwoEmbedsBothRounds(t *testing.T) {
	r0 := "rejection zero"
	r1 := "rejection one"
	prior := []model.NegotiationRound{
		{RoundNumber: 0, CounterClause: "proposal zero", RiskReduction: 90, RejectionText: &r0},
		{RoundNumber: 1, CounterClause: "proposal one", RiskReduction: 70, RejectionText: &r1},
	}

	prompt := BuildNegotiationPrompt(2, model.StanceSoft, "clause", "label", 30, "why", prior)

	assert.Contains(t, prompt, "ROUND 2 (FALLBACK)")
	assert.Contains(t, prompt, "Target Risk Reduction: 20-30%")
	assert.Contains(t, prompt, "proposal zero")
	assert.Contains(t, prompt, "proposal one")
	assert.Contains(t, prompt, "rejection zero")
	assert.Contains(t, prompt, "rejection one")
	assert.Contains(t, prompt, "FINAL attempt")
}

func TestNegotiationPromptStanceTargets(t *testing.T) {
	tests := []struct {
		stance model.Stance
		round  int
		want   string
	}{
		{model.StanceDefensive, 0, "80-100%"},
		{model.StanceDefensive, 2, "40-60%"},
		{model.StanceBalanced, 0, "60-80%"},
		{model.StanceBalanced, 2, "30-50%"},
		{model.StanceSoft, 0, "40-60%"},
		{model.StanceSoft, 1, "30-40%"},
	}
	rejection := "r"
	prior := []model.NegotiationRound{
		{RoundNumber: 0, RejectionText: &rejection},
		{RoundNumber: 1, RejectionText: &rejection},
	}
	for _, tt := range tests {
		prompt := BuildNegotiationPrompt(tt.round, tt.stance, "c", "l", 50, "e", prior[:tt.round])
		assert.Contains(t, prompt, "Target Risk Reduction: "+tt.want, "%s round %d", tt.stance, tt.round)
	}
}

func TestValidationPromptContents(t *testing.T) {
	prompt := BuildValidationPrompt("the clause", "financial", 62, "hidden fees", "")

	assert.Contains(t, prompt, "the clause")
	assert.Contains(t, prompt, "CLAUSE CATEGORY: financial")
	assert.Contains(t, prompt, "RISK SCORE: 62")
	assert.Contains(t, prompt, "Completeness Check")
	assert.Contains(t, prompt, "Dangerous Patterns")
	assert.Contains(t, prompt, "Contradictions")
	assert.Contains(t, prompt, "Vague Language")
	assert.Contains(t, prompt, "Policy Alignment")
	assert.NotContains(t, prompt, "FULL DOCUMENT CONTEXT")
}

func TestValidationPromptDocumentContext(t *testing.T) {
	prompt := BuildValidationPrompt("c", "legal_compliance", 40, "e", "whole lease here")
	assert.Contains(t, prompt, "FULL DOCUMENT CONTEXT")
	assert.Contains(t, prompt, "whole lease here")
}

func TestValidationPromptTruncatesDocumentContext(t *testing.T) {
	huge := strings.Repeat("x", maxDocumentContextLen+500)
	prompt := BuildValidationPrompt("c", "cat", 10, "e", huge)

	require.Contains(t, prompt, strings.Repeat("x", maxDocumentContextLen))
	assert.NotContains(t, prompt, strings.Repeat("x", maxDocumentContextLen+1))
}
