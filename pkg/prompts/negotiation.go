package prompts

import (
	"fmt"
	"strings"

	"github.com/clausecraft/clausecraft/pkg/model"
)

// RoundTypes names the three fixed negotiation rounds.
var RoundTypes = map[int]string{
	0: "ideal",
	1: "alternative",
	2: "fallback",
}

type stanceInstruction struct {
	description string
	targets     map[int]string
}

// Target risk-reduction ranges steer (not force) each round's proposal,
// keyed by stance x round.
var stanceInstructions = map[model.Stance]stanceInstruction{
	model.StanceDefensive: {
		description: "Prioritize tenant safety and fairness. Push for significant changes.",
		targets:     map[int]string{0: "80-100%", 1: "60-80%", 2: "40-60%"},
	},
	model.StanceBalanced: {
		description: "Seek fair compromises. Propose reasonable modifications.",
		targets:     map[int]string{0: "60-80%", 1: "40-60%", 2: "30-50%"},
	},
	model.StanceSoft: {
		description: "Maintain good relations. Propose minor modifications.",
		targets:     map[int]string{0: "40-60%", 1: "30-40%", 2: "20-30%"},
	},
}

// BuildNegotiationPrompt constructs the prompt for one negotiation round.
// Rounds after the first serialize every prior round verbatim so the model
// reacts to its own earlier proposals and the static rejections.
func BuildNegotiationPrompt(
	roundNumber int,
	stance model.Stance,
	clauseText, clauseLabel string,
	riskScore float64,
	riskExplanation string,
	previousRounds []model.NegotiationRound,
) string {
	stanceInfo := stanceInstructions[stance]
	roundType := RoundTypes[roundNumber]
	targetRange := stanceInfo.targets[roundNumber]

	var roundContext string
	switch roundNumber {
	case 0:
		roundContext = "This is your FIRST and BEST attempt. Propose your ideal solution."
	case 1:
		prev := previousRounds[0]
		roundContext = fmt.Sprintf(`Your ideal was rejected with this feedback: "%s"

Previous proposal (Round 0):
- Counter clause: %s
- Risk reduction: %g%%

Now propose an ALTERNATIVE approach that's less aggressive but still meaningful.`,
			rejection(prev), prev.CounterClause, prev.RiskReduction)
	default:
		var b strings.Builder
		b.WriteString("Both proposals were rejected.\n")
		for _, prev := range previousRounds {
			fmt.Fprintf(&b, `
Round %d (%s):
- Counter clause: %s
- Risk reduction: %g%%
- Rejection: "%s"
`, prev.RoundNumber, strings.ToUpper(RoundTypes[prev.RoundNumber][:1])+RoundTypes[prev.RoundNumber][1:], prev.CounterClause, prev.RiskReduction, rejection(prev))
		}
		b.WriteString("\nThis is your FINAL attempt. Make minimal but important changes.")
		roundContext = b.String()
	}

	return fmt.Sprintf(`You are an expert lease negotiation attorney specializing in tenant representation.

NEGOTIATION STANCE: %s
Strategy: %s
Target Risk Reduction: %s

ORIGINAL RISKY CLAUSE:
Type: %s
Risk Score: %g/100
Risk Explanation: %s
Clause Text: "%s"

ROUND %d (%s):
%s

YOUR TASK:
Propose a revised clause that protects the tenant's interests while being appropriate for this %s round.

RESPONSE FORMAT (JSON ONLY - NO MARKDOWN):
{
  "counter_clause": "Complete revised clause text (max 2000 chars)",
  "justification": "Brief explanation of why this protects tenant (max 200 chars)",
  "risk_reduction": 75.0
}

CRITICAL RULES:
- risk_reduction must be a NUMBER between 0-100 (NOT a string like "High/Medium/Low")
- Target range for this round: %s
- Return ONLY valid JSON, no markdown code blocks
- Be specific and professional`,
		stance, stanceInfo.description, targetRange,
		clauseLabel, riskScore, riskExplanation, clauseText,
		roundNumber, strings.ToUpper(roundType), roundContext,
		roundType, targetRange)
}

func rejection(round model.NegotiationRound) string {
	if round.RejectionText == nil {
		return ""
	}
	return *round.RejectionText
}
