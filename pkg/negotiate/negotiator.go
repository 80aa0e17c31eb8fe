package negotiate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clausecraft/clausecraft/pkg/llm"
	"github.com/clausecraft/clausecraft/pkg/model"
	"github.com/clausecraft/clausecraft/pkg/parser"
	"github.com/clausecraft/clausecraft/pkg/prompts"
)

// NumRounds is fixed: every negotiation runs ideal, alternative, fallback.
const NumRounds = 3

// Static counterparty rejections. Round N's rejection answers round N's
// proposal; the terminal round 2 gets none.
const (
	RejectionRound0 = "The counterparty cannot accept this change due to internal policy."
	RejectionRound1 = "The counterparty insists on keeping the original clause."
)

var rejectionTemplates = map[int]string{
	0: RejectionRound0,
	1: RejectionRound1,
}

// StanceForRisk derives the negotiation posture deterministically from the
// clause's risk score; it is never user-supplied or LLM-driven.
func StanceForRisk(riskScore float64) model.Stance {
	switch {
	case riskScore >= 70:
		return model.StanceDefensive
	case riskScore >= 40:
		return model.StanceBalanced
	default:
		return model.StanceSoft
	}
}

// Negotiator runs the fixed 3-round negotiation for a single clause. Rounds
// are strictly sequential: each prompt embeds the full output of every
// prior round, so they must never be parallelized.
type Negotiator struct {
	structured *llm.Structured
}

func New(client llm.Client) *Negotiator {
	return &Negotiator{
		structured: llm.NewStructured(client, llm.StructuredOptions{
			FirstTemperature: 0.3,
			RetryTemperature: 0.1,
			MaxTokens:        1024,
			System:           "You are a precise legal negotiation expert. Always return valid JSON.",
		}),
	}
}

// Negotiate executes rounds 0-2 and returns the complete result. A
// generation failure on any round aborts the whole negotiation; three
// rounds is an invariant, not a best effort.
func (n *Negotiator) Negotiate(ctx context.Context, clauseText, clauseLabel string, riskScore float64, riskExplanation string) (*model.NegotiationResult, error) {
	if strings.TrimSpace(clauseText) == "" {
		return nil, &model.InvalidInputError{Field: "clause_text", Reason: "must not be empty"}
	}
	if err := model.ValidateRiskScore(riskScore); err != nil {
		return nil, err
	}

	stance := StanceForRisk(riskScore)

	rounds := make([]model.NegotiationRound, 0, NumRounds)
	for roundNumber := 0; roundNumber < NumRounds; roundNumber++ {
		prompt := prompts.BuildNegotiationPrompt(roundNumber, stance, clauseText, clauseLabel, riskScore, riskExplanation, rounds)

		var resp parser.NegotiationResponse
		if err := n.structured.CallJSON(ctx, prompt, &resp); err != nil {
			return nil, fmt.Errorf("negotiation round %d (%s): %w", roundNumber, prompts.RoundTypes[roundNumber], err)
		}

		round := model.NegotiationRound{
			RoundNumber:   roundNumber,
			CounterClause: resp.CounterClause,
			Justification: resp.Justification,
			RiskReduction: resp.RiskReduction,
		}
		if text, ok := rejectionTemplates[roundNumber]; ok {
			round.RejectionText = &text
		}
		rounds = append(rounds, round)
	}

	return &model.NegotiationResult{
		ClauseText:      clauseText,
		ClauseLabel:     clauseLabel,
		RiskScore:       riskScore,
		RiskExplanation: riskExplanation,
		Stance:          stance,
		Rounds:          rounds,
		Timestamp:       time.Now().UTC(),
	}, nil
}
