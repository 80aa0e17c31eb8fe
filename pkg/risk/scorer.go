package risk

import (
	"context"
	"strings"
	"time"

	"github.com/clausecraft/clausecraft/pkg/llm"
	"github.com/clausecraft/clausecraft/pkg/model"
	"github.com/clausecraft/clausecraft/pkg/parser"
	"github.com/clausecraft/clausecraft/pkg/prompts"
)

// incompleteFinding is the literal marker used in the degraded placeholder
// assessment so callers never mistake a double-failure for a clean result.
const incompleteFinding = "Analysis incomplete"

// Scorer produces one RiskAssessment per document via exactly one LLM call
// plus its single lowered-temperature retry.
type Scorer struct {
	structured *llm.Structured
}

func New(client llm.Client) *Scorer {
	return &Scorer{
		structured: llm.NewStructured(client, llm.StructuredOptions{
			FirstTemperature: 0.3,
			RetryTemperature: 0.1,
			MaxTokens:        16384,
			System:           "You are a precise legal risk analyst. Always return valid JSON.",
		}),
	}
}

// Score analyzes documentText across the five risk dimensions. When both
// LLM attempts fail it degrades to a tagged placeholder assessment instead
// of returning an error, so one broken document analysis does not block a
// pipeline; the placeholder carries Status AssessmentIncomplete.
func (s *Scorer) Score(ctx context.Context, documentText, historicalContext string) (*model.RiskAssessment, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, &model.InvalidInputError{Field: "document_text", Reason: "must not be empty"}
	}

	prompt := prompts.BuildRiskScoringPrompt(documentText, historicalContext)

	var resp parser.RiskResponse
	if err := s.structured.CallJSON(ctx, prompt, &resp); err != nil {
		return incompleteAssessment(), nil
	}
	return assemble(&resp), nil
}

func assemble(resp *parser.RiskResponse) *model.RiskAssessment {
	overall := resp.Financial.Score*model.WeightFinancial +
		resp.LegalCompliance.Score*model.WeightLegalCompliance +
		resp.Operational.Score*model.WeightOperational +
		resp.Timeline.Score*model.WeightTimeline

	assessment := &model.RiskAssessment{
		Status:                model.AssessmentComplete,
		OverallScore:          overall,
		OverallSeverity:       model.BandForScore(overall),
		Financial:             dimension(model.DimensionFinancial, resp.Financial, weightPtr(model.WeightFinancial)),
		LegalCompliance:       dimension(model.DimensionLegalCompliance, resp.LegalCompliance, weightPtr(model.WeightLegalCompliance)),
		Operational:           dimension(model.DimensionOperational, resp.Operational, weightPtr(model.WeightOperational)),
		Timeline:              dimension(model.DimensionTimeline, resp.Timeline, weightPtr(model.WeightTimeline)),
		StrategicReputational: dimension(model.DimensionStrategic, resp.StrategicReputational, nil),
		TopRisks:              resp.TopRisks,
		ImmediateActions:      resp.ImmediateActions,
		NegotiationPriorities: resp.NegotiationPriorities,
		TotalClausesAnalyzed:  resp.TotalClausesAnalyzed,
		Timestamp:             time.Now().UTC(),
	}

	highRisk := 0
	for _, dim := range assessment.Dimensions() {
		for _, clause := range dim.ProblematicClauses {
			if clause.Severity >= 70 {
				highRisk++
			}
		}
	}
	assessment.HighRiskClausesCount = highRisk

	return assessment
}

func dimension(name string, payload parser.DimensionPayload, weight *float64) model.DimensionScore {
	clauses := make([]model.ClauseRiskScore, 0, len(payload.ProblematicClauses))
	for _, c := range payload.ProblematicClauses {
		clauses = append(clauses, model.ClauseRiskScore{
			ClauseText:        c.ClauseText,
			Category:          name,
			Severity:          c.Severity,
			SeverityLevel:     model.BandForScore(c.Severity),
			Confidence:        c.Confidence,
			RiskExplanation:   c.RiskExplanation,
			RecommendedAction: c.RecommendedAction,
		})
	}
	return model.DimensionScore{
		Score:              payload.Score,
		Severity:           model.BandForScore(payload.Score),
		Weight:             weight,
		KeyFindings:        payload.KeyFindings,
		ProblematicClauses: clauses,
	}
}

func incompleteAssessment() *model.RiskAssessment {
	emptyDim := func(weight *float64) model.DimensionScore {
		return model.DimensionScore{
			Score:              0,
			Severity:           model.SeverityLow,
			Weight:             weight,
			KeyFindings:        []string{incompleteFinding},
			ProblematicClauses: []model.ClauseRiskScore{},
		}
	}
	return &model.RiskAssessment{
		Status:                model.AssessmentIncomplete,
		OverallScore:          0,
		OverallSeverity:       model.SeverityLow,
		Financial:             emptyDim(weightPtr(model.WeightFinancial)),
		LegalCompliance:       emptyDim(weightPtr(model.WeightLegalCompliance)),
		Operational:           emptyDim(weightPtr(model.WeightOperational)),
		Timeline:              emptyDim(weightPtr(model.WeightTimeline)),
		StrategicReputational: emptyDim(nil),
		TopRisks:              []string{},
		ImmediateActions:      []string{},
		NegotiationPriorities: []string{},
		Timestamp:             time.Now().UTC(),
	}
}

func weightPtr(w float64) *float64 {
	return &w
}
