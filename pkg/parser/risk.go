package parser

import "encoding/json"

// Sanitization limits for risk responses. The prompt asks the model to stay
// inside these; anything longer is trimmed rather than rejected.
const (
	maxKeyFindings        = 3
	maxProblematicClauses = 3
	maxTopLevelItems      = 3
	maxClauseTextLen      = 100
	maxFindingLen         = 150
	maxExplanationLen     = 150
	maxActionLen          = 100
)

var riskSchema = mustCompile("risk_response", `{
  "type": "object",
  "required": ["financial", "legal_compliance", "operational", "timeline",
               "strategic_reputational", "top_risks", "immediate_actions",
               "total_clauses_analyzed"],
  "properties": {
    "financial": {"$ref": "#/$defs/dimension"},
    "legal_compliance": {"$ref": "#/$defs/dimension"},
    "operational": {"$ref": "#/$defs/dimension"},
    "timeline": {"$ref": "#/$defs/dimension"},
    "strategic_reputational": {"$ref": "#/$defs/dimension"},
    "top_risks": {"type": "array", "items": {"type": "string"}},
    "immediate_actions": {"type": "array", "items": {"type": "string"}},
    "negotiation_priorities": {"type": "array", "items": {"type": "string"}},
    "total_clauses_analyzed": {"type": "integer", "minimum": 0}
  },
  "$defs": {
    "dimension": {
      "type": "object",
      "required": ["score", "key_findings", "problematic_clauses"],
      "properties": {
        "score": {"type": "number", "minimum": 0, "maximum": 100},
        "key_findings": {"type": "array", "items": {"type": "string"}},
        "problematic_clauses": {"type": "array", "items": {"$ref": "#/$defs/clause"}}
      }
    },
    "clause": {
      "type": "object",
      "required": ["clause_text", "severity", "confidence",
                   "risk_explanation", "recommended_action"],
      "properties": {
        "clause_text": {"type": "string"},
        "severity": {"type": "number", "minimum": 0, "maximum": 100},
        "confidence": {"type": "number", "minimum": 0, "maximum": 1},
        "risk_explanation": {"type": "string"},
        "recommended_action": {"type": "string"}
      }
    }
  }
}`)

// RiskResponse is the raw risk-scoring payload as emitted by the model,
// before weighting and severity banding.
type RiskResponse struct {
	Financial             DimensionPayload `json:"financial"`
	LegalCompliance       DimensionPayload `json:"legal_compliance"`
	Operational           DimensionPayload `json:"operational"`
	Timeline              DimensionPayload `json:"timeline"`
	StrategicReputational DimensionPayload `json:"strategic_reputational"`
	TopRisks              []string         `json:"top_risks"`
	ImmediateActions      []string         `json:"immediate_actions"`
	NegotiationPriorities []string         `json:"negotiation_priorities"`
	TotalClausesAnalyzed  int              `json:"total_clauses_analyzed"`
}

type DimensionPayload struct {
	Score              float64         `json:"score"`
	KeyFindings        []string        `json:"key_findings"`
	ProblematicClauses []ClausePayload `json:"problematic_clauses"`
}

type ClausePayload struct {
	ClauseText        string  `json:"clause_text"`
	Severity          float64 `json:"severity"`
	Confidence        float64 `json:"confidence"`
	RiskExplanation   string  `json:"risk_explanation"`
	RecommendedAction string  `json:"recommended_action"`
}

// UnmarshalValidate implements llm.ResponseValidator.
func (r *RiskResponse) UnmarshalValidate(raw []byte) error {
	if err := checkSchema(riskSchema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, r); err != nil {
		return err
	}
	r.sanitize()
	return nil
}

func (r *RiskResponse) sanitize() {
	for _, dim := range []*DimensionPayload{
		&r.Financial, &r.LegalCompliance, &r.Operational, &r.Timeline, &r.StrategicReputational,
	} {
		if len(dim.KeyFindings) > maxKeyFindings {
			dim.KeyFindings = dim.KeyFindings[:maxKeyFindings]
		}
		for i, finding := range dim.KeyFindings {
			dim.KeyFindings[i] = truncate(finding, maxFindingLen)
		}
		if len(dim.ProblematicClauses) > maxProblematicClauses {
			dim.ProblematicClauses = dim.ProblematicClauses[:maxProblematicClauses]
		}
		for i := range dim.ProblematicClauses {
			clause := &dim.ProblematicClauses[i]
			clause.ClauseText = truncate(clause.ClauseText, maxClauseTextLen)
			clause.RiskExplanation = truncate(clause.RiskExplanation, maxExplanationLen)
			clause.RecommendedAction = truncate(clause.RecommendedAction, maxActionLen)
		}
	}

	for _, list := range []*[]string{&r.TopRisks, &r.ImmediateActions, &r.NegotiationPriorities} {
		if len(*list) > maxTopLevelItems {
			*list = (*list)[:maxTopLevelItems]
		}
		for i, item := range *list {
			(*list)[i] = truncate(item, maxFindingLen)
		}
	}
}
