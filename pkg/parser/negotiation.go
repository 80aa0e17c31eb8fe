package parser

import "encoding/json"

// Truncation limits for negotiation responses.
const (
	maxCounterClauseLen = 2000
	maxJustificationLen = 200
)

var negotiationSchema = mustCompile("negotiation_response", `{
  "type": "object",
  "required": ["counter_clause", "justification", "risk_reduction"],
  "properties": {
    "counter_clause": {"type": "string", "minLength": 1},
    "justification": {"type": "string"},
    "risk_reduction": {"type": "number", "minimum": 0, "maximum": 100}
  }
}`)

// NegotiationResponse is one round's proposal as emitted by the model.
// risk_reduction is a number, never a categorical label.
type NegotiationResponse struct {
	CounterClause string  `json:"counter_clause"`
	Justification string  `json:"justification"`
	RiskReduction float64 `json:"risk_reduction"`
}

// UnmarshalValidate implements llm.ResponseValidator.
func (n *NegotiationResponse) UnmarshalValidate(raw []byte) error {
	if err := checkSchema(negotiationSchema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, n); err != nil {
		return err
	}
	n.CounterClause = clip(n.CounterClause, maxCounterClauseLen)
	n.Justification = clip(n.Justification, maxJustificationLen)
	return nil
}
