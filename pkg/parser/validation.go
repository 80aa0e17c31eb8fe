package parser

import (
	"encoding/json"

	"github.com/clausecraft/clausecraft/pkg/model"
)

var validationSchema = mustCompile("validation_response", `{
  "type": "object",
  "required": ["confidence", "issues"],
  "properties": {
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "issues": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["issue_type", "severity", "description"],
        "properties": {
          "issue_type": {
            "enum": ["completeness", "contradiction", "dangerous_pattern",
                     "vague_language", "policy_violation"]
          },
          "severity": {"enum": ["critical", "major", "minor"]},
          "description": {"type": "string"},
          "location_hint": {"type": "string"}
        }
      }
    },
    "overall_assessment": {"type": "string"}
  }
}`)

// ValidationResponse carries the model's raw issues and confidence. The
// final PASS/WARN/FAIL verdict is derived by the orchestrator, never
// requested from the model.
type ValidationResponse struct {
	Confidence        float64        `json:"confidence"`
	Issues            []IssuePayload `json:"issues"`
	OverallAssessment string         `json:"overall_assessment"`
}

type IssuePayload struct {
	IssueType    model.IssueType     `json:"issue_type"`
	Severity     model.IssueSeverity `json:"severity"`
	Description  string              `json:"description"`
	LocationHint string              `json:"location_hint"`
}

// UnmarshalValidate implements llm.ResponseValidator.
func (v *ValidationResponse) UnmarshalValidate(raw []byte) error {
	if err := checkSchema(validationSchema, raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
