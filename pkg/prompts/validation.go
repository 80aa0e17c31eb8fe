package prompts

import "fmt"

// Document context is capped so one oversized lease cannot blow the prompt.
const maxDocumentContextLen = 5000

// BuildValidationPrompt constructs the clause-validation prompt embedding
// the 5-layer check list. The model supplies raw issues and confidence
// only; the verdict is derived by the caller.
func BuildValidationPrompt(clauseText, clauseCategory string, riskScore float64, riskExplanation, documentContext string) string {
	contextBlock := ""
	if documentContext != "" {
		runes := []rune(documentContext)
		if len(runes) > maxDocumentContextLen {
			documentContext = string(runes[:maxDocumentContextLen])
		}
		contextBlock = fmt.Sprintf("FULL DOCUMENT CONTEXT (for contradiction checking):\n%s\n", documentContext)
	}

	return fmt.Sprintf(`You are a legal clause validation expert. Analyze the following contract clause and provide a comprehensive validation assessment.

CLAUSE TO VALIDATE:
%s

CLAUSE CATEGORY: %s
RISK SCORE: %g
RISK EXPLANATION: %s

Perform a multi-layered validation:

1. **Completeness Check**: Does the clause have clear:
   - Parties involved
   - Obligations and responsibilities
   - Consequences for non-compliance
   - Timeline or duration

2. **Dangerous Patterns**: Look for:
   - Unlimited liability clauses
   - One-sided terms that heavily favor one party
   - Unclear termination conditions
   - Automatic renewal without clear opt-out
   - Indemnification clauses with no caps

3. **Contradictions**: Check for:
   - Internal contradictions within the clause
   - Contradictions with other clauses (if document context provided)

4. **Vague Language**: Identify:
   - Ambiguous terms without definitions
   - Undefined thresholds or metrics
   - Unclear timeframes ("reasonable time", "promptly", etc.)

5. **Policy Alignment**: Check against known policy rules if provided.

%s
RESPONSE FORMAT:
Provide your analysis as a JSON object with the following structure:
{
    "confidence": <float between 0 and 1>,
    "issues": [
        {
            "issue_type": "<completeness|contradiction|dangerous_pattern|vague_language|policy_violation>",
            "severity": "<critical|major|minor>",
            "description": "<detailed description of the issue>",
            "location_hint": "<specific part of clause where issue occurs>"
        }
    ],
    "overall_assessment": "<brief summary of validation findings>"
}

IMPORTANT:
- confidence should reflect how certain you are about your assessment (0.0 to 1.0)
- severity levels:
  - critical: Makes clause unacceptable, high risk of legal issues
  - major: Significant concern, needs attention before acceptance
  - minor: Minor improvement suggested, acceptable as-is
- Be precise and specific in your descriptions
- If no issues found, return empty issues array with high confidence`,
		clauseText, clauseCategory, riskScore, riskExplanation, contextBlock)
}
