package prompts

import "fmt"

// BuildRiskScoringPrompt constructs the single risk-scoring prompt covering
// all five dimensions. Deterministic for identical inputs: no randomness
// and no timestamps in the prompt body.
func BuildRiskScoringPrompt(documentText, historicalContext string) string {
	context := ""
	if historicalContext != "" {
		context = fmt.Sprintf("\n**HISTORICAL CONTEXT (similar clauses previously reviewed):**\n%s\n", historicalContext)
	}

	return fmt.Sprintf(`You are a legal risk assessment expert analyzing a lease agreement. Provide a comprehensive multi-dimensional risk analysis.

**LEASE AGREEMENT TEXT:**
%s
%s
**YOUR TASK:**
Analyze this lease agreement across 5 risk dimensions and provide a structured JSON response.

**SCORING RUBRICS (0-100 scale):**

**1. FINANCIAL RISK (Weight: 35%%)**
- 0-30 (Low): Reasonable rent, clear payment terms, normal escalation (<3%% annual), standard deposit
- 31-60 (Medium): Moderate rent escalation (3-5%%), multiple hidden costs, unclear VAT terms, high deposit
- 61-100 (High): Excessive rent escalation (>5%%), unfair payment terms, unreasonable deposits, hidden fees, one-sided financial clauses

Key factors: Payment terms, rent escalation clauses, deposits, hidden costs, VAT terms, financial penalties

**2. LEGAL/COMPLIANCE RISK (Weight: 30%%)**
- 0-30 (Low): Balanced liability, standard insurance, fair indemnification, tenant protections, clear compliance terms
- 31-60 (Medium): Moderate liability imbalance, some missing protections, unclear compliance requirements
- 61-100 (High): One-sided liability allocation, unlimited indemnification, missing tenant protections, unfair legal clauses, compliance gaps

Key factors: Liability allocation, indemnification clauses, insurance requirements, tenant protections, regulatory compliance

**3. OPERATIONAL RISK (Weight: 20%%)**
- 0-30 (Low): Flexible use rights, reasonable maintenance terms, fair access requirements, permitted sublease/assignment
- 31-60 (Medium): Some use restrictions, moderate maintenance burden, limited sublease rights
- 61-100 (High): Severe use restrictions, excessive maintenance obligations, landlord overreach, prohibited sublease/assignment, operational constraints

Key factors: Use restrictions, maintenance obligations, access rights, sublease/assignment terms, operational flexibility

**4. TIMELINE RISK (Weight: 15%%)**
- 0-30 (Low): Reasonable notice periods (<6 months), no auto-renewal, clear break clauses, flexible termination
- 31-60 (Medium): Long notice periods (6-12 months), short-term auto-renewal (<1 year), limited break clauses
- 61-100 (High): Excessive notice periods (>12 months), long auto-renewal (>1 year), no break clauses, inflexible timeline

Key factors: Notice periods, auto-renewal terms, break clauses, lease flexibility, termination conditions

**5. STRATEGIC/REPUTATIONAL RISK (Qualitative only - insights, not scored in overall)**
- Brand/trademark usage restrictions
- Confidentiality imbalances
- Non-disparagement clauses
- Publicity restrictions
- Reputational implications

**OUTPUT FORMAT:**
Return a JSON object with this EXACT structure (no markdown, no explanation, just the JSON):

{
  "financial": {
    "score": <0-100>,
    "key_findings": ["finding 1", "finding 2", "finding 3"],
    "problematic_clauses": [
      {
        "clause_text": "Brief clause reference (max 100 chars)",
        "severity": <0-100>,
        "confidence": <0-1>,
        "risk_explanation": "Brief explanation (max 150 chars)",
        "recommended_action": "Brief action (max 100 chars)"
      }
    ]
  },
  "legal_compliance": {
    "score": <0-100>,
    "key_findings": ["finding 1", "finding 2"],
    "problematic_clauses": [...]
  },
  "operational": {
    "score": <0-100>,
    "key_findings": ["finding 1", "finding 2"],
    "problematic_clauses": [...]
  },
  "timeline": {
    "score": <0-100>,
    "key_findings": ["finding 1", "finding 2"],
    "problematic_clauses": [...]
  },
  "strategic_reputational": {
    "score": 0,
    "key_findings": ["insight 1", "insight 2"],
    "problematic_clauses": []
  },
  "top_risks": ["risk 1", "risk 2", "risk 3"],
  "immediate_actions": ["action 1", "action 2"],
  "total_clauses_analyzed": <count>
}

**CRITICAL OUTPUT SIZE REQUIREMENTS:**
- clause_text: MUST be under 100 chars - use section references like "Section 1.01.17 Operating Expenses" NOT the full text
- risk_explanation: MUST be under 150 chars
- recommended_action: MUST be under 100 chars
- key_findings: Max 3 findings per dimension, each under 150 chars
- problematic_clauses: Max 3 per dimension
- All scores: numbers 0-100
- All confidence values: 0-1
- Strategic score is always 0 (qualitative-only dimension)
- Be concise - the response MUST be valid JSON under 10000 characters total`, documentText, context)
}
