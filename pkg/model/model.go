package model

import "time"

// SeverityBand classifies a 0-100 score into Low/Medium/High.
type SeverityBand string

const (
	SeverityLow    SeverityBand = "Low"
	SeverityMedium SeverityBand = "Medium"
	SeverityHigh   SeverityBand = "High"
)

// BandForScore maps a numeric score to its severity band using
// non-overlapping thresholds: [0,40) Low, [40,70) Medium, [70,100] High.
func BandForScore(score float64) SeverityBand {
	switch {
	case score < 40:
		return SeverityLow
	case score < 70:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// Stance is the negotiation posture derived from a clause's risk score.
type Stance string

const (
	StanceDefensive Stance = "Defensive"
	StanceBalanced  Stance = "Balanced"
	StanceSoft      Stance = "Soft"
)

// Dimension names for the five risk categories.
const (
	DimensionFinancial       = "financial"
	DimensionLegalCompliance = "legal_compliance"
	DimensionOperational     = "operational"
	DimensionTimeline        = "timeline"
	DimensionStrategic       = "strategic_reputational"
)

// Weights of the four quantitative dimensions. Must sum to 1.0.
// strategic_reputational is qualitative-only and carries no weight.
const (
	WeightFinancial       = 0.35
	WeightLegalCompliance = 0.30
	WeightOperational     = 0.20
	WeightTimeline        = 0.15
)

// ClauseRiskScore is one problematic clause within a risk dimension.
type ClauseRiskScore struct {
	ClauseText        string       `json:"clause_text" yaml:"clause_text"`
	Category          string       `json:"category" yaml:"category"`
	Severity          float64      `json:"severity" yaml:"severity"`
	SeverityLevel     SeverityBand `json:"severity_level" yaml:"severity_level"`
	Confidence        float64      `json:"confidence" yaml:"confidence"`
	RiskExplanation   string       `json:"risk_explanation" yaml:"risk_explanation"`
	RecommendedAction string       `json:"recommended_action" yaml:"recommended_action"`
}

// DimensionScore is the aggregated score for one risk dimension.
// Weight is nil for the qualitative strategic_reputational dimension.
type DimensionScore struct {
	Score              float64           `json:"score" yaml:"score"`
	Severity           SeverityBand      `json:"severity" yaml:"severity"`
	Weight             *float64          `json:"weight" yaml:"weight"`
	KeyFindings        []string          `json:"key_findings" yaml:"key_findings"`
	ProblematicClauses []ClauseRiskScore `json:"problematic_clauses" yaml:"problematic_clauses"`
}

// AssessmentStatus distinguishes a genuine assessment from the degraded
// placeholder produced when both LLM attempts fail.
type AssessmentStatus string

const (
	AssessmentComplete   AssessmentStatus = "complete"
	AssessmentIncomplete AssessmentStatus = "incomplete"
)

// RiskAssessment is the top-level risk result for one lease document.
type RiskAssessment struct {
	Status                AssessmentStatus `json:"status" yaml:"status"`
	OverallScore          float64          `json:"overall_score" yaml:"overall_score"`
	OverallSeverity       SeverityBand     `json:"overall_severity" yaml:"overall_severity"`
	Financial             DimensionScore   `json:"financial" yaml:"financial"`
	LegalCompliance       DimensionScore   `json:"legal_compliance" yaml:"legal_compliance"`
	Operational           DimensionScore   `json:"operational" yaml:"operational"`
	Timeline              DimensionScore   `json:"timeline" yaml:"timeline"`
	StrategicReputational DimensionScore   `json:"strategic_reputational" yaml:"strategic_reputational"`
	TopRisks              []string         `json:"top_risks" yaml:"top_risks"`
	ImmediateActions      []string         `json:"immediate_actions" yaml:"immediate_actions"`
	NegotiationPriorities []string         `json:"negotiation_priorities" yaml:"negotiation_priorities"`
	TotalClausesAnalyzed  int              `json:"total_clauses_analyzed" yaml:"total_clauses_analyzed"`
	HighRiskClausesCount  int              `json:"high_risk_clauses_count" yaml:"high_risk_clauses_count"`
	Timestamp             time.Time        `json:"timestamp" yaml:"timestamp"`
}

// Dimensions returns the five dimension scores keyed by name.
func (a *RiskAssessment) Dimensions() map[string]DimensionScore {
	return map[string]DimensionScore{
		DimensionFinancial:       a.Financial,
		DimensionLegalCompliance: a.LegalCompliance,
		DimensionOperational:     a.Operational,
		DimensionTimeline:        a.Timeline,
		DimensionStrategic:       a.StrategicReputational,
	}
}

// NegotiationRound is one of exactly three rounds for a clause negotiation.
// RejectionText is the counterparty's canned response to this round's
// proposal: a fixed string for rounds 0 and 1, nil for the terminal round 2.
type NegotiationRound struct {
	RoundNumber   int     `json:"round_number" yaml:"round_number"`
	CounterClause string  `json:"counter_clause" yaml:"counter_clause"`
	Justification string  `json:"justification" yaml:"justification"`
	RiskReduction float64 `json:"risk_reduction" yaml:"risk_reduction"`
	RejectionText *string `json:"rejection_text" yaml:"rejection_text"`
}

// NegotiationResult is the complete 3-round negotiation for one clause.
type NegotiationResult struct {
	ClauseText      string             `json:"clause_text" yaml:"clause_text"`
	ClauseLabel     string             `json:"clause_label" yaml:"clause_label"`
	RiskScore       float64            `json:"risk_score" yaml:"risk_score"`
	RiskExplanation string             `json:"risk_explanation" yaml:"risk_explanation"`
	Stance          Stance             `json:"stance" yaml:"stance"`
	Rounds          []NegotiationRound `json:"rounds" yaml:"rounds"`
	Timestamp       time.Time          `json:"timestamp" yaml:"timestamp"`
}

// IssueType is the closed taxonomy of validation issue kinds.
type IssueType string

const (
	IssueCompleteness     IssueType = "completeness"
	IssueContradiction    IssueType = "contradiction"
	IssueDangerousPattern IssueType = "dangerous_pattern"
	IssueVagueLanguage    IssueType = "vague_language"
	IssuePolicyViolation  IssueType = "policy_violation"
)

// IssueSeverity grades a validation issue.
type IssueSeverity string

const (
	IssueCritical IssueSeverity = "critical"
	IssueMajor    IssueSeverity = "major"
	IssueMinor    IssueSeverity = "minor"
)

// ValidationStatus is the derived verdict for a clause.
type ValidationStatus string

const (
	StatusPass ValidationStatus = "PASS"
	StatusWarn ValidationStatus = "WARN"
	StatusFail ValidationStatus = "FAIL"
)

// ValidationIssue is one detected problem in a clause.
type ValidationIssue struct {
	IssueType    IssueType     `json:"issue_type" yaml:"issue_type"`
	Severity     IssueSeverity `json:"severity" yaml:"severity"`
	Description  string        `json:"description" yaml:"description"`
	LocationHint string        `json:"location_hint" yaml:"location_hint"`
}

// ValidationResult is the verdict for one clause.
type ValidationResult struct {
	ID               string            `json:"id" yaml:"id"`
	ClauseText       string            `json:"clause_text" yaml:"clause_text"`
	Status           ValidationStatus  `json:"status" yaml:"status"`
	Confidence       float64           `json:"confidence" yaml:"confidence"`
	Issues           []ValidationIssue `json:"issues" yaml:"issues"`
	Timestamp        time.Time         `json:"timestamp" yaml:"timestamp"`
	ValidationTimeMs float64           `json:"validation_time_ms" yaml:"validation_time_ms"`
}
