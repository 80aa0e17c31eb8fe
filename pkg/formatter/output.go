package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/clausecraft/clausecraft/pkg/model"
)

// DisplayRiskAssessment formats and displays a risk assessment
func DisplayRiskAssessment(assessment *model.RiskAssessment, format string) error {
	switch format {
	case "json":
		return displayJSON(assessment)
	case "yaml":
		return displayYAML(assessment)
	case "human":
		fallthrough
	default:
		displayRiskHuman(assessment)
	}
	return nil
}

// DisplayNegotiation formats and displays a negotiation result
func DisplayNegotiation(result *model.NegotiationResult, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayNegotiationHuman(result)
	}
	return nil
}

// DisplayValidations formats and displays one or more validation results
func DisplayValidations(results []*model.ValidationResult, format string) error {
	switch format {
	case "json":
		return displayJSON(results)
	case "yaml":
		return displayYAML(results)
	case "human":
		fallthrough
	default:
		for _, result := range results {
			displayValidationHuman(result)
		}
	}
	return nil
}

func displayJSON(v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayRiskHuman(assessment *model.RiskAssessment) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)

	fmt.Println()

	if assessment.Status == model.AssessmentIncomplete {
		red.Println("⚠️  ANALYSIS INCOMPLETE")
		fmt.Println("   The model did not return a usable assessment after two attempts.")
		fmt.Println("   Scores below are placeholders, NOT a low-risk verdict.")
		fmt.Println()
	}

	severityColor := bandColor(assessment.OverallSeverity)
	severityColor.Printf("📊 OVERALL RISK: %.1f/100 (%s)\n\n", assessment.OverallScore, strings.ToUpper(string(assessment.OverallSeverity)))

	cyan.Println("📐 DIMENSIONS:")
	printDimension("Financial (35%)", assessment.Financial)
	printDimension("Legal/Compliance (30%)", assessment.LegalCompliance)
	printDimension("Operational (20%)", assessment.Operational)
	printDimension("Timeline (15%)", assessment.Timeline)
	printDimension("Strategic/Reputational (qualitative)", assessment.StrategicReputational)
	fmt.Println()

	if len(assessment.TopRisks) > 0 {
		red.Println("🔥 TOP RISKS:")
		for i, risk := range assessment.TopRisks {
			fmt.Printf("   %d. %s\n", i+1, risk)
		}
		fmt.Println()
	}

	if len(assessment.ImmediateActions) > 0 {
		yellow.Println("⚡ IMMEDIATE ACTIONS:")
		for i, action := range assessment.ImmediateActions {
			fmt.Printf("   %d. %s\n", i+1, action)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("📄 Clauses analyzed: %d | High-risk clauses: %d\n", assessment.TotalClausesAnalyzed, assessment.HighRiskClausesCount)
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func printDimension(label string, dim model.DimensionScore) {
	fmt.Printf("   %s %s: %.1f (%s)\n", bandIcon(dim.Severity), label, dim.Score, dim.Severity)
	for _, finding := range dim.KeyFindings {
		fmt.Printf("      - %s\n", finding)
	}
	for _, clause := range dim.ProblematicClauses {
		fmt.Printf("      %s %s (severity %.0f)\n", bandIcon(clause.SeverityLevel), clause.ClauseText, clause.Severity)
		if clause.RiskExplanation != "" {
			fmt.Printf("         Why: %s\n", clause.RiskExplanation)
		}
		if clause.RecommendedAction != "" {
			fmt.Printf("         Action: %s\n", color.CyanString(clause.RecommendedAction))
		}
	}
}

func displayNegotiationHuman(result *model.NegotiationResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Printf("🤝 NEGOTIATION: %s\n", result.ClauseLabel)
	fmt.Printf("   Risk Score: %.0f/100 | Stance: %s\n\n", result.RiskScore, result.Stance)

	roundNames := map[int]string{0: "IDEAL", 1: "ALTERNATIVE", 2: "FALLBACK"}
	for _, round := range result.Rounds {
		white.Printf("── Round %d (%s) ──\n", round.RoundNumber, roundNames[round.RoundNumber])
		fmt.Printf("   Counter clause: %s\n", round.CounterClause)
		fmt.Printf("   Justification: %s\n", round.Justification)
		fmt.Printf("   Risk reduction: %.0f%%\n", round.RiskReduction)
		if round.RejectionText != nil {
			fmt.Printf("   Counterparty: %s\n", color.YellowString(*round.RejectionText))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func displayValidationHuman(result *model.ValidationResult) {
	fmt.Println()
	statusColor(result.Status).Printf("%s VERDICT: %s (confidence %.2f)\n", statusIcon(result.Status), result.Status, result.Confidence)
	fmt.Printf("   Clause: %s\n", truncateLine(result.ClauseText, 100))

	if len(result.Issues) > 0 {
		fmt.Println("   Issues:")
		for i, issue := range result.Issues {
			fmt.Printf("   %d. %s [%s/%s]\n", i+1, issue.Description, issue.IssueType, issue.Severity)
			if issue.LocationHint != "" {
				fmt.Printf("      At: %s\n", color.YellowString(issue.LocationHint))
			}
		}
	}
	fmt.Printf("   %s\n", color.HiBlackString(fmt.Sprintf("id=%s took=%.0fms", result.ID, result.ValidationTimeMs)))
}

func bandColor(band model.SeverityBand) *color.Color {
	switch band {
	case model.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case model.SeverityMedium:
		return color.New(color.FgYellow)
	case model.SeverityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func bandIcon(band model.SeverityBand) string {
	switch band {
	case model.SeverityHigh:
		return "🔴"
	case model.SeverityMedium:
		return "🟡"
	case model.SeverityLow:
		return "🟢"
	default:
		return "⚪"
	}
}

func statusColor(status model.ValidationStatus) *color.Color {
	switch status {
	case model.StatusFail:
		return color.New(color.FgRed, color.Bold)
	case model.StatusWarn:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

func statusIcon(status model.ValidationStatus) string {
	switch status {
	case model.StatusFail:
		return "✗"
	case model.StatusWarn:
		return "⚠"
	default:
		return "✓"
	}
}

func truncateLine(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
