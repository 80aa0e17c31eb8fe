package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clausecraft/clausecraft/pkg/formatter"
	"github.com/clausecraft/clausecraft/pkg/negotiate"
)

var (
	negotiateClause       string
	negotiateClauseFile   string
	negotiateLabel        string
	negotiateRisk         float64
	negotiateExplanation  string
	negotiateOutputFormat string
	negotiateLLMProvider  string
	negotiateLLMModel     string
	negotiateTimeout      time.Duration
)

func NewNegotiateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Run a 3-round AI negotiation for a risky clause",
		Long: `Generate three escalating counter-proposals (ideal, alternative, fallback)
for a single risky lease clause. The negotiation stance is derived from the
risk score; rounds and counterparty rejections are fixed.

Examples:
  # Negotiate an indemnification clause
  clausecraft negotiate --clause "Tenant shall indemnify Landlord against all claims" \
    --label "Indemnification" --risk 85 --explanation "Unlimited one-sided indemnity"

  # Read the clause from a file
  clausecraft negotiate --clause-file clause.txt --label "Rent Escalation" --risk 55 \
    --explanation "Uncapped annual escalation" -o json`,
		RunE: runNegotiate,
	}

	cmd.Flags().StringVar(&negotiateClause, "clause", "", "Clause text to negotiate")
	cmd.Flags().StringVar(&negotiateClauseFile, "clause-file", "", "File containing the clause text")
	cmd.Flags().StringVar(&negotiateLabel, "label", "", "Clause type label (e.g., Indemnification)")
	cmd.Flags().Float64Var(&negotiateRisk, "risk", 0, "Clause risk score (0-100)")
	cmd.Flags().StringVar(&negotiateExplanation, "explanation", "", "Why the clause is risky")
	cmd.Flags().StringVarP(&negotiateOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&negotiateLLMProvider, "provider", "", "LLM provider (gemini, claude, openai). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&negotiateLLMModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().DurationVar(&negotiateTimeout, "timeout", 3*time.Minute, "Overall deadline for all 3 rounds")

	return cmd
}

func runNegotiate(cmd *cobra.Command, args []string) error {
	clauseText := negotiateClause
	if clauseText == "" && negotiateClauseFile != "" {
		text, err := readFileArg(negotiateClauseFile, "clause file")
		if err != nil {
			return err
		}
		clauseText = text
	}
	if clauseText == "" {
		return fmt.Errorf("either --clause or --clause-file is required")
	}
	if negotiateLabel == "" {
		return fmt.Errorf("--label is required")
	}

	printNegotiateHeader(negotiateLabel)

	client, err := initLLM(negotiateLLMProvider, negotiateLLMModel)
	if err != nil {
		return err
	}

	s := newSpinner()
	s.Suffix = " Negotiating 3 rounds with AI..."
	s.Start()

	ctx, cancel := context.WithTimeout(cmd.Context(), negotiateTimeout)
	defer cancel()

	result, err := negotiate.New(client).Negotiate(ctx, clauseText, negotiateLabel, negotiateRisk, negotiateExplanation)
	if err != nil {
		s.Stop()
		return fmt.Errorf("negotiation failed: %w", err)
	}

	s.Stop()
	printSuccess(fmt.Sprintf("Negotiation complete (%s stance)", result.Stance))

	return formatter.DisplayNegotiation(result, negotiateOutputFormat)
}

func printNegotiateHeader(label string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🤝 ClauseCraft Negotiator")
	fmt.Printf("📝 Clause: %s\n", label)
	fmt.Printf("📊 Risk Score: %.0f\n", negotiateRisk)
	fmt.Println()
}
