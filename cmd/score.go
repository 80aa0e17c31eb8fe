package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/clausecraft/clausecraft/pkg/formatter"
	"github.com/clausecraft/clausecraft/pkg/model"
	"github.com/clausecraft/clausecraft/pkg/risk"
)

var (
	scoreContextFile  string
	scoreOutputFormat string
	scoreLLMProvider  string
	scoreLLMModel     string
	scoreTimeout      time.Duration
)

func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score LEASE_FILE",
		Short: "Score a lease agreement across 5 risk dimensions",
		Long: `Analyze a lease agreement's text with AI and produce a weighted
multi-dimensional risk assessment (financial, legal/compliance, operational,
timeline, strategic/reputational).

Examples:
  # Score a lease
  clausecraft score lease.txt

  # Include historical context from previously reviewed clauses
  clausecraft score lease.txt --context history.txt

  # Machine-readable output
  clausecraft score lease.txt -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runScore,
	}

	cmd.Flags().StringVar(&scoreContextFile, "context", "", "File with historical context from similar clauses")
	cmd.Flags().StringVarP(&scoreOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&scoreLLMProvider, "provider", "", "LLM provider (gemini, claude, openai). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&scoreLLMModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().DurationVar(&scoreTimeout, "timeout", 2*time.Minute, "Overall deadline for the assessment")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	documentText, err := readFileArg(args[0], "lease file")
	if err != nil {
		return err
	}

	historicalContext := ""
	if scoreContextFile != "" {
		historicalContext, err = readFileArg(scoreContextFile, "context file")
		if err != nil {
			return err
		}
	}

	printScoreHeader(args[0])

	client, err := initLLM(scoreLLMProvider, scoreLLMModel)
	if err != nil {
		return err
	}

	s := newSpinner()
	s.Suffix = " Scoring lease risk with AI..."
	s.Start()

	ctx, cancel := context.WithTimeout(cmd.Context(), scoreTimeout)
	defer cancel()

	assessment, err := risk.New(client).Score(ctx, documentText, historicalContext)
	if err != nil {
		s.Stop()
		return fmt.Errorf("risk scoring failed: %w", err)
	}

	s.Stop()
	if assessment.Status == model.AssessmentIncomplete {
		printError("Assessment degraded: model output unusable after retry")
	} else {
		printSuccess("Risk assessment complete")
	}

	return formatter.DisplayRiskAssessment(assessment, scoreOutputFormat)
}

func printScoreHeader(leaseFile string) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🏠 ClauseCraft Risk Scorer")
	fmt.Printf("📄 Lease: %s\n", leaseFile)
	if scoreContextFile != "" {
		fmt.Printf("📚 Context: %s\n", scoreContextFile)
	}
	fmt.Println()
}
