package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clausecraft/clausecraft/pkg/formatter"
	"github.com/clausecraft/clausecraft/pkg/model"
	"github.com/clausecraft/clausecraft/pkg/validate"
)

var (
	validateClause       string
	validateCategory     string
	validateRisk         float64
	validateExplanation  string
	validateContextFile  string
	validateBatchFile    string
	validateConcurrency  int
	validateOutputFormat string
	validateLLMProvider  string
	validateLLMModel     string
	validateTimeout      time.Duration
)

func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate lease clauses and derive PASS/WARN/FAIL verdicts",
		Long: `Run the 5-layer clause validation (completeness, dangerous patterns,
contradictions, vague language, policy alignment) and derive a deterministic
PASS/WARN/FAIL verdict from the detected issues and model confidence.

Examples:
  # Validate a single clause
  clausecraft validate --clause "Tenant waives all claims" --category legal_compliance \
    --risk 75 --explanation "Blanket waiver of tenant rights"

  # Validate a batch of clauses from a YAML file, 4 at a time
  clausecraft validate --batch clauses.yaml

  # With document context for contradiction checking
  clausecraft validate --clause "..." --category financial --risk 40 \
    --explanation "..." --document-context lease.txt`,
		RunE: runValidate,
	}

	cmd.Flags().StringVar(&validateClause, "clause", "", "Clause text to validate")
	cmd.Flags().StringVar(&validateCategory, "category", "", "Clause category (e.g., financial, legal_compliance)")
	cmd.Flags().Float64Var(&validateRisk, "risk", 0, "Clause risk score (0-100)")
	cmd.Flags().StringVar(&validateExplanation, "explanation", "", "Why the clause is risky")
	cmd.Flags().StringVar(&validateContextFile, "document-context", "", "File with full document text for contradiction checking")
	cmd.Flags().StringVar(&validateBatchFile, "batch", "", "YAML file with a list of clauses to validate")
	cmd.Flags().IntVar(&validateConcurrency, "concurrency", validate.DefaultBatchConcurrency, "Max concurrent validations in batch mode")
	cmd.Flags().StringVarP(&validateOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&validateLLMProvider, "provider", "", "LLM provider (gemini, claude, openai). Defaults to auto-detect from env")
	cmd.Flags().StringVar(&validateLLMModel, "model", "", "LLM model to use (overrides default)")
	cmd.Flags().DurationVar(&validateTimeout, "timeout", 2*time.Minute, "Overall deadline for validation")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateBatchFile == "" && validateClause == "" {
		return fmt.Errorf("either --clause or --batch is required")
	}

	inputs, err := gatherValidationInputs()
	if err != nil {
		return err
	}

	printValidateHeader(len(inputs))

	client, err := initLLM(validateLLMProvider, validateLLMModel)
	if err != nil {
		return err
	}

	s := newSpinner()
	s.Suffix = fmt.Sprintf(" Validating %d clause(s) with AI...", len(inputs))
	s.Start()

	ctx, cancel := context.WithTimeout(cmd.Context(), validateTimeout)
	defer cancel()

	validator := validate.New(client).WithBatchConcurrency(validateConcurrency)

	var results []*model.ValidationResult
	if len(inputs) == 1 {
		result, err := validator.Validate(ctx, inputs[0])
		if err != nil {
			s.Stop()
			return fmt.Errorf("validation failed: %w", err)
		}
		results = append(results, result)
	} else {
		results, err = validator.ValidateBatch(ctx, inputs)
		if err != nil {
			s.Stop()
			return fmt.Errorf("batch validation failed: %w", err)
		}
	}

	s.Stop()
	printSuccess(fmt.Sprintf("Validated %d clause(s)", len(results)))

	return formatter.DisplayValidations(results, validateOutputFormat)
}

func gatherValidationInputs() ([]validate.Input, error) {
	if validateBatchFile != "" {
		data, err := readFileArg(validateBatchFile, "batch file")
		if err != nil {
			return nil, err
		}
		var inputs []validate.Input
		if err := yaml.Unmarshal([]byte(data), &inputs); err != nil {
			return nil, fmt.Errorf("failed to parse batch file: %w", err)
		}
		if len(inputs) == 0 {
			return nil, fmt.Errorf("batch file contains no clauses")
		}
		return inputs, nil
	}

	documentContext := ""
	if validateContextFile != "" {
		text, err := readFileArg(validateContextFile, "document context file")
		if err != nil {
			return nil, err
		}
		documentContext = text
	}

	return []validate.Input{{
		ClauseText:      validateClause,
		ClauseCategory:  validateCategory,
		RiskScore:       validateRisk,
		RiskExplanation: validateExplanation,
		DocumentContext: documentContext,
	}}, nil
}

func printValidateHeader(count int) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🔍 ClauseCraft Validator")
	if validateBatchFile != "" {
		fmt.Printf("📋 Batch: %s (%d clauses, concurrency %d)\n", validateBatchFile, count, validateConcurrency)
	} else {
		fmt.Printf("📝 Category: %s | Risk Score: %.0f\n", validateCategory, validateRisk)
	}
	fmt.Println()
}
