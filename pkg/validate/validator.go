package validate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/clausecraft/clausecraft/pkg/llm"
	"github.com/clausecraft/clausecraft/pkg/model"
	"github.com/clausecraft/clausecraft/pkg/parser"
	"github.com/clausecraft/clausecraft/pkg/prompts"
)

// DefaultBatchConcurrency bounds how many clause validations run at once
// in ValidateBatch.
const DefaultBatchConcurrency = 4

// Input is one clause to validate. DocumentContext is optional and only
// used for cross-clause contradiction checking.
type Input struct {
	ClauseText      string  `json:"clause_text" yaml:"clause_text"`
	ClauseCategory  string  `json:"clause_category" yaml:"clause_category"`
	RiskScore       float64 `json:"risk_score" yaml:"risk_score"`
	RiskExplanation string  `json:"risk_explanation" yaml:"risk_explanation"`
	DocumentContext string  `json:"document_context,omitempty" yaml:"document_context,omitempty"`
}

// Validator produces one ValidationResult per clause via one LLM call plus
// retry. The LLM only supplies raw issues and confidence; the PASS/WARN/FAIL
// verdict is derived here.
type Validator struct {
	structured  *llm.Structured
	concurrency int
}

func New(client llm.Client) *Validator {
	return &Validator{
		structured: llm.NewStructured(client, llm.StructuredOptions{
			FirstTemperature: 0.2,
			RetryTemperature: 0.1,
			MaxTokens:        2048,
			System:           "You are a precise legal clause validator. Always return valid JSON.",
		}),
		concurrency: DefaultBatchConcurrency,
	}
}

// WithBatchConcurrency overrides the batch worker bound.
func (v *Validator) WithBatchConcurrency(n int) *Validator {
	if n > 0 {
		v.concurrency = n
	}
	return v
}

// DeriveStatus resolves the verdict from confidence and issue severities.
// Precedence, first match wins:
//  1. confidence < 0.6            -> FAIL (too uncertain to trust at all)
//  2. any critical issue          -> FAIL
//  3. any major issue             -> WARN
//  4. confidence < 0.8            -> WARN (clean but not confident enough)
//  5. otherwise                   -> PASS
//
// Checking confidence both before and after the severity checks rules out
// the confident-but-broken and unconfident-but-clean ambiguities.
func DeriveStatus(confidence float64, issues []model.ValidationIssue) model.ValidationStatus {
	if confidence < 0.6 {
		return model.StatusFail
	}
	for _, issue := range issues {
		if issue.Severity == model.IssueCritical {
			return model.StatusFail
		}
	}
	for _, issue := range issues {
		if issue.Severity == model.IssueMajor {
			return model.StatusWarn
		}
	}
	if confidence < 0.8 {
		return model.StatusWarn
	}
	return model.StatusPass
}

// Validate runs the single-clause validation.
func (v *Validator) Validate(ctx context.Context, in Input) (*model.ValidationResult, error) {
	start := time.Now()

	if strings.TrimSpace(in.ClauseText) == "" {
		return nil, &model.InvalidInputError{Field: "clause_text", Reason: "must not be empty"}
	}
	if err := model.ValidateRiskScore(in.RiskScore); err != nil {
		return nil, err
	}

	prompt := prompts.BuildValidationPrompt(in.ClauseText, in.ClauseCategory, in.RiskScore, in.RiskExplanation, in.DocumentContext)

	var resp parser.ValidationResponse
	if err := v.structured.CallJSON(ctx, prompt, &resp); err != nil {
		return nil, err
	}

	issues := make([]model.ValidationIssue, 0, len(resp.Issues))
	for _, issue := range resp.Issues {
		issues = append(issues, model.ValidationIssue{
			IssueType:    issue.IssueType,
			Severity:     issue.Severity,
			Description:  issue.Description,
			LocationHint: issue.LocationHint,
		})
	}

	return &model.ValidationResult{
		ID:               uuid.NewString(),
		ClauseText:       in.ClauseText,
		Status:           DeriveStatus(resp.Confidence, issues),
		Confidence:       resp.Confidence,
		Issues:           issues,
		Timestamp:        time.Now().UTC(),
		ValidationTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}

// ValidateBatch validates independent clauses concurrently with a bounded
// worker pool and returns results in input order regardless of completion
// order. The first generation failure cancels the remaining work and fails
// the batch; a broken validation must surface as an error, not a verdict.
func (v *Validator) ValidateBatch(ctx context.Context, inputs []Input) ([]*model.ValidationResult, error) {
	results := make([]*model.ValidationResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			result, err := v.Validate(ctx, in)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
