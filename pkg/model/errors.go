package model

import "fmt"

// InvalidInputError reports malformed caller input. It is returned before
// any LLM call is made and is never retried.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ValidateRiskScore checks that a caller-supplied risk score lies in [0,100].
func ValidateRiskScore(score float64) error {
	if score < 0 || score > 100 {
		return &InvalidInputError{Field: "risk_score", Reason: fmt.Sprintf("must be between 0 and 100, got %g", score)}
	}
	return nil
}
