package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// ResponseValidator decodes a candidate JSON payload into a typed response,
// rejecting it when required fields are missing, types are wrong, or values
// fall outside their documented ranges.
type ResponseValidator interface {
	UnmarshalValidate(raw []byte) error
}

// StructuredOptions configures the two-attempt JSON contract for one call
// site. RetryTemperature must be lower than FirstTemperature so the retry
// is more deterministic.
type StructuredOptions struct {
	FirstTemperature float64
	RetryTemperature float64
	MaxTokens        int
	System           string
}

// Structured wraps a Client with a JSON-output contract: at most two
// attempts per call, the second at a lower sampling temperature, and no
// backoff or queueing beyond that.
type Structured struct {
	client Client
	opts   StructuredOptions
}

func NewStructured(client Client, opts StructuredOptions) *Structured {
	return &Structured{client: client, opts: opts}
}

// Attempt records one failed generation attempt for diagnostics.
type Attempt struct {
	Temperature float64
	RawResponse string
	Err         error
}

// GenerationError means both attempts (first + lowered-temperature retry)
// failed to produce schema-valid JSON. It carries each attempt's raw
// response so the failure is diagnosable.
type GenerationError struct {
	Attempts []Attempt
}

func (e *GenerationError) Error() string {
	last := e.Attempts[len(e.Attempts)-1]
	return fmt.Sprintf("LLM generation failed after %d attempts: %v", len(e.Attempts), last.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Attempts[len(e.Attempts)-1].Err
}

// CallJSON issues prompt and decodes the response into `into`. A transport
// error, timeout, or schema-invalid response consumes one attempt; after
// the first failure the call is retried exactly once at the lower
// temperature, then fails with *GenerationError.
func (s *Structured) CallJSON(ctx context.Context, prompt string, into ResponseValidator) error {
	temperatures := []float64{s.opts.FirstTemperature, s.opts.RetryTemperature}

	var attempts []Attempt
	for _, temperature := range temperatures {
		raw, err := s.client.Chat(ctx, prompt, ChatOptions{
			Temperature: temperature,
			MaxTokens:   s.opts.MaxTokens,
			JSONMode:    true,
			System:      s.opts.System,
		})
		if err == nil {
			err = decodeCandidates(raw, into)
			if err == nil {
				return nil
			}
		}
		attempts = append(attempts, Attempt{Temperature: temperature, RawResponse: raw, Err: err})
	}
	return &GenerationError{Attempts: attempts}
}

// decodeCandidates tries progressively more forgiving readings of the raw
// response, all within the same attempt: the fence-stripped text as-is, a
// truncation repair of it, the outermost {...} block, and a repair of that
// block. Validation failures never trigger extra heuristics beyond these.
func decodeCandidates(raw string, into ResponseValidator) error {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return fmt.Errorf("empty response")
	}

	candidates := []string{cleaned, repairJSON(cleaned)}
	if extracted, ok := extractObject(cleaned); ok {
		candidates = append(candidates, extracted, repairJSON(extracted))
	}

	var lastErr error
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if err := into.UnmarshalValidate([]byte(candidate)); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n|```")

// stripFences removes markdown code fences such as ```json ... ``` so JSON can be parsed
func stripFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// extractObject returns the substring between the first '{' and the last
// '}', for responses where the model wrapped the JSON in prose.
func extractObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// repairJSON closes open strings, brackets, and braces so a truncated
// response still has a chance of parsing.
func repairJSON(text string) string {
	openBraces := strings.Count(text, "{") - strings.Count(text, "}")
	openBrackets := strings.Count(text, "[") - strings.Count(text, "]")

	inString := false
	escaped := false
	for _, r := range text {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		}
	}

	repaired := text
	if inString {
		repaired += `"`
	}
	if openBrackets > 0 {
		repaired += strings.Repeat("]", openBrackets)
	}
	if openBraces > 0 {
		repaired += strings.Repeat("}", openBraces)
	}
	return repaired
}
