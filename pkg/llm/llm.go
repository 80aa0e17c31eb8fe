package llm

import "context"

// Client is the minimal contract against a hosted LLM: send text, get text
// back. Providers differ only in transport details, so orchestrators never
// see anything beyond this interface.
type Client interface {
	Chat(ctx context.Context, prompt string, opts ChatOptions) (string, error)
	Model() string
}

// ChatOptions carries the per-call generation settings. The structured
// client varies Temperature between its two attempts, so it is part of the
// call rather than the client.
type ChatOptions struct {
	Temperature float64
	MaxTokens   int
	JSONMode    bool
	System      string
}
