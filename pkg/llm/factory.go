package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// Factory creates LLM clients based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateLLM creates an LLM client based on provider and configuration.
// The api_key always comes from server-side configuration; it is never
// accepted from request input.
func (f *Factory) CreateLLM(provider Provider, config map[string]string) (Client, error) {
	apiKey := config["api_key"]

	switch provider {
	case ProviderGemini:
		if apiKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		if model := config["model"]; model != "" {
			return NewGeminiWithModel(apiKey, model), nil
		}
		return NewGemini(apiKey), nil

	case ProviderClaude:
		if apiKey == "" {
			return nil, fmt.Errorf("Claude API key is required")
		}
		if model := config["model"]; model != "" {
			return NewClaudeWithModel(apiKey, model), nil
		}
		return NewClaude(apiKey), nil

	case ProviderOpenAI:
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		if model := config["model"]; model != "" {
			return NewOpenAIWithModel(apiKey, model), nil
		}
		return NewOpenAI(apiKey), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderGemini, ProviderClaude, ProviderOpenAI}
}

// CreateFromEnv creates an LLM client from environment variables.
// providerOverride and modelOverride take precedence over LLM_PROVIDER and
// the per-provider model variables.
func CreateFromEnv(providerOverride, modelOverride string) (Client, error) {
	provider := strings.ToLower(providerOverride)
	if provider == "" {
		provider = strings.ToLower(os.Getenv("LLM_PROVIDER"))
	}

	factory := NewFactory()

	switch provider {
	case "gemini", "":
		// Default to Gemini
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("GEMINI_MODEL")
		}
		return factory.CreateLLM(ProviderGemini, map[string]string{"api_key": apiKey, "model": model})

	case "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		return factory.CreateLLM(ProviderClaude, map[string]string{"api_key": apiKey, "model": model})

	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		return factory.CreateLLM(ProviderOpenAI, map[string]string{"api_key": apiKey, "model": model})

	default:
		return nil, fmt.Errorf("unsupported provider: %s (supported: gemini, claude, openai)", provider)
	}
}
