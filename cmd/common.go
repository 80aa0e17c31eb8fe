package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/clausecraft/clausecraft/pkg/llm"
)

func newSpinner() *spinner.Spinner {
	return spinner.New(spinner.CharSets[11], 100*time.Millisecond)
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}

func printError(msg string) {
	red := color.New(color.FgRed)
	red.Printf("✗ %s\n", msg)
}

func printLLMInfo(client llm.Client) {
	fmt.Printf("🧠 Model: %s\n", client.Model())
}

// initLLM builds the LLM client from server-side environment credentials.
// API keys never come from flags or request input.
func initLLM(provider, model string) (llm.Client, error) {
	s := newSpinner()
	s.Suffix = " Initializing AI client..."
	s.Start()

	client, err := llm.CreateFromEnv(provider, model)
	if err != nil {
		s.Stop()
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	s.Stop()
	printSuccess("AI client initialized")
	printLLMInfo(client)
	fmt.Println()
	return client, nil
}

func readFileArg(path, what string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", what, err)
	}
	return string(data), nil
}
