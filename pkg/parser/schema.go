package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// mustCompile compiles an inline JSON Schema at package init.
func mustCompile(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	schemaURL := fmt.Sprintf("https://clausecraft.schemas.local/%s.schema.json", name)
	if err := c.AddResource(schemaURL, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("load %s schema: %v", name, err))
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}

// checkSchema parses raw JSON and validates it against the compiled schema.
// Failures here mean the attempt is rejected and the structured client
// decides whether to retry; they are never surfaced past pkg/llm.
func checkSchema(schema *jsonschema.Schema, raw []byte) error {
	var decoded interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	if err := schema.Validate(decoded); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// truncate shortens s to at most max characters, marking the cut with an
// ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// clip shortens s to at most max characters with a hard cut.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
