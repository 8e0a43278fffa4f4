package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for talking to a hosted model.
// Consumers build a Request and receive structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the returned Content is JSON that
	// has been validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Messages is the conversation. ErrorMind only ever sends a single
	// user message, but the slice keeps providers uniform.
	Messages []Message

	// Schema constrains the reply shape. When nil the Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 (deterministic) to 1.0.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "error-analysis".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel maps a friendly model name to a provider model ID.
// Names not in the map pass through unchanged, allowing direct IDs.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
