package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over hosted generative-language APIs.
// Exactly one network round trip happens per Generate call; callers that
// need a bounded wait wrap the provider with WithTimeout.
type Provider interface {
	// Generate sends one request to the model. When the request carries a
	// Schema, the provider asks the backend for structured JSON output and
	// re-validates the reply against the same schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes a single model invocation.
type Request struct {
	// System is the persona/system instruction. Optional.
	System string

	// Messages is the ordered conversation. Single-turn operations send
	// one user message; the tutor chat sends the whole prior transcript.
	Messages []Message

	// Schema constrains the reply to structured JSON. Nil means free text.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0,1]; zero value means provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role Role
	Text string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema declares the JSON shape a structured reply must match.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "quiz-questions").
	// Used as the schema name for providers that require one and as the
	// cache key for the compiled validator.
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a plain map.
	Definition map[string]any
}

// Response is the model's reply.
type Response struct {
	// Content is the reply body. Structured requests yield the validated
	// JSON document; free-text requests yield the raw text bytes.
	Content json.RawMessage

	// Usage reports token counts when the backend provides them.
	Usage Usage

	// Model is the concrete model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the reply as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}
