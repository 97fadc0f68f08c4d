// Package llm provides chat-completion clients for OpenAI-compatible and
// Anthropic endpoints, plus the tool definitions advertised to them.
package llm

import "context"

// CompletionRequest carries a single-turn completion: one system prompt,
// one user message, and the tools the model may call.
type CompletionRequest struct {
	System      string
	UserMessage string
	Tools       []ToolDefinition
}

// FunctionCall is a tool invocation requested by the model. Arguments is
// the raw JSON string from the provider, passed through untouched.
type FunctionCall struct {
	Name      string
	Arguments string
}

// CompletionResult holds the model output. When the model requested a tool
// call, FunctionCall is set and Text may be empty.
type CompletionResult struct {
	Text         string
	FunctionCall *FunctionCall
}

// CompletionClient defines the interface for chat-completion operations.
// Use this interface for dependency injection to enable mocking in tests.
type CompletionClient interface {
	// Complete performs a single non-streaming completion.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error)

	// Model returns the configured model name.
	Model() string
}

// Ensure both clients implement CompletionClient at compile time.
var (
	_ CompletionClient = (*OpenAIClient)(nil)
	_ CompletionClient = (*AnthropicClient)(nil)
)
