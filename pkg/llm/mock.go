package llm

import "context"

// MockCompletionClient is a configurable mock for testing completion
// behavior. Set the function field to control responses in tests.
type MockCompletionClient struct {
	// CompleteFunc is called when Complete is invoked.
	// If nil, returns an empty result and nil error.
	CompleteFunc func(ctx context.Context, req *CompletionRequest) (*CompletionResult, error)

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// Call tracking for verification
	CompleteCalls int
	LastRequest   *CompletionRequest
}

// NewMockCompletionClient creates a new mock with sensible defaults.
func NewMockCompletionClient() *MockCompletionClient {
	return &MockCompletionClient{ModelName: "mock-model"}
}

// Complete implements CompletionClient.
func (m *MockCompletionClient) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error) {
	m.CompleteCalls++
	m.LastRequest = req
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, req)
	}
	return &CompletionResult{}, nil
}

// Model implements CompletionClient.
func (m *MockCompletionClient) Model() string {
	return m.ModelName
}

var _ CompletionClient = (*MockCompletionClient)(nil)
