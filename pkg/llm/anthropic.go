package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/apperrors"
)

const anthropicMaxTokens = 1024

// AnthropicClient provides access to the Anthropic Messages API with the
// same single-turn contract as the OpenAI client.
type AnthropicClient struct {
	client *anthropic.Client
	model  string
	logger *zap.Logger
}

// AnthropicConfig holds configuration for creating an Anthropic client.
type AnthropicConfig struct {
	APIKey string
	Model  string
}

// NewAnthropicClient creates a client for the Anthropic Messages API.
func NewAnthropicClient(cfg *AnthropicConfig, logger *zap.Logger) (*AnthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// Complete performs a single completion with the request's tools advertised.
func (c *AnthropicClient) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResult, error) {
	c.logger.Debug("completion request",
		zap.String("model", c.model),
		zap.Int("system_len", len(req.System)),
		zap.Int("tools", len(req.Tools)))

	start := time.Now()

	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(c.model),
		System:    req.System,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(req.UserMessage),
		},
		Tools: buildAnthropicTools(req.Tools),
	})
	if err != nil {
		c.logger.Error("completion request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: chat completion: %v", apperrors.ErrUpstream, err)
	}

	result := &CompletionResult{}
	for _, block := range resp.Content {
		switch block.Type {
		case anthropic.MessagesContentTypeText:
			if result.Text == "" && block.Text != nil {
				result.Text = *block.Text
			}
		case anthropic.MessagesContentTypeToolUse:
			if result.FunctionCall == nil && block.MessageContentToolUse != nil {
				result.FunctionCall = &FunctionCall{
					Name:      block.MessageContentToolUse.Name,
					Arguments: string(block.MessageContentToolUse.Input),
				}
			}
		}
	}

	c.logger.Info("completion request completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("tool_call", result.FunctionCall != nil))

	return result, nil
}

// Model returns the configured model name.
func (c *AnthropicClient) Model() string {
	return c.model
}

// buildAnthropicTools converts our tool definitions to Anthropic format.
func buildAnthropicTools(tools []ToolDefinition) []anthropic.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}

	result := make([]anthropic.ToolDefinition, len(tools))
	for i, tool := range tools {
		result[i] = anthropic.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Parameters,
		}
	}
	return result
}
