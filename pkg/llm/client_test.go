package llm

import (
	"context"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewToolDefinition(t *testing.T) {
	def := NewToolDefinition(
		"lookup_wine_pairing",
		"Look up a pairing",
		map[string]ParameterProperty{
			"dish": {Type: "string", Description: "dish name"},
		},
		[]string{"dish"},
	)

	assert.Equal(t, "lookup_wine_pairing", def.Name)
	assert.Equal(t, "object", def.Parameters["type"])
	assert.Equal(t, []string{"dish"}, def.Parameters["required"])

	props, ok := def.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	dish, ok := props["dish"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", dish["type"])
}

func TestChatTools_AdvertisesWinePairingLookup(t *testing.T) {
	tools := ChatTools()
	require.Len(t, tools, 1)
	assert.Equal(t, "lookup_wine_pairing", tools[0].Name)
}

func TestBuildOpenAITools(t *testing.T) {
	result := buildOpenAITools(nil)
	assert.Nil(t, result)

	result = buildOpenAITools(ChatTools())
	require.Len(t, result, 1)
	assert.Equal(t, openai.ToolTypeFunction, result[0].Type)
	assert.Equal(t, "lookup_wine_pairing", result[0].Function.Name)
	assert.NotNil(t, result[0].Function.Parameters)
}

func TestBuildAnthropicTools(t *testing.T) {
	result := buildAnthropicTools(nil)
	assert.Nil(t, result)

	result = buildAnthropicTools(ChatTools())
	require.Len(t, result, 1)
	assert.Equal(t, "lookup_wine_pairing", result[0].Name)
}

func TestNewOpenAIClient_Validation(t *testing.T) {
	logger := zap.NewNop()

	_, err := NewOpenAIClient(&OpenAIConfig{Model: "gpt-3.5-turbo"}, logger)
	assert.Error(t, err)

	_, err = NewOpenAIClient(&OpenAIConfig{APIKey: "sk-test"}, logger)
	assert.Error(t, err)

	client, err := NewOpenAIClient(&OpenAIConfig{APIKey: "sk-test", Model: "gpt-3.5-turbo"}, logger)
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", client.Model())
}

func TestNewAnthropicClient_Validation(t *testing.T) {
	logger := zap.NewNop()

	_, err := NewAnthropicClient(&AnthropicConfig{Model: "claude-3-5-haiku-latest"}, logger)
	assert.Error(t, err)

	client, err := NewAnthropicClient(&AnthropicConfig{APIKey: "sk-test", Model: "claude-3-5-haiku-latest"}, logger)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", client.Model())
}

func TestMockCompletionClient_Defaults(t *testing.T) {
	mock := NewMockCompletionClient()

	result, err := mock.Complete(context.Background(), &CompletionRequest{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Empty(t, result.Text)
	assert.Nil(t, result.FunctionCall)
	assert.Equal(t, 1, mock.CompleteCalls)
	assert.Equal(t, "hi", mock.LastRequest.UserMessage)
	assert.Equal(t, "mock-model", mock.Model())
}
