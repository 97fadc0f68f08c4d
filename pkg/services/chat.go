package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tandem-ai/tandem-engine/pkg/llm"
	"github.com/tandem-ai/tandem-engine/pkg/models"
)

const (
	// placeholderReply is returned when no completion credential is
	// configured, so the widget still works in demo deployments.
	placeholderReply = "Hi! I’m your demo chatbot. Add API keys to enable real responses."

	// toolFailureApology covers unknown tools and unusable tool arguments.
	toolFailureApology = "Sorry, I couldn't look that up just now. Could you try rephrasing?"
)

// ChatRequest is one turn of a widget conversation. RestaurantID and
// RestaurantSlug are interchangeable references; ConversationID is minted
// server-side when absent.
type ChatRequest struct {
	Message        string `json:"message"`
	RestaurantID   string `json:"restaurant_id,omitempty"`
	RestaurantSlug string `json:"restaurant_slug,omitempty"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// Reference returns whichever restaurant reference the caller supplied.
func (r *ChatRequest) Reference() string {
	if r.RestaurantID != "" {
		return r.RestaurantID
	}
	return r.RestaurantSlug
}

// ChatService runs the resolve, fetch, assemble, complete, dispatch,
// normalize pipeline for one message.
type ChatService interface {
	Chat(ctx context.Context, req *ChatRequest) (*models.ChatReply, error)
}

type chatService struct {
	resolver  RestaurantResolver
	fetcher   KnowledgeFetcher
	assembler PromptAssembler
	// completions is nil when no credential is configured; the pipeline
	// then substitutes placeholderReply instead of calling out.
	completions llm.CompletionClient
	dispatcher  ToolDispatcher
	normalizer  ReplyNormalizer
	timeout     time.Duration
	logger      *zap.Logger
}

// NewChatService wires the pipeline. timeout bounds each remote call.
func NewChatService(
	resolver RestaurantResolver,
	fetcher KnowledgeFetcher,
	assembler PromptAssembler,
	completions llm.CompletionClient,
	dispatcher ToolDispatcher,
	normalizer ReplyNormalizer,
	timeout time.Duration,
	logger *zap.Logger,
) ChatService {
	return &chatService{
		resolver:    resolver,
		fetcher:     fetcher,
		assembler:   assembler,
		completions: completions,
		dispatcher:  dispatcher,
		normalizer:  normalizer,
		timeout:     timeout,
		logger:      logger.Named("chat"),
	}
}

var _ ChatService = (*chatService)(nil)

func (s *chatService) Chat(ctx context.Context, req *ChatRequest) (*models.ChatReply, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	var knowledge *models.Knowledge
	if ref := req.Reference(); ref != "" {
		id, err := s.resolve(ctx, ref)
		if err != nil {
			return nil, err
		}

		knowledge, err = s.fetch(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	system := s.assembler.Assemble(knowledge)

	text, err := s.complete(ctx, req.Message, system)
	if err != nil {
		return nil, err
	}

	normalized, meta := s.normalizer.Normalize(ctx, conversationID, req.Message, text, knowledge)

	reply := &models.ChatReply{
		Reply:          normalized,
		ConversationID: conversationID,
	}
	if meta.HasFlags() {
		reply.Meta = meta
	}
	return reply, nil
}

func (s *chatService) resolve(ctx context.Context, ref string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.resolver.Resolve(ctx, ref)
}

func (s *chatService) fetch(ctx context.Context, id string) (*models.Knowledge, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.fetcher.Fetch(ctx, id)
}

func (s *chatService) complete(ctx context.Context, message, system string) (string, error) {
	if s.completions == nil {
		return placeholderReply, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.completions.Complete(callCtx, &llm.CompletionRequest{
		System:      system,
		UserMessage: message,
		Tools:       llm.ChatTools(),
	})
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}

	if result.FunctionCall == nil {
		return result.Text, nil
	}

	s.logger.Debug("model requested tool",
		zap.String("tool", result.FunctionCall.Name))

	dispatchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, ok, err := s.dispatcher.Dispatch(dispatchCtx, result.FunctionCall.Name, result.FunctionCall.Arguments)
	if err != nil {
		return "", fmt.Errorf("dispatch: %w", err)
	}
	if !ok {
		return toolFailureApology, nil
	}
	return text, nil
}
