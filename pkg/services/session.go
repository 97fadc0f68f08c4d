package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long Redis keeps a conversation's dedup set.
const sessionTTL = time.Hour

// SessionStore keeps the per-conversation set of normalized replies used
// for duplicate suppression. State is ephemeral and isolated per
// conversation ID; implementations are safe for concurrent use.
type SessionStore interface {
	// Replies returns the normalized replies recorded for a conversation.
	Replies(ctx context.Context, conversationID string) ([]string, error)

	// Remember records a normalized reply for a conversation.
	Remember(ctx context.Context, conversationID string, normalized string) error
}

type conversationState struct {
	mu      sync.Mutex
	replies []string
}

type lruSessionStore struct {
	cache *lru.Cache[string, *conversationState]
}

// NewLRUSessionStore creates an in-memory session store bounded to size
// conversations. Old conversations are evicted least-recently-used.
func NewLRUSessionStore(size int) (SessionStore, error) {
	cache, err := lru.New[string, *conversationState](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &lruSessionStore{cache: cache}, nil
}

var _ SessionStore = (*lruSessionStore)(nil)

func (s *lruSessionStore) Replies(_ context.Context, conversationID string) ([]string, error) {
	state, ok := s.cache.Get(conversationID)
	if !ok {
		return nil, nil
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	out := make([]string, len(state.replies))
	copy(out, state.replies)
	return out, nil
}

func (s *lruSessionStore) Remember(_ context.Context, conversationID string, normalized string) error {
	state, ok := s.cache.Get(conversationID)
	if !ok {
		state = &conversationState{}
		if prev, found, _ := s.cache.PeekOrAdd(conversationID, state); found {
			state = prev
		}
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.replies = append(state.replies, normalized)
	return nil
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a Redis-backed session store. Dedup sets
// expire after an hour of inactivity.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

var _ SessionStore = (*redisSessionStore)(nil)

func sessionKey(conversationID string) string {
	return "chat:session:" + conversationID
}

func (s *redisSessionStore) Replies(ctx context.Context, conversationID string) ([]string, error) {
	replies, err := s.client.SMembers(ctx, sessionKey(conversationID)).Result()
	if err != nil {
		return nil, fmt.Errorf("session read: %w", err)
	}
	return replies, nil
}

func (s *redisSessionStore) Remember(ctx context.Context, conversationID string, normalized string) error {
	key := sessionKey(conversationID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, normalized)
	pipe.Expire(ctx, key, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session write: %w", err)
	}
	return nil
}
