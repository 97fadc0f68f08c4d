package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUSessionStore_IsolatedPerConversation(t *testing.T) {
	store, err := NewLRUSessionStore(8)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Remember(ctx, "conv-a", "hello there"))
	require.NoError(t, store.Remember(ctx, "conv-a", "second reply"))
	require.NoError(t, store.Remember(ctx, "conv-b", "other conversation"))

	a, err := store.Replies(ctx, "conv-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"hello there", "second reply"}, a)

	b, err := store.Replies(ctx, "conv-b")
	require.NoError(t, err)
	assert.Equal(t, []string{"other conversation"}, b)

	empty, err := store.Replies(ctx, "conv-c")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLRUSessionStore_EvictsOldConversations(t *testing.T) {
	store, err := NewLRUSessionStore(2)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Remember(ctx, "conv-1", "one"))
	require.NoError(t, store.Remember(ctx, "conv-2", "two"))
	require.NoError(t, store.Remember(ctx, "conv-3", "three"))

	evicted, err := store.Replies(ctx, "conv-1")
	require.NoError(t, err)
	assert.Empty(t, evicted, "oldest conversation is dropped at capacity")
}

func TestLRUSessionStore_ConcurrentUse(t *testing.T) {
	store, err := NewLRUSessionStore(16)
	require.NoError(t, err)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = store.Remember(ctx, "shared", fmt.Sprintf("reply-%d-%d", n, j))
				_, _ = store.Replies(ctx, "shared")
			}
		}(i)
	}
	wg.Wait()

	replies, err := store.Replies(ctx, "shared")
	require.NoError(t, err)
	assert.Len(t, replies, 160)
}
