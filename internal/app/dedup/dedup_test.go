package dedup

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreFirstSeen(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	first, err := store.FirstSeen(ctx, "event:Ev1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.FirstSeen(ctx, "event:Ev1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := store.FirstSeen(ctx, "event:Ev2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	first, _ := store.FirstSeen(ctx, "k")
	assert.True(t, first)

	now = now.Add(59 * time.Second)
	again, _ := store.FirstSeen(ctx, "k")
	assert.False(t, again)

	now = now.Add(time.Second)
	expired, _ := store.FirstSeen(ctx, "k")
	assert.True(t, expired)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreConcurrentCallers(t *testing.T) {
	store := NewMemoryStore(time.Minute)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.FirstSeen(context.Background(), "same"); ok {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestNewWithoutURLUsesMemory(t *testing.T) {
	store, closeFn, err := New(context.Background(), "", time.Minute)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)
	assert.NoError(t, closeFn())
}

func TestNewRejectsBadURL(t *testing.T) {
	_, _, err := New(context.Background(), "http://not-redis", time.Minute)
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	store, closeFn, err := New(context.Background(), url, time.Minute)
	require.NoError(t, err)
	defer closeFn()

	key := fmt.Sprintf("test:%s", uuid.NewString())
	first, err := store.FirstSeen(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := store.FirstSeen(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, again)
}
