package kv

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedStore holds Get until release is closed.
type gatedStore struct {
	*MemoryStore
	release chan struct{}
	getErr  error
}

func newGatedStore() *gatedStore {
	return &gatedStore{MemoryStore: NewMemoryStore(), release: make(chan struct{})}
}

func (s *gatedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	<-s.release
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	return s.MemoryStore.Get(ctx, key)
}

func seed(t *testing.T, s Store, key string, v any) {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), key, raw))
}

func Test_OnLoadWithoutWrites_ShouldApplyStoredValue(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	seed(t, store, "expenses", []string{"a", "b"})

	v := New(ctx, store, "expenses", []string{})
	require.NoError(t, v.WaitLoaded(ctx))

	assert.Equal(t, []string{"a", "b"}, v.Get())
}

func Test_OnWriteBeforeLoadResolves_ShouldDiscardLateLoad(t *testing.T) {
	ctx := context.Background()
	store := newGatedStore()
	seed(t, store.MemoryStore, "expenses", []string{"stale"})

	v := New(ctx, store, "expenses", []string{})
	assert.Equal(t, []string{}, v.Get())

	require.NoError(t, v.Set(ctx, []string{"fresh"}))
	close(store.release)
	require.NoError(t, v.WaitLoaded(ctx))

	assert.Equal(t, []string{"fresh"}, v.Get())
}

func Test_OnReadFailure_ShouldKeepDefault(t *testing.T) {
	ctx := context.Background()
	store := newGatedStore()
	store.getErr = errors.New("store unavailable")
	close(store.release)

	v := New(ctx, store, "count", 7)
	require.NoError(t, v.WaitLoaded(ctx))

	assert.Equal(t, 7, v.Get())
}

func Test_OnConcurrentUpdates_ShouldApplyEveryUpdater(t *testing.T) {
	ctx := context.Background()
	v := New(ctx, NewMemoryStore(), "count", 0)
	require.NoError(t, v.WaitLoaded(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = v.Update(ctx, func(cur int) int { return cur + 1 })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, v.Get())
	raw, ok, err := v.store.Get(ctx, "count")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "50", string(raw))
}

func Test_OnWrite_ShouldNotifySubscribers(t *testing.T) {
	ctx := context.Background()
	v := New(ctx, NewMemoryStore(), "note", "")
	require.NoError(t, v.WaitLoaded(ctx))

	var seen []string
	cancel := v.Subscribe(func(s string) { seen = append(seen, s) })
	require.NoError(t, v.Set(ctx, "one"))
	require.NoError(t, v.Update(ctx, func(cur string) string { return cur + "+two" }))
	cancel()
	require.NoError(t, v.Set(ctx, "three"))

	assert.Equal(t, []string{"one", "one+two"}, seen)
}

func Test_OnDelete_ShouldResetToDefaultAndRemoveKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	v := New(ctx, store, "note", "default")
	require.NoError(t, v.WaitLoaded(ctx))
	require.NoError(t, v.Set(ctx, "changed"))

	require.NoError(t, v.Delete(ctx))

	assert.Equal(t, "default", v.Get())
	_, ok, err := store.Get(ctx, "note")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_OnSubscriberWriteDuringLoad_ShouldDeliverWriteLast(t *testing.T) {
	ctx := context.Background()
	store := newGatedStore()
	seed(t, store.MemoryStore, "note", "stored")

	v := New(ctx, store, "note", "")
	views := make(map[int]string)
	for i := 0; i < 2; i++ {
		i := i
		v.Subscribe(func(s string) {
			views[i] = s
			if s == "stored" {
				assert.NoError(t, v.Set(ctx, "written"))
			}
		})
	}

	close(store.release)
	require.NoError(t, v.WaitLoaded(ctx))

	assert.Equal(t, "written", v.Get())
	assert.Equal(t, map[int]string{0: "written", 1: "written"}, views)
}
