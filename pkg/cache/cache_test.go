package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly-app/gatherly/pkg/cache"
)

func TestGetSet(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[string](0)
	ctx := t.Context()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, m.Set(ctx, "k", "v", 0))
	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestExpiry(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[int](10 * time.Millisecond)
	ctx := t.Context()

	// Zero TTL uses the default; negative means never expire.
	require.NoError(t, m.Set(ctx, "short", 1, 0))
	require.NoError(t, m.Set(ctx, "forever", 2, -1))

	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "short")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	v, err := m.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestDeleteAndClear(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[int](0)
	ctx := t.Context()

	require.NoError(t, m.Set(ctx, "a", 1, 0))
	require.NoError(t, m.Set(ctx, "b", 2, 0))

	require.NoError(t, m.Delete(ctx, "a"))
	_, err := m.Get(ctx, "a")
	assert.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, m.Clear(ctx))
	_, err = m.Get(ctx, "b")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestGetOrLoad(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[string](time.Minute)
	ctx := t.Context()
	var loads atomic.Int64

	load := func(context.Context) (string, error) {
		loads.Add(1)
		return "loaded", nil
	}

	v, err := m.GetOrLoad(ctx, "k", load)
	require.NoError(t, err)
	assert.Equal(t, "loaded", v)

	// Second call hits the cache.
	_, err = m.GetOrLoad(ctx, "k", load)
	require.NoError(t, err)
	assert.EqualValues(t, 1, loads.Load())
}

func TestGetOrLoadSharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[int](time.Minute)
	ctx := t.Context()

	var loads atomic.Int64
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		loads.Add(1)
		<-release
		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := m.GetOrLoad(ctx, "k", load)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, loads.Load())
	for _, v := range results {
		assert.Equal(t, 42, v)
	}
}

func TestGetOrLoadDoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	m := cache.NewMemory[string](time.Minute)
	ctx := t.Context()
	var loads atomic.Int64

	failing := func(context.Context) (string, error) {
		loads.Add(1)
		return "", errors.New("remote down")
	}

	_, err := m.GetOrLoad(ctx, "k", failing)
	require.Error(t, err)

	_, err = m.GetOrLoad(ctx, "k", failing)
	require.Error(t, err)
	assert.EqualValues(t, 2, loads.Load())
}
