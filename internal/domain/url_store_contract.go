package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// URLStoreContract описывает поведение, обязательное для любой реализации URLStore.
type URLStoreContract struct {
	NewURLStore func() (URLStore, func())
}

func fixedKey(key string) KeyAllocator {
	return KeyAllocatorFunc(func(isTaken func(string) bool) (string, error) {
		if isTaken(key) {
			return "", errors.New("key is taken")
		}
		return key, nil
	})
}

// Test запускает проверки контракта.
func (c URLStoreContract) Test(t *testing.T) {
	t.Run("add new url", func(t *testing.T) {
		const (
			key         = "abc"
			originalURL = "example.com"
		)
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()

		got, err := sut.AddURL(ctx, originalURL, fixedKey(key))

		require.NoError(t, err)
		assert.Equal(t, key, got)

		url, err := sut.GetOriginalURL(ctx, key)

		require.NoError(t, err)
		assert.Equal(t, originalURL, url)

		gotKey, err := sut.GetKey(ctx, originalURL)

		require.NoError(t, err)
		assert.Equal(t, key, gotKey)
	})

	t.Run("add existing url", func(t *testing.T) {
		const originalURL = "example.com"
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()
		_, err := sut.AddURL(ctx, originalURL, fixedKey("abc"))
		require.NoError(t, err)

		_, err = sut.AddURL(ctx, originalURL, fixedKey("xyz"))

		var urlExistsErr *OriginalURLExistsError
		require.ErrorAs(t, err, &urlExistsErr)
		assert.Equal(t, "abc", urlExistsErr.GetKey())

		_, err = sut.GetOriginalURL(ctx, "xyz")
		assert.ErrorIs(t, err, ErrOriginalURLNotFound)
	})

	t.Run("original url not found by key", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)

		_, err := sut.GetOriginalURL(context.Background(), "123")
		assert.ErrorIs(t, err, ErrOriginalURLNotFound)
	})

	t.Run("key not found by original url", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)

		_, err := sut.GetKey(context.Background(), "example.com")
		assert.ErrorIs(t, err, ErrOriginalURLNotFound)
	})

	t.Run("allocator sees keys and original urls as taken", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()
		_, err := sut.AddURL(ctx, "abc", fixedKey("k1"))
		require.NoError(t, err)

		var takenKey, takenURL, free bool
		_, err = sut.AddURL(ctx, "other.com", KeyAllocatorFunc(func(isTaken func(string) bool) (string, error) {
			takenKey = isTaken("k1")
			takenURL = isTaken("abc")
			free = !isTaken("k2")
			return "k2", nil
		}))

		require.NoError(t, err)
		assert.True(t, takenKey)
		assert.True(t, takenURL)
		assert.True(t, free)
	})

	t.Run("failed allocation leaves store unchanged", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()
		allocErr := errors.New("exhausted")

		_, err := sut.AddURL(ctx, "example.com", KeyAllocatorFunc(func(func(string) bool) (string, error) {
			return "", allocErr
		}))

		assert.ErrorIs(t, err, allocErr)
		_, err = sut.GetKey(ctx, "example.com")
		assert.ErrorIs(t, err, ErrOriginalURLNotFound)
		pairs, err := sut.GetURLs(ctx)
		require.NoError(t, err)
		assert.Empty(t, pairs)
	})

	t.Run("get urls sorted by key", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()
		_, err := sut.AddURL(ctx, "b.com", fixedKey("b"))
		require.NoError(t, err)
		_, err = sut.AddURL(ctx, "a.com", fixedKey("a"))
		require.NoError(t, err)

		got, err := sut.GetURLs(ctx)

		require.NoError(t, err)
		want := []URLPair{
			{Key: "a", OriginalURL: "a.com"},
			{Key: "b", OriginalURL: "b.com"},
		}
		assert.Equal(t, want, got)
	})

	t.Run("concurrent adds of same url yield one key", func(t *testing.T) {
		const workers = 16
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)
		ctx := context.Background()
		keys := make([]string, workers)
		wg := sync.WaitGroup{}

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key, err := sut.AddURL(ctx, "example.com", fixedKey(fmt.Sprintf("k%d", i)))
				var urlExistsErr *OriginalURLExistsError
				if errors.As(err, &urlExistsErr) {
					key = urlExistsErr.GetKey()
				}
				keys[i] = key
			}(i)
		}
		wg.Wait()

		for i := 1; i < workers; i++ {
			assert.Equal(t, keys[0], keys[i])
		}
		pairs, err := sut.GetURLs(ctx)
		require.NoError(t, err)
		assert.Len(t, pairs, 1)
	})

	t.Run("store is available", func(t *testing.T) {
		sut, tearDown := c.NewURLStore()
		t.Cleanup(tearDown)

		got := sut.IsAvailable(context.Background())
		assert.True(t, got)
	})
}
