package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/nestjam/url-shortener/internal/domain"
)

// InmemoryURLStore хранит соответствие ключей и исходных URL в двух словарях,
// которые изменяются только вместе под одной блокировкой.
type InmemoryURLStore struct {
	keyToURL map[string]string
	urlToKey map[string]string
	mu       sync.RWMutex
}

func New() *InmemoryURLStore {
	return &InmemoryURLStore{
		keyToURL: make(map[string]string),
		urlToKey: make(map[string]string),
	}
}

func (u *InmemoryURLStore) GetOriginalURL(ctx context.Context, key string) (string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	originalURL, ok := u.keyToURL[key]
	if !ok {
		return "", domain.ErrOriginalURLNotFound
	}

	return originalURL, nil
}

func (u *InmemoryURLStore) GetKey(ctx context.Context, originalURL string) (string, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	key, ok := u.urlToKey[originalURL]
	if !ok {
		return "", domain.ErrOriginalURLNotFound
	}

	return key, nil
}

// AddURL выдает ключ исходному URL. Проверка занятости ключа и вставка в оба словаря
// выполняются в одной критической секции.
func (u *InmemoryURLStore) AddURL(ctx context.Context, originalURL string, allocator domain.KeyAllocator) (string, error) {
	const op = "add url"

	u.mu.Lock()
	defer u.mu.Unlock()

	if key, ok := u.urlToKey[originalURL]; ok {
		return "", domain.NewOriginalURLExistsError(key, nil)
	}

	key, err := allocator.Allocate(u.isTaken)
	if err != nil {
		return "", errors.Wrap(err, op)
	}

	u.keyToURL[key] = originalURL
	u.urlToKey[originalURL] = key
	return key, nil
}

// isTaken проверяет кандидата по обоим словарям. Вызывается под блокировкой.
func (u *InmemoryURLStore) isTaken(candidate string) bool {
	if _, ok := u.keyToURL[candidate]; ok {
		return true
	}
	_, ok := u.urlToKey[candidate]
	return ok
}

func (u *InmemoryURLStore) GetURLs(ctx context.Context) ([]domain.URLPair, error) {
	u.mu.RLock()
	pairs := make([]domain.URLPair, 0, len(u.keyToURL))
	for key, originalURL := range u.keyToURL {
		pairs = append(pairs, domain.URLPair{
			Key:         key,
			OriginalURL: originalURL,
		})
	}
	u.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	return pairs, nil
}

func (u *InmemoryURLStore) IsAvailable(ctx context.Context) bool {
	return true
}
