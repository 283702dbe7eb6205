package domain

import (
	"context"
	"fmt"
)

// A URLStoreDelegate allows to extend the behavior of the test double for negative scenarios
// for URLStore consumers.
type URLStoreDelegate struct {
	GetOriginalURLFunc func(ctx context.Context, key string) (string, error)
	GetKeyFunc         func(ctx context.Context, originalURL string) (string, error)
	AddURLFunc         func(ctx context.Context, originalURL string, allocator KeyAllocator) (string, error)
	GetURLsFunc        func(ctx context.Context) ([]URLPair, error)
	IsAvailableFunc    func(ctx context.Context) bool
	delegate           URLStore
}

func NewURLStoreDelegate(delegate URLStore) *URLStoreDelegate {
	return &URLStoreDelegate{delegate: delegate}
}

func (u *URLStoreDelegate) GetOriginalURL(ctx context.Context, key string) (string, error) {
	if u.GetOriginalURLFunc != nil {
		return u.GetOriginalURLFunc(ctx, key)
	}
	url, err := u.delegate.GetOriginalURL(ctx, key)

	if err != nil {
		return "", fmt.Errorf("get url from store delegate: %w", err)
	}

	return url, nil
}

func (u *URLStoreDelegate) GetKey(ctx context.Context, originalURL string) (string, error) {
	if u.GetKeyFunc != nil {
		return u.GetKeyFunc(ctx, originalURL)
	}
	key, err := u.delegate.GetKey(ctx, originalURL)

	if err != nil {
		return "", fmt.Errorf("get key from store delegate: %w", err)
	}

	return key, nil
}

func (u *URLStoreDelegate) AddURL(ctx context.Context, originalURL string, allocator KeyAllocator) (string, error) {
	if u.AddURLFunc != nil {
		return u.AddURLFunc(ctx, originalURL, allocator)
	}
	key, err := u.delegate.AddURL(ctx, originalURL, allocator)

	if err != nil {
		return "", fmt.Errorf("add url to store delegate: %w", err)
	}

	return key, nil
}

func (u *URLStoreDelegate) GetURLs(ctx context.Context) ([]URLPair, error) {
	if u.GetURLsFunc != nil {
		return u.GetURLsFunc(ctx)
	}

	return u.delegate.GetURLs(ctx)
}

func (u *URLStoreDelegate) IsAvailable(ctx context.Context) bool {
	if u.IsAvailableFunc != nil {
		return u.IsAvailableFunc(ctx)
	}

	return u.delegate.IsAvailable(ctx)
}
