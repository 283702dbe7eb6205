package domain

import "context"

// URLPair связывает ключ и нормализованный исходный URL.
type URLPair struct {
	Key         string
	OriginalURL string
}

// KeyAllocator выдает ключ, для которого isTaken возвращает false.
type KeyAllocator interface {
	Allocate(isTaken func(key string) bool) (string, error)
}

// KeyAllocatorFunc позволяет использовать функцию как KeyAllocator.
type KeyAllocatorFunc func(isTaken func(key string) bool) (string, error)

// Allocate вызывает f(isTaken).
func (f KeyAllocatorFunc) Allocate(isTaken func(key string) bool) (string, error) {
	return f(isTaken)
}

// URLStore хранит взаимно однозначное соответствие ключей и исходных URL.
type URLStore interface {
	GetOriginalURL(ctx context.Context, key string) (string, error)
	GetKey(ctx context.Context, originalURL string) (string, error)
	AddURL(ctx context.Context, originalURL string, allocator KeyAllocator) (string, error)
	GetURLs(ctx context.Context) ([]URLPair, error)
	IsAvailable(ctx context.Context) bool
}
