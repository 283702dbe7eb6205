package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nestjam/url-shortener/internal/domain"
	"github.com/nestjam/url-shortener/internal/shortener"
)

// DefaultDomain домен сокращенных ссылок по умолчанию. Хранится как есть, без нормализации.
const DefaultDomain = "http://fkt.in"

// ShortenerService выполняет сокращение ссылок и получение исходной ссылки по сокращенной.
type ShortenerService struct {
	store     domain.URLStore
	allocator *shortener.Allocator
	logger    *zap.Logger
	domain    string
}

// settings накапливает значения опций до создания сервиса.
type settings struct {
	logger    *zap.Logger
	rnd       shortener.Rand
	domain    string
	keyLength int
}

// Option определяет опцию настройки сервиса.
type Option func(*settings)

// New создает сервис сокращения ссылок.
func New(store domain.URLStore, options ...Option) *ShortenerService {
	opts := settings{
		logger: zap.NewNop(),
		domain: DefaultDomain,
	}

	for _, opt := range options {
		opt(&opts)
	}

	if opts.rnd == nil {
		opts.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &ShortenerService{
		store:     store,
		allocator: shortener.NewAllocator(opts.keyLength, opts.rnd),
		logger:    opts.logger,
		domain:    opts.domain,
	}
}

// Domain возвращает домен сокращенных ссылок.
func (s *ShortenerService) Domain() string {
	return s.domain
}

// KeyLength возвращает длину ключа сокращенной ссылки.
func (s *ShortenerService) KeyLength() int {
	return s.allocator.Length()
}

// ShortenURL сокращает исходную ссылку. Повторное сокращение ссылки с тем же
// нормализованным видом возвращает ту же сокращенную ссылку.
// Ошибка возвращается только при сбое хранилища или исчерпании попыток выдать ключ.
func (s *ShortenerService) ShortenURL(ctx context.Context, longURL string) (domain.Result, error) {
	const op = "shorten url"

	if !domain.ValidateURL(longURL) {
		return domain.Fail(domain.StatusInvalidURL), nil
	}

	originalURL := domain.SanitizeURL(longURL)
	key, err := s.store.AddURL(ctx, originalURL, s.allocator)

	var originalURLAlreadyExists *domain.OriginalURLExistsError
	if errors.As(err, &originalURLAlreadyExists) {
		return domain.OK(s.shortURL(originalURLAlreadyExists.GetKey())), nil
	}
	if errors.Is(err, shortener.ErrKeyAllocationExhausted) {
		s.logger.Error("Key space exhausted",
			zap.String("url", originalURL),
			zap.Int("key_length", s.allocator.Length()),
			zap.Error(err))
	}
	if err != nil {
		return domain.Result{}, errors.Wrap(err, op)
	}

	s.logger.Debug("New key", zap.String("key", key), zap.String("url", originalURL))
	return domain.OK(s.shortURL(key)), nil
}

// ShortenURLs сокращает набор исходных ссылок. Обработка прекращается на первой ошибке.
func (s *ShortenerService) ShortenURLs(ctx context.Context, longURLs []string) ([]domain.Result, error) {
	const op = "shorten urls"

	results := make([]domain.Result, len(longURLs))
	for i := 0; i < len(longURLs); i++ {
		res, err := s.ShortenURL(ctx, longURLs[i])
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		results[i] = res
	}

	return results, nil
}

// ExpandURL возвращает нормализованную исходную ссылку по сокращенной.
func (s *ShortenerService) ExpandURL(ctx context.Context, shortURL string) (domain.Result, error) {
	const op = "expand url"

	key, ok := strings.CutPrefix(shortURL, s.domain+"/")
	if !ok {
		return domain.Fail(domain.StatusInvalidShortURL), nil
	}

	originalURL, err := s.store.GetOriginalURL(ctx, key)
	if errors.Is(err, domain.ErrOriginalURLNotFound) {
		return domain.Fail(domain.StatusURLNotFound), nil
	}
	if err != nil {
		return domain.Result{}, errors.Wrap(err, op)
	}

	return domain.OK(originalURL), nil
}

// GetURLs возвращает все выданные ключи, где ключ заменен сокращенной ссылкой.
func (s *ShortenerService) GetURLs(ctx context.Context) ([]domain.URLPair, error) {
	const op = "get urls"

	pairs, err := s.store.GetURLs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	for i := 0; i < len(pairs); i++ {
		pairs[i].Key = s.shortURL(pairs[i].Key)
	}
	return pairs, nil
}

// IsAvailable возвращает true, если сервис доступен.
func (s *ShortenerService) IsAvailable(ctx context.Context) bool {
	return s.store.IsAvailable(ctx)
}

func (s *ShortenerService) shortURL(key string) string {
	return s.domain + "/" + key
}

// WithLogger задает логер для сервиса.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithKeyLength задает длину ключа. Неположительное значение заменяется длиной по умолчанию.
func WithKeyLength(length int) Option {
	return func(s *settings) {
		s.keyLength = length
	}
}

// WithDomain задает домен сокращенных ссылок. Пустое значение оставляет домен по умолчанию,
// иначе домен нормализуется как исходный URL.
func WithDomain(d string) Option {
	return func(s *settings) {
		if d == "" {
			return
		}
		s.domain = domain.SanitizeURL(d)
	}
}

// WithRand задает источник случайных чисел для выдачи ключей.
func WithRand(rnd shortener.Rand) Option {
	return func(s *settings) {
		s.rnd = rnd
	}
}
