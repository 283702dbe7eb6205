package factory

import (
	"go.uber.org/zap"

	conf "github.com/nestjam/url-shortener/internal/config"
	"github.com/nestjam/url-shortener/internal/domain/service"
	"github.com/nestjam/url-shortener/internal/log"
	"github.com/nestjam/url-shortener/internal/persistance/inmemory"
)

// NewService создает сервис сокращения ссылок с хранилищем в памяти.
func NewService(conf conf.Config, logger *zap.Logger) *service.ShortenerService {
	svc := service.New(inmemory.New(),
		service.WithKeyLength(conf.KeyLength),
		service.WithDomain(conf.Domain),
		service.WithLogger(logger))

	logger.Info("Using in-memory storage",
		zap.Int("key_length", svc.KeyLength()),
		zap.String("domain", svc.Domain()))
	return svc
}

// NewLogger создает логер. Возвращаемая функция сбрасывает буферы логера.
func NewLogger(level string) (*zap.Logger, func()) {
	logger, err := log.New(level)

	if err != nil {
		panic(err)
	}

	return logger, func() { _ = logger.Sync() }
}
