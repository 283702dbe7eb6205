package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	conf "github.com/nestjam/url-shortener/internal/config"
	"github.com/nestjam/url-shortener/internal/domain/service"
)

func TestNewService(t *testing.T) {
	t.Run("configured key length and domain", func(t *testing.T) {
		config := conf.New()
		config.KeyLength = 5
		config.Domain = "http://www.tinyurl.com"

		sut := NewService(config, zap.NewNop())

		assert.Equal(t, 5, sut.KeyLength())
		assert.Equal(t, "www.tinyurl.com", sut.Domain())
		res, err := sut.ShortenURL(context.Background(), "www.google.com")
		require.NoError(t, err)
		assert.True(t, res.IsOK())
	})

	t.Run("logs settings in effect", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		config := conf.New()
		config.KeyLength = 0

		_ = NewService(config, zap.New(core))

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, service.DefaultDomain, fields["domain"])
		assert.Equal(t, int64(8), fields["key_length"])
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		logger, tearDown := NewLogger("info")
		t.Cleanup(tearDown)

		assert.NotNil(t, logger)
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = NewLogger("loud") })
	})
}
