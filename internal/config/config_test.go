package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nestjam/url-shortener/internal/config/environment"
)

func TestFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "args contain only app name",
			args: []string{
				"app.exe",
			},
			want: New(),
		},
		{
			name: "args contain key length",
			args: []string{
				"app.exe",
				"-l",
				"5",
			},
			want: Config{
				KeyLength: 5,
				LogLevel:  defaultLogLevel,
			},
		},
		{
			name: "args contain domain and log level",
			args: []string{
				"app.exe",
				"-d=http://www.tinyurl.com",
				"-v=debug",
			},
			want: Config{
				KeyLength: defaultKeyLength,
				Domain:    "http://www.tinyurl.com",
				LogLevel:  "debug",
			},
		},
		{
			name: "args contain urls",
			args: []string{
				"app.exe",
				"-l=5",
				"www.google.com",
				"www.google.com/",
			},
			want: Config{
				KeyLength: 5,
				LogLevel:  defaultLogLevel,
				URLs:      []string{"www.google.com", "www.google.com/"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().FromArgs(tt.args)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("failed to parse args", func(t *testing.T) {
		args := []string{
			"app.exe",
			"-l=five",
		}

		assert.Panics(t, func() { _ = New().FromArgs(args) })
	})
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  environment.Map
		want Config
	}{
		{
			name: "empty environment",
			env:  environment.Map{},
			want: New(),
		},
		{
			name: "all variables",
			env: environment.Map{
				"KEY_LENGTH":   "6",
				"SHORT_DOMAIN": "tinyurl.com",
				"LOG_LEVEL":    "error",
			},
			want: Config{
				KeyLength: 6,
				Domain:    "tinyurl.com",
				LogLevel:  "error",
			},
		},
		{
			name: "invalid key length is ignored",
			env: environment.Map{
				"KEY_LENGTH": "six",
			},
			want: New(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New().FromEnv(tt.env)
			assert.Equal(t, tt.want, got)
		})
	}
}
