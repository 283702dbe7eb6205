package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
		ok     bool
	}{
		{
			name:   "ok",
			result: OK("tinyurl.com/abcde"),
			want:   "tinyurl.com/abcde",
			ok:     true,
		},
		{
			name:   "invalid url",
			result: Fail(StatusInvalidURL),
			want:   "Invalid URL",
		},
		{
			name:   "invalid short url",
			result: Fail(StatusInvalidShortURL),
			want:   "Invalid short URL",
		},
		{
			name:   "url not found",
			result: Fail(StatusURLNotFound),
			want:   "URL not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
			assert.Equal(t, tt.ok, tt.result.IsOK())
		})
	}
}
