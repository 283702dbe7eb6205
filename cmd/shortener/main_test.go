package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nestjam/url-shortener/internal/domain/service"
	"github.com/nestjam/url-shortener/internal/persistance/inmemory"
)

func TestReadURLs(t *testing.T) {
	input := "www.google.com\n\nwww.google.com/\n"

	got, err := readURLs(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []string{"www.google.com", "www.google.com/"}, got)
}

func TestRun(t *testing.T) {
	svc := service.New(inmemory.New(), service.WithKeyLength(5), service.WithDomain("http://www.tinyurl.com"))
	out := &strings.Builder{}

	err := run(context.Background(), svc, []string{"www.google.com/", "www.google.com", "ftp://x.com"}, out)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "URL: www.google.com/\tTiny: www.tinyurl.com/"))
	assert.True(t, strings.HasSuffix(lines[0], "\tExpanded: google.com"))
	assert.Equal(t, strings.Replace(lines[0], "www.google.com/", "www.google.com", 1), lines[1])
	assert.Equal(t, "URL: ftp://x.com\tTiny: Invalid URL\tExpanded: Invalid short URL", lines[2])
}
