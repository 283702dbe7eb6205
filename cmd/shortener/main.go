package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	conf "github.com/nestjam/url-shortener/internal/config"
	env "github.com/nestjam/url-shortener/internal/config/environment"
	"github.com/nestjam/url-shortener/internal/domain/service"
	factory "github.com/nestjam/url-shortener/internal/factory"
)

const (
	eventKey = "event"
)

func main() {
	config := conf.New().
		FromArgs(os.Args).
		FromEnv(env.New())

	logger, tearDownLogger := factory.NewLogger(config.LogLevel)
	defer tearDownLogger()

	svc := factory.NewService(config, logger)

	urls := config.URLs
	if len(urls) == 0 {
		var err error
		urls, err = readURLs(os.Stdin)
		if err != nil {
			logger.Fatal(err.Error(), zap.String(eventKey, "read urls"))
		}
	}

	if err := run(context.Background(), svc, urls, os.Stdout); err != nil {
		logger.Fatal(err.Error(), zap.String(eventKey, "shorten urls"))
	}
}

func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read urls: %w", err)
	}
	return urls, nil
}

func run(ctx context.Context, svc *service.ShortenerService, urls []string, w io.Writer) error {
	for _, url := range urls {
		short, err := svc.ShortenURL(ctx, url)
		if err != nil {
			return err
		}

		expanded, err := svc.ExpandURL(ctx, short.String())
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "URL: %s\tTiny: %s\tExpanded: %s\n", url, short, expanded); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}
