package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"embedscout/internal/history"
	"embedscout/internal/httputil"
	"embedscout/internal/log"
	"embedscout/internal/output"
	"embedscout/internal/provider"
)

// extractRun is the default command: embedscout <url>
func extractRun(cmd *cobra.Command, args []string) error {
	pageURL := args[0]
	if err := httputil.ValidateURL(pageURL); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	reg := provider.Default(provider.Options{
		Strict: cfg.Strict,
		Logger: log.WithComponent("extractor"),
	})

	fetcher := httputil.NewFetcher(cfg.Timeout.Duration, cfg.UserAgent)
	fetch := fetcher.Fetch
	if flagFile != "" {
		fetch = localPage(flagFile, pageURL, fetcher.Fetch)
	}

	resolver := &provider.Resolver{
		Registry:    reg,
		Fetch:       fetch,
		Concurrency: cfg.Concurrency,
		MaxDepth:    cfg.MaxDepth,
		Logger:      log.WithComponent("resolver"),
	}

	res, err := resolver.Resolve(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", pageURL, err)
	}

	if err := output.Write(cmd.OutOrStdout(), cfg.Format, res.Result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if cfg.History {
		entry := history.FromResult(pageURL, res.Extractor, res.Result, time.Now())
		if err := history.Save(entry); err != nil {
			logger := log.WithComponent("cli")
			logger.Warn().Err(err).Msg("failed to save history")
		}
	}

	return nil
}

// localPage serves pageURL from a file on disk. Every other URL, such as the
// embeds the resolver follows, goes to the network.
func localPage(path, pageURL string, next provider.FetchFunc) provider.FetchFunc {
	return func(ctx context.Context, url string) (string, error) {
		if url != pageURL {
			return next(ctx, url)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading page file: %w", err)
		}
		return string(data), nil
	}
}
