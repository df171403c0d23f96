package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"embedscout/internal/media"
)

// FetchFunc retrieves the markup of a page.
type FetchFunc func(ctx context.Context, url string) (string, error)

// Resolver fetches pages, runs the matching extractor and re-applies the
// engine to every reference that a registered extractor can handle.
type Resolver struct {
	Registry *Registry
	Fetch    FetchFunc
	// Concurrency bounds parallel entry resolution; values below 1 mean 1.
	Concurrency int
	// MaxDepth bounds recursion; 0 resolves the requested page only.
	MaxDepth int
	Logger   zerolog.Logger
}

// Resolution is the outcome of resolving one URL.
type Resolution struct {
	Extractor string
	Result    *media.Result
}

// Resolve extracts the page at pageURL and follows its references.
func (r *Resolver) Resolve(ctx context.Context, pageURL string) (*Resolution, error) {
	return r.resolve(ctx, pageURL, 0)
}

func (r *Resolver) resolve(ctx context.Context, pageURL string, depth int) (*Resolution, error) {
	ex, err := r.Registry.Lookup(pageURL)
	if err != nil {
		return nil, err
	}

	page, err := r.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	res, err := ex.Extract(pageURL, page)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug().
		Str("extractor", ex.Name()).
		Str("url", pageURL).
		Stringer("type", res.Type).
		Int("depth", depth).
		Msg("extracted")

	if depth >= r.MaxDepth {
		return &Resolution{Extractor: ex.Name(), Result: res}, nil
	}

	switch res.Type {
	case media.ResultReference:
		if r.Registry.Supports(res.Reference.URL) {
			sub, err := r.resolve(ctx, res.Reference.URL, depth+1)
			if err != nil {
				r.Logger.Warn().Err(err).Str("url", res.Reference.URL).Msg("keeping unresolved reference")
				break
			}
			return sub, nil
		}
	case media.ResultPlaylist:
		entries, err := r.resolveEntries(ctx, res.Playlist.Entries, depth+1)
		if err != nil {
			return nil, err
		}
		pl := *res.Playlist
		pl.Entries = entries
		res = media.PlaylistResult(&pl)
	}

	return &Resolution{Extractor: ex.Name(), Result: res}, nil
}

// resolveEntries resolves supported references in parallel. The returned
// slice keeps the input order; entries that fail stay references.
func (r *Resolver) resolveEntries(ctx context.Context, entries []media.Entry, depth int) ([]media.Entry, error) {
	out := make([]media.Entry, len(entries))
	copy(out, entries)

	limit := r.Concurrency
	if limit < 1 {
		limit = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, e := range entries {
		if e.Kind() != media.EntryReference || !r.Registry.Supports(e.Reference.URL) {
			continue
		}
		i, e := i, e
		g.Go(func() error {
			sub, err := r.resolve(gctx, e.Reference.URL, depth)
			if err != nil {
				r.Logger.Warn().Err(err).Str("url", e.Reference.URL).Msg("keeping unresolved entry")
				return nil
			}
			out[i] = entryOf(sub.Result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func entryOf(res *media.Result) media.Entry {
	switch res.Type {
	case media.ResultRecord:
		return media.Entry{Record: res.Record}
	case media.ResultPlaylist:
		return media.Entry{Playlist: res.Playlist}
	default:
		return media.Entry{Reference: res.Reference}
	}
}
