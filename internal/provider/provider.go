// Package provider assembles media records and playlists from the pages of
// supported sites, and dispatches page URLs to the extractor that handles them.
package provider

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"

	"github.com/rs/zerolog"

	"embedscout/internal/media"
)

// ErrUnsupportedURL indicates that no extractor accepts a URL.
var ErrUnsupportedURL = errors.New("unsupported URL")

// Extractor is the interface site extractors must implement.
type Extractor interface {
	// Name returns the extractor name (e.g., "cracked").
	Name() string

	// Match reports whether the extractor handles pages at u.
	Match(u *url.URL) bool

	// Extract builds a result from the markup of the page at pageURL.
	// It performs no I/O.
	Extract(pageURL, page string) (*media.Result, error)
}

// Options tune extractor behavior.
type Options struct {
	// Strict turns advisory fields into required ones.
	Strict bool
	Logger zerolog.Logger
}

// MatchID returns the "id" group of validURL matched against pageURL.
func MatchID(validURL *regexp.Regexp, pageURL string) (string, error) {
	m := validURL.FindStringSubmatch(pageURL)
	idx := validURL.SubexpIndex("id")
	if m == nil || idx < 0 || m[idx] == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedURL, pageURL)
	}
	return m[idx], nil
}

// Registry dispatches URLs to extractors. The first matching extractor wins.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates a registry trying extractors in the given order.
func NewRegistry(extractors ...Extractor) *Registry {
	return &Registry{extractors: extractors}
}

// Default returns a registry of every built-in extractor.
func Default(opts Options) *Registry {
	return NewRegistry(
		NewCracked(opts),
		NewBuzzFeed(opts),
	)
}

// Lookup returns the extractor for rawURL.
func (r *Registry) Lookup(rawURL string) (Extractor, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}
	for _, ex := range r.extractors {
		if ex.Match(u) {
			return ex, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, rawURL)
}

// Supports reports whether any extractor handles rawURL.
func (r *Registry) Supports(rawURL string) bool {
	_, err := r.Lookup(rawURL)
	return err == nil
}

// Names lists the registered extractors in dispatch order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.extractors))
	for _, ex := range r.extractors {
		names = append(names, ex.Name())
	}
	return names
}
