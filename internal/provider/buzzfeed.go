package provider

import (
	"fmt"
	"net/url"
	"regexp"

	"embedscout/internal/extract"
	"embedscout/internal/media"
	"embedscout/internal/platform"
)

var buzzfeedValidURL = regexp.MustCompile(`^https?://(?:www\.)?buzzfeed\.com/[^?#]*?/(?P<id>[^?#]+)`)

// buzzfeedBuckets are the JSON blobs attached to video-embed divs. Older
// pages name the media object "progload_video" instead of "video".
var buzzfeedBuckets = extract.Fragment{
	Marker: regexp.MustCompile(`(?s)<div class="video-embed[^"]*"..*?rel:bf_bucket_data='([^']+)'`),
	Keys:   extract.KeyChain{"video", "progload_video"},
	URLKey: extract.KeyChain{"url"},
}

var buzzfeedYouTubeAnchors = extract.AnchorStrategy{
	Domain:      regexp.MustCompile(`^https?://(?:[^.]*\.)?youtube\.com`),
	ClassMarker: "subbuzz-youtube__thumb",
}

// BuzzFeed extracts the videos embedded in a buzzfeed.com article as a playlist.
type BuzzFeed struct {
	opts       Options
	aggregator *extract.Aggregator
}

// NewBuzzFeed creates a BuzzFeed extractor.
func NewBuzzFeed(opts Options) *BuzzFeed {
	return &BuzzFeed{
		opts: opts,
		aggregator: extract.NewAggregator(
			buzzfeedBuckets,
			extract.EmbedStrategy{Extractors: []platform.LinkExtractor{platform.Facebook{}}},
			buzzfeedYouTubeAnchors,
		),
	}
}

func (b *BuzzFeed) Name() string { return "buzzfeed" }

func (b *BuzzFeed) Match(u *url.URL) bool {
	return buzzfeedValidURL.MatchString(u.String())
}

// Extract returns the article's embeds as unresolved playlist entries. An
// article without embeds yields an empty playlist.
func (b *BuzzFeed) Extract(pageURL, page string) (*media.Result, error) {
	id, err := MatchID(buzzfeedValidURL, pageURL)
	if err != nil {
		return nil, err
	}

	desc := describePage(page)
	if !desc.HasTitle {
		return nil, fmt.Errorf("buzzfeed %s: %w", id, &extract.FieldNotFoundError{Field: "title"})
	}

	entries := b.aggregator.Entries(page)
	b.opts.Logger.Debug().
		Str("extractor", b.Name()).
		Str("id", id).
		Int("entries", len(entries)).
		Msg("collected embeds")

	return media.PlaylistResult(&media.Playlist{
		ID:          id,
		Title:       desc.Title,
		Description: desc.Description,
		Entries:     entries,
	}), nil
}
