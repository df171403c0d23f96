package provider

import (
	"fmt"
	"net/url"
	"regexp"

	"embedscout/internal/extract"
	"embedscout/internal/media"
	"embedscout/internal/normalize"
	"embedscout/internal/platform"
)

var crackedValidURL = regexp.MustCompile(`^https?://(?:www\.)?cracked\.com/video_(?P<id>\d+)_[\da-z-]+\.html`)

var (
	crackedVideoURL = extract.Field{
		Name: "video URL",
		Patterns: []extract.Pattern{
			extract.P(`var\s+CK_vidSrc\s*=\s*"([^"]+)"`),
			extract.P(`<video\s+src="([^"]+)"`),
		},
		Mode:  extract.Required,
		Clean: true,
	}

	crackedTitle = extract.Field{
		Name: "title",
		Patterns: []extract.Pattern{
			extract.P(`property="?og:title"?\s+content="([^"]+)"`),
			extract.P(`class="?title"?>([^<]+)`),
		},
		Mode:  extract.Required,
		Clean: true,
	}

	crackedDescription = extract.Field{
		Name:     "description",
		Patterns: []extract.Pattern{extract.P(`name="?(?:og:)?description"?\s+content="([^"]+)"`)},
		Mode:     extract.Optional,
		Clean:    true,
	}

	crackedDate = extract.Field{
		Name:     "upload date",
		Patterns: []extract.Pattern{extract.P(`"date"\s*:\s*"([^"]+)"`)},
		Mode:     extract.Optional,
		Clean:    true,
	}

	crackedViewCount = extract.Field{
		Name:     "view count",
		Patterns: []extract.Pattern{extract.P(`<span\s+class="?views"? id="?viewCounts"?>([\d,\.]+) Views</span>`)},
		Mode:     extract.Optional,
		Clean:    true,
	}

	crackedPublishedRe = regexp.MustCompile(
		`<li[^>]+class=["']?[^"']*date-published[^"']*["']?[^>]*>(\w+)\s*(\d+),\s*(\d+)</li>`)
)

// Cracked extracts single videos from cracked.com video pages.
type Cracked struct {
	opts Options
}

// NewCracked creates a Cracked extractor.
func NewCracked(opts Options) *Cracked {
	return &Cracked{opts: opts}
}

func (c *Cracked) Name() string { return "cracked" }

func (c *Cracked) Match(u *url.URL) bool {
	return crackedValidURL.MatchString(u.String())
}

// commentCount is built per call: its miss is reported through the logger and
// Strict promotes it to a required field. The view count stays silent.
func (c *Cracked) commentCount(id string) extract.Field {
	mode := extract.Advisory
	if c.opts.Strict {
		mode = extract.Required
	}
	return extract.Field{
		Name:     "comment count",
		Patterns: []extract.Pattern{extract.P(`<span\s+(?:id="?commentCounts"?|class="?comments-count"?)>([\d,\.]+)</`)},
		Mode:     mode,
		Clean:    true,
		OnMiss: func(field string) {
			c.opts.Logger.Warn().
				Str("extractor", c.Name()).
				Str("id", id).
				Str("field", field).
				Msg("unable to extract field")
		},
	}
}

// Extract returns a record for the page's own video, or a bare reference when
// the page only wraps an embedded YouTube player.
func (c *Cracked) Extract(pageURL, page string) (*media.Result, error) {
	id, err := MatchID(crackedValidURL, pageURL)
	if err != nil {
		return nil, err
	}

	if yt, ok := platform.First(platform.YouTube{}, page); ok {
		return media.ReferenceResult(media.Reference{URL: yt, Platform: "youtube"}), nil
	}

	videoURL, _, err := crackedVideoURL.Find(page)
	if err != nil {
		return nil, fmt.Errorf("cracked %s: %w", id, err)
	}

	title, _, err := crackedTitle.Find(page)
	if err != nil {
		return nil, fmt.Errorf("cracked %s: %w", id, err)
	}

	rec := &media.Record{
		ID:         id,
		URL:        videoURL,
		Title:      title,
		Timestamp:  crackedTimestamp(page),
		Dimensions: normalize.Dimensions(videoURL),
	}

	if desc, ok, _ := crackedDescription.Find(page); ok {
		rec.Description = &desc
	}

	if views, ok, _ := crackedViewCount.Find(page); ok {
		rec.ViewCount = normalize.Int(views)
	}

	comments, ok, err := c.commentCount(id).Find(page)
	if err != nil {
		return nil, fmt.Errorf("cracked %s: %w", id, err)
	}
	if ok {
		rec.CommentCount = normalize.Int(comments)
	}

	return media.RecordResult(rec), nil
}

// crackedTimestamp prefers the machine-readable date. The "Month Day, Year"
// list item is consulted only when that date is missing entirely; a present
// but unparseable machine date leaves the timestamp absent.
func crackedTimestamp(page string) *int64 {
	if raw, ok, _ := crackedDate.Find(page); ok {
		return normalize.TimestampA(raw)
	}
	m := crackedPublishedRe.FindStringSubmatch(page)
	if m == nil {
		return nil
	}
	return normalize.TimestampB(m[1], m[2], m[3])
}
