package provider

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"embedscout/internal/extract"
	"embedscout/internal/media"
)

const crackedTestURL = "http://www.cracked.com/video_19070_if-animal-actors-got-e-true-hollywood-stories.html"

func int64p(v int64) *int64 { return &v }
func strp(v string) *string { return &v }

func TestCrackedExtractRecord(t *testing.T) {
	page := loadTestPage(t, "cracked_video.html")

	res, err := NewCracked(testOptions()).Extract(crackedTestURL, page)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if res.Type != media.ResultRecord {
		t.Fatalf("result type = %v, want video", res.Type)
	}

	want := &media.Record{
		ID:           "19070",
		URL:          "http://cdn.cracked.com/videos/19070_640X360.mp4",
		Title:        "If Animal Actors Got E! True Hollywood Stories",
		Description:  strp("Animal actors have a lot of problems, but they're not alone."),
		Timestamp:    int64p(1404975600),
		ViewCount:    int64p(1234567),
		CommentCount: int64p(89),
		Dimensions:   &media.Dimensions{Width: 640, Height: 360},
	}
	if diff := cmp.Diff(want, res.Record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestCrackedExtractIdempotent(t *testing.T) {
	page := loadTestPage(t, "cracked_video.html")
	c := NewCracked(testOptions())

	first, err := c.Extract(crackedTestURL, page)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Extract(crackedTestURL, page)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() not idempotent (-first +second):\n%s", diff)
	}
}

func TestCrackedFallbackPatterns(t *testing.T) {
	page := `<h1 class="title">Heading &amp; Title</h1>
<video src="http://cdn.cracked.com/videos/19070.mp4"></video>`

	res, err := NewCracked(testOptions()).Extract(crackedTestURL, page)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	rec := res.Record
	if rec.Title != "Heading & Title" {
		t.Errorf("title = %q, want fallback heading", rec.Title)
	}
	if rec.URL != "http://cdn.cracked.com/videos/19070.mp4" {
		t.Errorf("url = %q, want <video> source", rec.URL)
	}
	if rec.Dimensions != nil {
		t.Errorf("dimensions = %+v, want absent without a size suffix", *rec.Dimensions)
	}
	if rec.Description != nil || rec.Timestamp != nil || rec.ViewCount != nil || rec.CommentCount != nil {
		t.Errorf("optional fields should be absent: %+v", rec)
	}
}

func TestCrackedTimestamp(t *testing.T) {
	const video = `<meta property="og:title" content="T"><script>var CK_vidSrc = "http://x/v.mp4";</script>`

	tests := []struct {
		name string
		page string
		want *int64
	}{
		{
			name: "machine date",
			page: video + `{"date": "2014-07-10T00:00:00-07:00"}`,
			want: int64p(1404950400),
		},
		{
			name: "published list item",
			page: video + `<li class="date-published">July 10, 2014</li>`,
			want: int64p(1404950400),
		},
		{
			name: "machine date wins over list item",
			page: video + `{"date": "2014-07-11T00:00:00-07:00"}<li class="date-published">July 10, 2014</li>`,
			want: int64p(1405036800),
		},
		{
			name: "malformed machine date does not fall back",
			page: video + `{"date": "yesterday"}<li class="date-published">July 10, 2014</li>`,
			want: nil,
		},
		{
			name: "unknown month",
			page: video + `<li class="date-published">Juli 10, 2014</li>`,
			want: nil,
		},
		{
			name: "no date",
			page: video,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewCracked(testOptions()).Extract(crackedTestURL, tt.page)
			if err != nil {
				t.Fatalf("Extract() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, res.Record.Timestamp); diff != "" {
				t.Errorf("timestamp mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrackedRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		field string
	}{
		{"missing title", `<script>var CK_vidSrc = "http://x/v.mp4";</script>`, "title"},
		{"missing video", `<meta property="og:title" content="T">`, "video URL"},
		{"blank title", `<h1 class="title">   </h1><video src="http://x/v.mp4"></video>`, "title"},
		{"title of only markup", `<h1 class="title"><b></b></h1><video src="http://x/v.mp4"></video>`, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewCracked(testOptions()).Extract(crackedTestURL, tt.page)
			if res != nil {
				t.Errorf("Extract() returned a partial result: %+v", res)
			}
			if !errors.Is(err, extract.ErrFieldNotFound) {
				t.Fatalf("Extract() error = %v, want ErrFieldNotFound", err)
			}
			var fnf *extract.FieldNotFoundError
			if !errors.As(err, &fnf) || fnf.Field != tt.field {
				t.Errorf("error = %v, want missing %q", err, tt.field)
			}
		})
	}
}

func TestCrackedCommentCount(t *testing.T) {
	const page = `<meta property="og:title" content="T"><script>var CK_vidSrc = "http://x/v.mp4";</script>`

	t.Run("advisory", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewCracked(Options{Logger: zerolog.New(&buf)})

		res, err := c.Extract(crackedTestURL, page)
		if err != nil {
			t.Fatalf("Extract() error: %v", err)
		}
		if res.Record.CommentCount != nil {
			t.Errorf("comment count = %d, want absent", *res.Record.CommentCount)
		}
		out := buf.String()
		if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "comment count") {
			t.Errorf("expected a warning naming the comment count, got %q", out)
		}
		if strings.Contains(out, "view count") {
			t.Errorf("view count miss must stay silent, got %q", out)
		}
	})

	t.Run("strict", func(t *testing.T) {
		c := NewCracked(Options{Strict: true, Logger: zerolog.Nop()})

		res, err := c.Extract(crackedTestURL, page)
		if res != nil {
			t.Errorf("Extract() returned a result in strict mode: %+v", res)
		}
		var fnf *extract.FieldNotFoundError
		if !errors.As(err, &fnf) || fnf.Field != "comment count" {
			t.Errorf("error = %v, want missing comment count", err)
		}
	})

	t.Run("zero is present", func(t *testing.T) {
		c := NewCracked(testOptions())
		res, err := c.Extract(crackedTestURL, page+`<span class="comments-count">0</span>`)
		if err != nil {
			t.Fatalf("Extract() error: %v", err)
		}
		if diff := cmp.Diff(int64p(0), res.Record.CommentCount); diff != "" {
			t.Errorf("comment count mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCrackedYouTubeReference(t *testing.T) {
	page := loadTestPage(t, "cracked_youtube.html")

	res, err := NewCracked(testOptions()).Extract(crackedTestURL, page)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	want := media.ReferenceResult(media.Reference{
		URL:      "https://www.youtube.com/embed/mVmBL8B-In0?rel=0&showinfo=0",
		Platform: "youtube",
	})
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestCrackedUnsupportedURL(t *testing.T) {
	_, err := NewCracked(testOptions()).Extract("http://www.cracked.com/article_1.html", "")
	if !errors.Is(err, ErrUnsupportedURL) {
		t.Errorf("Extract() error = %v, want ErrUnsupportedURL", err)
	}
}
