package provider

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func loadTestPage(t *testing.T, filename string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + filename)
	if err != nil {
		t.Fatalf("reading test fixture %s: %v", filename, err)
	}
	return string(data)
}

func testOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

func TestRegistryLookup(t *testing.T) {
	reg := Default(testOptions())

	tests := []struct {
		url  string
		want string
	}{
		{"http://www.cracked.com/video_19070_if-animal-actors-got-e-true-hollywood-stories.html", "cracked"},
		{"https://cracked.com/video_1_a.html", "cracked"},
		{"http://www.buzzfeed.com/abagg/this-angry-ram-destroys-a-punching-bag-like-a-boss", "buzzfeed"},
		{"https://buzzfeed.com/sheridanwatson/look-at-this-cute-dog-omg?utm=x", "buzzfeed"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			ex, err := reg.Lookup(tt.url)
			if err != nil {
				t.Fatalf("Lookup() error: %v", err)
			}
			if ex.Name() != tt.want {
				t.Errorf("Lookup() = %q, want %q", ex.Name(), tt.want)
			}
			if !reg.Supports(tt.url) {
				t.Error("Supports() = false")
			}
		})
	}
}

func TestRegistryLookupUnsupported(t *testing.T) {
	reg := Default(testOptions())

	for _, u := range []string{
		"https://www.youtube.com/watch?v=mVmBL8B-In0",
		"http://www.cracked.com/article_1_x.html",
		"http://www.buzzfeed.com/",
		"://bad",
	} {
		t.Run(u, func(t *testing.T) {
			_, err := reg.Lookup(u)
			if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("Lookup(%q) error = %v, want ErrUnsupportedURL", u, err)
			}
			if reg.Supports(u) {
				t.Errorf("Supports(%q) = true", u)
			}
		})
	}
}

func TestRegistryNames(t *testing.T) {
	names := Default(testOptions()).Names()
	if len(names) != 2 || names[0] != "cracked" || names[1] != "buzzfeed" {
		t.Errorf("Names() = %v, want [cracked buzzfeed]", names)
	}
}

func TestMatchID(t *testing.T) {
	tests := []struct {
		name    string
		re      string
		url     string
		want    string
		wantErr bool
	}{
		{"cracked", "cracked", "http://www.cracked.com/video_19006_4-plot-holes-you-didnt-notice-in-your-favorite-movies.html", "19006", false},
		{"buzzfeed", "buzzfeed", "http://www.buzzfeed.com/craigsilverman/the-most-adorable-crash-landing-ever#.eq7pX0BAmK", "the-most-adorable-crash-landing-ever", false},
		{"wrong site", "cracked", "http://www.buzzfeed.com/a/b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := crackedValidURL
			if tt.re == "buzzfeed" {
				re = buzzfeedValidURL
			}
			got, err := MatchID(re, tt.url)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedURL) {
					t.Errorf("MatchID() error = %v, want ErrUnsupportedURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MatchID() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MatchID() = %q, want %q", got, tt.want)
			}
		})
	}
}
