package history

import (
	"testing"
	"time"

	"embedscout/internal/media"
)

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := media.HistoryEntry{
		ID:          "19070",
		Title:       "If Animal Actors Got E! True Hollywood Stories",
		Extractor:   "cracked",
		Type:        media.ResultRecord,
		URL:         "http://www.cracked.com/video_19070_if-animal-actors.html",
		ExtractedAt: 1404950400,
	}

	if err := Save(entry); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0] != entry {
		t.Errorf("loaded %+v, want %+v", entries[0], entry)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entry := media.HistoryEntry{
		ID:        "look-at-this-cute-dog-omg",
		Title:     "Dog",
		Extractor: "buzzfeed",
		Type:      media.ResultPlaylist,
		Entries:   1,
		URL:       "http://www.buzzfeed.com/sheridanwatson/look-at-this-cute-dog-omg",
	}
	if err := Save(entry); err != nil {
		t.Fatal(err)
	}

	entry.Entries = 3
	if err := Save(entry); err != nil {
		t.Fatal(err)
	}

	entries, _ := Load()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after update, got %d", len(entries))
	}
	if entries[0].Entries != 3 {
		t.Errorf("entries = %d, want 3", entries[0].Entries)
	}
}

func TestRemove(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	Save(media.HistoryEntry{ID: "a", Title: "A", URL: "http://example.com/a"})
	Save(media.HistoryEntry{ID: "b", Title: "B", URL: "http://example.com/b"})

	if err := Remove("http://example.com/a"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	entries, _ := Load()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after remove, got %d", len(entries))
	}
	if entries[0].ID != "b" {
		t.Errorf("remaining entry = %q, want b", entries[0].ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestFormatLineStripsSeparators(t *testing.T) {
	line := formatLine(media.HistoryEntry{ID: "x", Title: "tab\there\nnewline", URL: "http://example.com/x"})

	got, err := parseLine(line)
	if err != nil {
		t.Fatalf("parseLine() error: %v", err)
	}
	if got.Title != "tab here newline" {
		t.Errorf("title = %q, want separators replaced", got.Title)
	}
}

func TestParseLineMalformed(t *testing.T) {
	if _, err := parseLine("only\tthree\tcolumns"); err == nil {
		t.Error("expected error for short line")
	}
}

func TestFromResult(t *testing.T) {
	at := time.Unix(1431380091, 0)
	res := media.PlaylistResult(&media.Playlist{
		ID:      "the-most-adorable-crash-landing-ever",
		Title:   "Baby Goose",
		Entries: make([]media.Entry, 2),
	})

	e := FromResult("http://www.buzzfeed.com/craigsilverman/the-most-adorable-crash-landing-ever", "buzzfeed", res, at)
	if e.ID != "the-most-adorable-crash-landing-ever" || e.Title != "Baby Goose" {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Entries != 2 {
		t.Errorf("entries = %d, want 2", e.Entries)
	}
	if e.ExtractedAt != 1431380091 {
		t.Errorf("extracted_at = %d", e.ExtractedAt)
	}
}

func TestFormatForDisplay(t *testing.T) {
	items := FormatForDisplay([]media.HistoryEntry{
		{Title: "Animal Actors", Extractor: "cracked", Type: media.ResultRecord, ExtractedAt: 1404950400},
		{Title: "Baby Goose", Extractor: "buzzfeed", Type: media.ResultPlaylist, Entries: 1, ExtractedAt: 1431380091},
	})

	want := []string{
		"2014-07-10 [cracked] Animal Actors",
		"2015-05-11 [buzzfeed] Baby Goose (1 entries)",
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, items[i], want[i])
		}
	}
}
