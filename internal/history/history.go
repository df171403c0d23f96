// Package history keeps a TSV log of past extractions, one line per page URL.
// Writes go to a temp file that is renamed over the log.
package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"embedscout/internal/config"
	"embedscout/internal/media"
)

// TSV columns: id, title, extractor, type, entries, url, extracted_at
const numColumns = 7

// Load reads the history file and returns all entries.
func Load() ([]media.HistoryEntry, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var entries []media.HistoryEntry
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line)
		if err != nil {
			continue // Skip malformed lines
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	return entries, nil
}

// Save writes or updates the entry for a page URL.
func Save(entry media.HistoryEntry) error {
	entries, err := Load()
	if err != nil {
		return err
	}

	found := false
	for i, e := range entries {
		if e.URL == entry.URL {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, entry)
	}

	return writeAll(entries)
}

// Remove deletes the entry for a page URL.
func Remove(url string) error {
	entries, err := Load()
	if err != nil {
		return err
	}

	var filtered []media.HistoryEntry
	for _, e := range entries {
		if e.URL != url {
			filtered = append(filtered, e)
		}
	}

	return writeAll(filtered)
}

// FromResult builds a history entry for a resolved page.
func FromResult(pageURL, extractor string, res *media.Result, at time.Time) media.HistoryEntry {
	e := media.HistoryEntry{
		ID:          res.ID(),
		Title:       res.Title(),
		Extractor:   extractor,
		Type:        res.Type,
		URL:         pageURL,
		ExtractedAt: at.Unix(),
	}
	if res.Type == media.ResultPlaylist {
		e.Entries = len(res.Playlist.Entries)
	}
	if res.Type == media.ResultReference {
		e.Title = res.Reference.URL
	}
	return e
}

// FormatForDisplay creates display strings from history entries.
func FormatForDisplay(entries []media.HistoryEntry) []string {
	var items []string
	for _, e := range entries {
		display := fmt.Sprintf("%s [%s] %s", time.Unix(e.ExtractedAt, 0).UTC().Format("2006-01-02"), e.Extractor, e.Title)
		if e.Type == media.ResultPlaylist {
			display += fmt.Sprintf(" (%d entries)", e.Entries)
		}
		items = append(items, display)
	}
	return items
}

func writeAll(entries []media.HistoryEntry) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	for _, e := range entries {
		if _, err := writer.WriteString(formatLine(e) + "\n"); err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing history: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing history: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming history file: %w", err)
	}

	return nil
}

// parseLine parses a TSV line into a HistoryEntry.
func parseLine(line string) (media.HistoryEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numColumns {
		return media.HistoryEntry{}, fmt.Errorf("expected %d columns, got %d", numColumns, len(fields))
	}

	resultType := media.ResultRecord
	switch fields[3] {
	case "url":
		resultType = media.ResultReference
	case "playlist":
		resultType = media.ResultPlaylist
	}

	entries, _ := strconv.Atoi(fields[4])
	at, _ := strconv.ParseInt(fields[6], 10, 64)

	return media.HistoryEntry{
		ID:          fields[0],
		Title:       fields[1],
		Extractor:   fields[2],
		Type:        resultType,
		Entries:     entries,
		URL:         fields[5],
		ExtractedAt: at,
	}, nil
}

var fieldCleaner = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// formatLine converts a HistoryEntry to a TSV line.
func formatLine(e media.HistoryEntry) string {
	return strings.Join([]string{
		fieldCleaner.Replace(e.ID),
		fieldCleaner.Replace(e.Title),
		e.Extractor,
		e.Type.String(),
		strconv.Itoa(e.Entries),
		fieldCleaner.Replace(e.URL),
		strconv.FormatInt(e.ExtractedAt, 10),
	}, "\t")
}
