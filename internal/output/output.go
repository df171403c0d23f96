// Package output renders extraction results for the command line.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/grafov/m3u8"
	"gopkg.in/yaml.v3"

	"embedscout/internal/media"
)

// Formats lists the accepted values of Write's format argument.
var Formats = []string{"json", "yaml", "m3u"}

// Write renders res to w in the named format.
func Write(w io.Writer, format string, res *media.Result) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "m3u":
		return writeM3U(w, res)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

type item struct {
	uri   string
	title string
}

// items flattens a result into playable locators, nested playlists included.
func items(res *media.Result) []item {
	switch res.Type {
	case media.ResultRecord:
		return []item{{uri: res.Record.URL, title: res.Record.Title}}
	case media.ResultReference:
		return []item{{uri: res.Reference.URL, title: res.Reference.Platform}}
	default:
		return playlistItems(res.Playlist)
	}
}

func playlistItems(pl *media.Playlist) []item {
	var out []item
	for _, e := range pl.Entries {
		switch e.Kind() {
		case media.EntryRecord:
			out = append(out, item{uri: e.Record.URL, title: e.Record.Title})
		case media.EntryPlaylist:
			out = append(out, playlistItems(e.Playlist)...)
		default:
			out = append(out, item{uri: e.Reference.URL, title: e.Reference.Platform})
		}
	}
	return out
}

// writeM3U renders the result's locators as an extended M3U playlist.
// Durations are unknown and written as zero.
func writeM3U(w io.Writer, res *media.Result) error {
	list := items(res)

	capacity := uint(len(list))
	if capacity == 0 {
		capacity = 1
	}
	p, err := m3u8.NewMediaPlaylist(0, capacity)
	if err != nil {
		return fmt.Errorf("creating m3u playlist: %w", err)
	}
	for _, it := range list {
		if err := p.Append(it.uri, 0, extinfTitle(it.title)); err != nil {
			return fmt.Errorf("adding %s: %w", it.uri, err)
		}
	}
	p.Close()

	_, err = io.Copy(w, p.Encode())
	return err
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// extinfTitle keeps a title on its #EXTINF line.
func extinfTitle(title string) string {
	return lineBreaks.Replace(title)
}
