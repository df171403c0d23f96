// Package media defines the records produced by page extraction.
package media

// ResultType reports which shape an extraction produced.
type ResultType int

const (
	ResultRecord ResultType = iota
	ResultReference
	ResultPlaylist
)

func (r ResultType) String() string {
	switch r {
	case ResultRecord:
		return "video"
	case ResultReference:
		return "url"
	case ResultPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// MarshalText renders the type by name in JSON and YAML output.
func (r ResultType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Reference points at playable content hosted elsewhere. The locator is its
// only identity; Platform is derived from the locator's host.
type Reference struct {
	URL      string `json:"url" yaml:"url"`
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// Dimensions is a frame size. Width and height are always set together.
type Dimensions struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Record is the metadata of a single media item. Nil pointers mean the page
// did not carry the field; a real zero is a pointer to 0.
type Record struct {
	ID           string      `json:"id" yaml:"id"`
	URL          string      `json:"url" yaml:"url"`
	Title        string      `json:"title" yaml:"title"`
	Description  *string     `json:"description,omitempty" yaml:"description,omitempty"`
	Timestamp    *int64      `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	ViewCount    *int64      `json:"view_count,omitempty" yaml:"view_count,omitempty"`
	CommentCount *int64      `json:"comment_count,omitempty" yaml:"comment_count,omitempty"`
	Dimensions   *Dimensions `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// Playlist aggregates the entries discovered on one page, in discovery order.
type Playlist struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Entries     []Entry `json:"entries" yaml:"entries"`
}

// EntryKind identifies the populated field of an Entry.
type EntryKind int

const (
	EntryReference EntryKind = iota
	EntryRecord
	EntryPlaylist
)

// Entry is one playlist item. Exactly one field is set.
type Entry struct {
	Reference *Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
	Record    *Record    `json:"record,omitempty" yaml:"record,omitempty"`
	Playlist  *Playlist  `json:"playlist,omitempty" yaml:"playlist,omitempty"`
}

// Kind reports which field of the entry is populated.
func (e Entry) Kind() EntryKind {
	switch {
	case e.Record != nil:
		return EntryRecord
	case e.Playlist != nil:
		return EntryPlaylist
	default:
		return EntryReference
	}
}

// Locator returns the URL an entry can be resolved from, if any.
func (e Entry) Locator() string {
	switch {
	case e.Reference != nil:
		return e.Reference.URL
	case e.Record != nil:
		return e.Record.URL
	default:
		return ""
	}
}

// Result is what an extractor returns for one page.
type Result struct {
	Type      ResultType `json:"type" yaml:"type"`
	Record    *Record    `json:"record,omitempty" yaml:"record,omitempty"`
	Reference *Reference `json:"reference,omitempty" yaml:"reference,omitempty"`
	Playlist  *Playlist  `json:"playlist,omitempty" yaml:"playlist,omitempty"`
}

// ID returns the identifier of whichever shape the result holds.
func (r *Result) ID() string {
	switch r.Type {
	case ResultRecord:
		return r.Record.ID
	case ResultPlaylist:
		return r.Playlist.ID
	default:
		return ""
	}
}

// Title returns the title of whichever shape the result holds.
func (r *Result) Title() string {
	switch r.Type {
	case ResultRecord:
		return r.Record.Title
	case ResultPlaylist:
		return r.Playlist.Title
	default:
		return ""
	}
}

// RecordResult wraps a record.
func RecordResult(rec *Record) *Result {
	return &Result{Type: ResultRecord, Record: rec}
}

// ReferenceResult wraps a bare reference.
func ReferenceResult(ref Reference) *Result {
	return &Result{Type: ResultReference, Reference: &ref}
}

// PlaylistResult wraps a playlist.
func PlaylistResult(pl *Playlist) *Result {
	return &Result{Type: ResultPlaylist, Playlist: pl}
}

// HistoryEntry is one line of the extraction history.
type HistoryEntry struct {
	ID          string     // Extracted record or playlist ID
	Title       string     // Display title
	Extractor   string     // Name of the extractor that handled the page
	Type        ResultType // Shape of the result
	Entries     int        // Number of playlist entries (0 otherwise)
	URL         string     // Page URL
	ExtractedAt int64      // Unix seconds
}
