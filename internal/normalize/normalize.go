// Package normalize converts raw strings scraped from markup into typed
// values. Every function is total: malformed input yields nil, never a panic
// or a placeholder zero.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"embedscout/internal/media"
)

// Int reads a decorated count such as "1,234,567" or "12.5K+" by keeping only
// its digits.
func Int(s string) *int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

var iso8601Re = regexp.MustCompile(
	`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:\.\d+)?(?:(Z)|([+-])(\d{2}):?(\d{2}))?$`)

// ISO8601 parses "2014-07-10T07:00:00", with optional fraction and zone.
// Date and time must be joined by "T".
// A value without a zone is taken as UTC.
func ISO8601(s string) *int64 {
	m := iso8601Re.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil
	}

	n := make([]int, 6)
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil
		}
		n[i] = v
	}
	t := time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, time.UTC)
	// time.Date normalizes overflow; reject values that were not a real instant.
	if t.Year() != n[0] || int(t.Month()) != n[1] || t.Day() != n[2] ||
		t.Hour() != n[3] || t.Minute() != n[4] || t.Second() != n[5] {
		return nil
	}

	if m[8] != "" {
		hh, _ := strconv.Atoi(m[9])
		mm, _ := strconv.Atoi(m[10])
		offset := time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute
		if m[8] == "+" {
			t = t.Add(-offset)
		} else {
			t = t.Add(offset)
		}
	}

	ts := t.Unix()
	return &ts
}

// zoneSuffixLen is the width of the "-07:00" zone segment that TimestampA drops.
const zoneSuffixLen = 6

// TimestampA parses a machine date such as "2014-07-10T07:00:00-07:00". The
// trailing zone segment is cut off unparsed, so the wall time is read as UTC.
func TimestampA(raw string) *int64 {
	if len(raw) <= zoneSuffixLen {
		return nil
	}
	return ISO8601(raw[:len(raw)-zoneSuffixLen])
}

var months = map[string]time.Month{
	"January":   time.January,
	"February":  time.February,
	"March":     time.March,
	"April":     time.April,
	"May":       time.May,
	"June":      time.June,
	"July":      time.July,
	"August":    time.August,
	"September": time.September,
	"October":   time.October,
	"November":  time.November,
	"December":  time.December,
}

// TimestampB reads a "July 10, 2014" style date as UTC midnight.
func TimestampB(month, day, year string) *int64 {
	m, ok := months[month]
	if !ok {
		return nil
	}
	d, err := strconv.Atoi(day)
	if err != nil || d <= 0 {
		return nil
	}
	y, err := strconv.Atoi(year)
	if err != nil || y <= 0 {
		return nil
	}

	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != m {
		return nil
	}
	ts := t.Unix()
	return &ts
}

var dimensionsRe = regexp.MustCompile(`_(\d+)X(\d+)\.mp4$`)

// Dimensions reads the frame size encoded as "_640X360.mp4" at the end of a
// locator. Both values are returned or neither.
func Dimensions(locator string) *media.Dimensions {
	return DimensionsExt(locator, "mp4")
}

// DimensionsExt is Dimensions for another file extension.
func DimensionsExt(locator, ext string) *media.Dimensions {
	re := dimensionsRe
	if ext != "mp4" {
		re = regexp.MustCompile(`_(\d+)X(\d+)\.` + regexp.QuoteMeta(ext) + `$`)
	}
	m := re.FindStringSubmatch(locator)
	if m == nil {
		return nil
	}
	w, err := strconv.Atoi(m[1])
	if err != nil || w <= 0 {
		return nil
	}
	h, err := strconv.Atoi(m[2])
	if err != nil || h <= 0 {
		return nil
	}
	return &media.Dimensions{Width: w, Height: h}
}
