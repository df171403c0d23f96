// Package platform finds the embed links of third-party video platforms in
// page markup and labels locators by the platform that hosts them.
package platform

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// LinkExtractor returns every embed link of one platform found in a page,
// in order of first occurrence.
type LinkExtractor interface {
	Name() string
	Links(page string) []string
}

// First returns the first link le finds in page.
func First(le LinkExtractor, page string) (string, bool) {
	links := le.Links(page)
	if len(links) == 0 {
		return "", false
	}
	return links[0], true
}

// hosts maps registrable domains to platform labels.
var hosts = []struct {
	domain string
	name   string
}{
	{"youtube.com", "youtube"},
	{"youtube-nocookie.com", "youtube"},
	{"youtu.be", "youtube"},
	{"facebook.com", "facebook"},
	{"cracked.com", "cracked"},
	{"buzzfeed.com", "buzzfeed"},
}

// For returns the platform label of a locator, or "" when the host is unknown.
func For(locator string) string {
	u, err := url.Parse(locator)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range hosts {
		if host == h.domain || strings.HasSuffix(host, "."+h.domain) {
			return h.name
		}
	}
	return ""
}

type hit struct {
	pos int
	url string
}

// scan runs each expression over page and returns the first participating
// capture of every match, ordered by position in the page.
func scan(page string, exprs ...*regexp.Regexp) []string {
	var hits []hit
	for _, re := range exprs {
		for _, loc := range re.FindAllStringSubmatchIndex(page, -1) {
			for i := 2; i+1 < len(loc); i += 2 {
				if loc[i] >= 0 {
					hits = append(hits, hit{pos: loc[0], url: page[loc[i]:loc[i+1]]})
					break
				}
			}
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.url)
	}
	return out
}
