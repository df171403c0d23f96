package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"embedscout/internal/media"
	"embedscout/internal/platform"
)

// anchorAttrs holds the two attributes the anchor heuristic cares about.
// A nil field means the attribute was not on the tag.
type anchorAttrs struct {
	Href  *string
	Class *string
}

// scanAnchors visits every <a> element once and records its href and class,
// whatever order they were written in.
func scanAnchors(doc *goquery.Document) []anchorAttrs {
	var out []anchorAttrs
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		var a anchorAttrs
		if href, ok := s.Attr("href"); ok {
			a.Href = &href
		}
		if class, ok := s.Attr("class"); ok {
			a.Class = &class
		}
		out = append(out, a)
	})
	return out
}

// AnchorStrategy accepts author-written links whose href is on Domain and
// whose class contains ClassMarker.
type AnchorStrategy struct {
	Domain      *regexp.Regexp
	ClassMarker string
}

func (s AnchorStrategy) accept(a anchorAttrs) bool {
	if a.Href == nil || a.Class == nil {
		return false
	}
	return s.Domain.MatchString(*a.Href) && strings.Contains(*a.Class, s.ClassMarker)
}

// References returns the href of every qualifying anchor, in document order.
func (s AnchorStrategy) References(page string) []media.Reference {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var refs []media.Reference
	for _, a := range scanAnchors(doc) {
		if !s.accept(a) {
			continue
		}
		refs = append(refs, media.Reference{URL: *a.Href, Platform: platform.For(*a.Href)})
	}
	return refs
}
