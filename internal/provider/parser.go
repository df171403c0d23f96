package provider

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageDescriptor is the page-level title and description of a document.
type PageDescriptor struct {
	Title       string
	HasTitle    bool
	Description *string
}

// describePage reads the Open Graph title and description of a page, falling
// back to <title> and <meta name="description"> when the page has no og tags.
// An empty og:title counts as missing.
func describePage(page string) PageDescriptor {
	var d PageDescriptor

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return d
	}

	og := parseMeta(doc)

	if title := og["og:title"]; title != "" {
		d.Title, d.HasTitle = title, true
	} else if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		d.Title, d.HasTitle = title, true
	}

	if desc, ok := og["og:description"]; ok {
		d.Description = &desc
	} else if desc, ok := og["description"]; ok {
		d.Description = &desc
	}

	return d
}

// parseMeta collects the content of <meta> tags keyed by their property or
// name attribute. The first occurrence of a key wins.
func parseMeta(doc *goquery.Document) map[string]string {
	meta := make(map[string]string)

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		key, exists := s.Attr("property")
		if !exists {
			key, exists = s.Attr("name")
		}
		if !exists {
			return
		}

		content, exists := s.Attr("content")
		if !exists {
			return
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if _, seen := meta[key]; seen {
			return
		}
		meta[key] = strings.TrimSpace(content)
	})

	return meta
}
