package platform

import (
	"html"
	"regexp"
)

const youtubeEmbedURL = `(?:https?:)?//(?:www\.)?youtube(?:-nocookie)?\.com/(?:embed|v|p)/[0-9A-Za-z_-]{11}`

var youtubeEmbedRe = regexp.MustCompile(
	`(?:<iframe[^>]+?src=|data-video-url=|<embed[^>]+?src=|embedSWF\(\s*|<object[^>]+data=|new\s+SWFObject\()` +
		`(?:"(` + youtubeEmbedURL + `[^"]*)"|'(` + youtubeEmbedURL + `[^']*)')`)

// YouTube finds embedded YouTube players.
type YouTube struct{}

func (YouTube) Name() string { return "youtube" }

func (YouTube) Links(page string) []string {
	links := scan(page, youtubeEmbedRe)
	for i, l := range links {
		links[i] = html.UnescapeString(l)
	}
	return links
}
