package platform

import "regexp"

var (
	facebookIframeRe = regexp.MustCompile(
		`<iframe[^>]+?src=(?:"(https?://www\.facebook\.com/(?:video/embed|plugins/video\.php)[^"]+)"` +
			`|'(https?://www\.facebook\.com/(?:video/embed|plugins/video\.php)[^']+)')`)

	// Facebook API embeds: <div class="fb-video" data-href="...">
	facebookDivRe = regexp.MustCompile(
		`<div[^>]+class=["'][^"']*\bfb-(?:post|video)\b[^"']*["'][^>]+` +
			`data-href=(?:"((?:https?:)?//(?:www\.)?facebook\.com/[^"]+)"|'((?:https?:)?//(?:www\.)?facebook\.com/[^']+)')`)
)

// Facebook finds embedded Facebook videos and posts.
type Facebook struct{}

func (Facebook) Name() string { return "facebook" }

func (Facebook) Links(page string) []string {
	return scan(page, facebookIframeRe, facebookDivRe)
}
