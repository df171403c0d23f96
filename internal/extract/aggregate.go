package extract

import (
	"embedscout/internal/media"
	"embedscout/internal/platform"
)

// Strategy discovers references in a page. Output order is discovery order.
type Strategy interface {
	References(page string) []media.Reference
}

// EmbedStrategy collects the embed links of one or more third-party platforms.
// Links of an earlier extractor precede those of a later one.
type EmbedStrategy struct {
	Extractors []platform.LinkExtractor
}

// References returns every platform link in the page.
func (s EmbedStrategy) References(page string) []media.Reference {
	var refs []media.Reference
	for _, le := range s.Extractors {
		for _, link := range le.Links(page) {
			refs = append(refs, media.Reference{URL: link, Platform: le.Name()})
		}
	}
	return refs
}

// Aggregator runs its strategies in a fixed order and concatenates their
// output. Nothing is deduplicated across strategies.
type Aggregator struct {
	strategies []Strategy
}

// NewAggregator fixes the strategy order: structured fragments, then platform
// embeds, then heuristic anchors. Any of them may be nil.
func NewAggregator(fragments, embeds, anchors Strategy) *Aggregator {
	a := &Aggregator{}
	for _, s := range []Strategy{fragments, embeds, anchors} {
		if s != nil {
			a.strategies = append(a.strategies, s)
		}
	}
	return a
}

// Collect returns the references of all strategies, earlier strategies first.
func (a *Aggregator) Collect(page string) []media.Reference {
	var refs []media.Reference
	for _, s := range a.strategies {
		refs = append(refs, s.References(page)...)
	}
	return refs
}

// Entries wraps collected references as playlist entries.
func (a *Aggregator) Entries(page string) []media.Entry {
	refs := a.Collect(page)
	entries := make([]media.Entry, 0, len(refs))
	for i := range refs {
		entries = append(entries, media.Entry{Reference: &refs[i]})
	}
	return entries
}
