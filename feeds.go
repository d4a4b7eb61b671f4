package siteconf

import (
	"fmt"
	"slices"
)

// FeedKind names one of the syndication feeds the generator can write.
type FeedKind string

const (
	FeedAll         FeedKind = "all"
	FeedCategory    FeedKind = "category"
	FeedTranslation FeedKind = "translation"
	FeedAuthorAtom  FeedKind = "author_atom"
	FeedAuthorRSS   FeedKind = "author_rss"
)

// FeedKinds lists every feed kind in canonical order.
var FeedKinds = []FeedKind{FeedAll, FeedCategory, FeedTranslation, FeedAuthorAtom, FeedAuthorRSS}

// FeedFormat is the syndication format of a feed.
type FeedFormat string

const (
	FormatAtom FeedFormat = "atom"
	FormatRSS  FeedFormat = "rss"
)

// ParseFeedKind converts a document key into a FeedKind.
func ParseFeedKind(s string) (FeedKind, error) {
	k := FeedKind(s)
	if !slices.Contains(FeedKinds, k) {
		return "", fmt.Errorf("unknown feed kind %q", s)
	}
	return k, nil
}

// Format returns the syndication format written for the kind.
func (k FeedKind) Format() FeedFormat {
	switch k {
	case FeedAll, FeedAuthorRSS:
		return FormatRSS
	default:
		return FormatAtom
	}
}

// Feeds maps each feed kind to its output path. A nil path (null in the
// document) disables the feed.
type Feeds map[FeedKind]*string

// FeedAt returns a pointer suitable for an enabled Feeds entry.
func FeedAt(p string) *string {
	return &p
}

// Path returns the output path of kind and whether the feed is enabled.
func (f Feeds) Path(kind FeedKind) (string, bool) {
	p, ok := f[kind]
	if !ok || p == nil {
		return "", false
	}
	return *p, true
}

// Enabled returns the enabled feed kinds in canonical order.
func (f Feeds) Enabled() []FeedKind {
	var out []FeedKind
	for _, k := range FeedKinds {
		if _, ok := f.Path(k); ok {
			out = append(out, k)
		}
	}
	return out
}

func (f Feeds) clone() Feeds {
	if f == nil {
		return nil
	}
	out := make(Feeds, len(f))
	for k, p := range f {
		if p != nil {
			out[k] = FeedAt(*p)
		} else {
			out[k] = nil
		}
	}
	return out
}

// EnabledFeeds returns the feed kinds the generator writes.
func (c SiteConfig) EnabledFeeds() []FeedKind {
	return c.Feeds.Enabled()
}

// FeedPath returns the output path of the feed and whether it is enabled.
func (c SiteConfig) FeedPath(kind FeedKind) (string, bool) {
	return c.Feeds.Path(kind)
}

// FeedURL returns the link to a feed: the bare path when RelativeURLs is
// set, otherwise the path joined onto SiteURL.
func (c SiteConfig) FeedURL(kind FeedKind) (string, bool) {
	p, ok := c.Feeds.Path(kind)
	if !ok {
		return "", false
	}
	if c.RelativeURLs {
		return p, true
	}
	return JoinURL(c.SiteURL, p), true
}
