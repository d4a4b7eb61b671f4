package siteconf

import (
	"encoding/json"
	"net/url"
	"os"
	"path"
	"strings"
)

// JoinURL joins a base URL with path segments. A trailing slash on the last
// segment is kept, since it marks a directory-style URL.
func JoinURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	joined := path.Join(pathSegments...)
	if joined == "" || joined == "." {
		return u.String()
	}
	u.Path = path.Join("/", u.Path, joined)
	if last := pathSegments[len(pathSegments)-1]; strings.HasSuffix(last, "/") {
		u.Path += "/"
	}
	return u.String()
}

// WebsiteJSONLD returns a JSON-LD string for a WebSite schema.
func WebsiteJSONLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context":   "https://schema.org",
		"@type":      "WebSite",
		"name":       cfg.SiteName,
		"url":        JoinURL(cfg.SiteURL),
		"inLanguage": cfg.DefaultLanguage,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// TemplateVars returns the site-wide variables handed to theme templates.
// Disabled feeds are left out.
func (c SiteConfig) TemplateVars() map[string]any {
	vars := map[string]any{
		"author":           c.Author,
		"site_name":        c.SiteName,
		"site_url":         c.SiteURL,
		"default_language": c.DefaultLanguage,
		"timezone":         c.Timezone,
		"theme":            c.Theme,
		"stylesheet":       c.StylesheetPath(),
		"relative_urls":    c.RelativeURLs,
		"pagination_size":  c.PaginationSize,
		"json_ld":          WebsiteJSONLD(c),
	}
	for _, kind := range c.EnabledFeeds() {
		if u, ok := c.FeedURL(kind); ok {
			vars["feed_"+string(kind)+"_url"] = u
		}
	}
	return vars
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
