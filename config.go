package siteconf

import (
	"maps"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// SiteConfig holds the site-wide settings read by the static-site generator.
type SiteConfig struct {
	Author   string `yaml:"author"`    // Author name for templates and JSON-LD
	SiteName string `yaml:"site_name"` // Site name shown in page titles
	SiteURL  string `yaml:"site_url"`  // Canonical absolute URL

	ContentPath string `yaml:"content_path"` // Root directory scanned for content

	Timezone        string `yaml:"timezone"`         // IANA identifier (default "UTC")
	DefaultLanguage string `yaml:"default_language"` // Locale code (default "en")

	Theme          string `yaml:"theme"`           // External theme package name
	StylesheetFile string `yaml:"stylesheet_file"` // Active stylesheet (default "main.css")

	// StaticPaths are copied verbatim into the output tree, in order.
	// Duplicates are kept.
	StaticPaths []string `yaml:"static_asset_paths"`

	Feeds          Feeds `yaml:"feeds"`
	PaginationSize int   `yaml:"pagination_size"`
	RelativeURLs   bool  `yaml:"relative_urls"`

	// ExtraPathMetadata overrides the output location of individual static files.
	ExtraPathMetadata map[string]PathMetadata `yaml:"extra_path_metadata"`

	Markdown MarkdownOptions `yaml:"markdown"`
}

// PathMetadata is the destination record attached to a source path.
type PathMetadata struct {
	Path string `yaml:"path"`
}

// MarkdownOptions selects the active Markdown syntax extensions and the
// output flavour.
type MarkdownOptions struct {
	// Extensions maps an extension name to its options. Every supported
	// extension is a flag, so the option maps are empty.
	Extensions   map[string]map[string]any `yaml:"extension_configs"`
	OutputFormat string                    `yaml:"output_format"`
}

// Output formats accepted by MarkdownOptions.OutputFormat.
const (
	OutputHTML5 = "html5"
	OutputXHTML = "xhtml"
)

const extensionPrefix = "markdown.extensions."

// Markdown extensions understood by the markdown package.
const (
	ExtensionExtra = "extra"
	ExtensionMeta  = "meta"
	ExtensionTOC   = "toc"
)

var knownExtensions = []string{ExtensionExtra, ExtensionMeta, ExtensionTOC}

// ExtensionName strips the "markdown.extensions." prefix, so both spellings
// of an extension map to the same name.
func ExtensionName(name string) string {
	return strings.TrimPrefix(name, extensionPrefix)
}

// EnabledExtensions returns the sorted short names of the enabled extensions.
func (m MarkdownOptions) EnabledExtensions() []string {
	names := make([]string, 0, len(m.Extensions))
	for name := range m.Extensions {
		names = append(names, ExtensionName(name))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Enabled reports whether the named extension is active.
func (m MarkdownOptions) Enabled(name string) bool {
	return slices.Contains(m.EnabledExtensions(), ExtensionName(name))
}

// HTML5 reports whether output is HTML5 rather than XHTML.
func (m MarkdownOptions) HTML5() bool {
	return m.OutputFormat == OutputHTML5
}

func (c *SiteConfig) setDefaults() {
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.StylesheetFile == "" {
		c.StylesheetFile = "main.css"
	}
	if c.Markdown.OutputFormat == "" {
		c.Markdown.OutputFormat = OutputHTML5
	}
}

// Clone returns a deep copy of c.
func (c SiteConfig) Clone() SiteConfig {
	out := c
	out.StaticPaths = slices.Clone(c.StaticPaths)
	out.Feeds = c.Feeds.clone()
	out.ExtraPathMetadata = maps.Clone(c.ExtraPathMetadata)
	if c.Markdown.Extensions != nil {
		out.Markdown.Extensions = make(map[string]map[string]any, len(c.Markdown.Extensions))
		for name, opts := range c.Markdown.Extensions {
			out.Markdown.Extensions[name] = maps.Clone(opts)
		}
	}
	return out
}

// Location resolves the configured timezone.
func (c SiteConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Language parses the default language as a BCP 47 tag.
func (c SiteConfig) Language() (language.Tag, error) {
	return language.Parse(c.DefaultLanguage)
}

// Destination returns where a static file ends up in the output tree,
// honouring ExtraPathMetadata overrides.
func (c SiteConfig) Destination(src string) string {
	if meta, ok := c.ExtraPathMetadata[src]; ok && meta.Path != "" {
		return meta.Path
	}
	return src
}

// StylesheetPath is the output path of the active stylesheet inside the theme.
func (c SiteConfig) StylesheetPath() string {
	return "theme/css/" + c.StylesheetFile
}
