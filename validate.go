package siteconf

import (
	"fmt"
	"slices"

	"github.com/TomAugspurger/TomAugspurger.github.io/internal/validate"
)

// Validate checks every field and reports all problems at once.
// The returned error is a validate.ValidationError.
func (c SiteConfig) Validate() error {
	v := validate.New()

	v.NotEmpty("author", c.Author)
	v.NotEmpty("site_name", c.SiteName)
	v.URL("site_url", c.SiteURL, []string{"http", "https"})
	v.RelativePath("content_path", c.ContentPath)
	v.Timezone("timezone", c.Timezone)
	v.Language("default_language", c.DefaultLanguage)
	v.NotEmpty("theme", c.Theme)
	v.NotEmpty("stylesheet_file", c.StylesheetFile)

	for i, p := range c.StaticPaths {
		v.RelativePath(fmt.Sprintf("static_asset_paths[%d]", i), p)
	}

	validateFeeds(v, c.Feeds)

	v.Positive("pagination_size", c.PaginationSize)

	for src, meta := range c.ExtraPathMetadata {
		v.RelativePath("extra_path_metadata", src)
		v.RelativePath(fmt.Sprintf("extra_path_metadata[%s].path", src), meta.Path)
	}

	validateMarkdown(v, c.Markdown)

	return v.Err()
}

func validateFeeds(v *validate.Validator, feeds Feeds) {
	for kind, p := range feeds {
		if _, err := ParseFeedKind(string(kind)); err != nil {
			v.AddError("feeds", err.Error(), string(kind))
			continue
		}
		if p != nil {
			v.RelativePath(fmt.Sprintf("feeds.%s", kind), *p)
		}
	}
	for _, kind := range FeedKinds {
		if _, ok := feeds[kind]; !ok {
			v.AddError("feeds", fmt.Sprintf("feed kind %q must be set (use null to disable)", kind), nil)
		}
	}
}

func validateMarkdown(v *validate.Validator, m MarkdownOptions) {
	v.OneOf("markdown.output_format", m.OutputFormat, []string{OutputHTML5, OutputXHTML})

	seen := make(map[string]string, len(m.Extensions))
	for name, opts := range m.Extensions {
		short := ExtensionName(name)
		if !slices.Contains(knownExtensions, short) {
			v.AddError("markdown.extension_configs", "unknown extension", name)
			continue
		}
		if prev, ok := seen[short]; ok {
			v.AddError("markdown.extension_configs",
				fmt.Sprintf("extension listed twice (%s and %s)", prev, name), name)
			continue
		}
		seen[short] = name
		if len(opts) > 0 {
			v.AddError("markdown.extension_configs", "extension takes no options", name)
		}
	}
}
