// Package markdown builds a Markdown engine whose syntax extensions follow
// the site configuration, and wraps it as a templ component.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	siteconf "github.com/TomAugspurger/TomAugspurger.github.io"
)

// New returns a goldmark engine configured from opts.
//
//	extra  tables, footnotes, definition lists and {#id .class} attributes
//	meta   YAML metadata block fenced by "---" lines at the top of a document;
//	       unfenced "Key: value" header lines are not read as metadata
//	toc    ids on every heading so a table of contents can link to them
//
// An xhtml output format switches the renderer to self-closing tags.
func New(opts siteconf.MarkdownOptions) (goldmark.Markdown, error) {
	var (
		exts       []goldmark.Extender
		parserOpts []parser.Option
		renderOpts []goldmark.Option
	)
	for _, name := range opts.EnabledExtensions() {
		switch name {
		case siteconf.ExtensionExtra:
			exts = append(exts, extension.Table, extension.Footnote, extension.DefinitionList)
			parserOpts = append(parserOpts, parser.WithAttribute())
		case siteconf.ExtensionMeta:
			exts = append(exts, meta.Meta)
		case siteconf.ExtensionTOC:
			parserOpts = append(parserOpts, parser.WithAutoHeadingID())
		default:
			return nil, fmt.Errorf("markdown: unknown extension %q", name)
		}
	}

	switch opts.OutputFormat {
	case siteconf.OutputHTML5, "":
	case siteconf.OutputXHTML:
		renderOpts = append(renderOpts, goldmark.WithRendererOptions(html.WithXHTML()))
	default:
		return nil, fmt.Errorf("markdown: unknown output format %q", opts.OutputFormat)
	}

	options := []goldmark.Option{
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(parserOpts...),
	}
	return goldmark.New(append(options, renderOpts...)...), nil
}

// Render converts source to HTML and returns the metadata block, which is
// nil unless the meta extension is active and the document has one.
func Render(md goldmark.Markdown, source string) (string, map[string]any, error) {
	var buf bytes.Buffer
	pc := parser.NewContext()
	if err := md.Convert([]byte(source), &buf, parser.WithContext(pc)); err != nil {
		return "", nil, err
	}
	return buf.String(), meta.Get(pc), nil
}

// Component returns a templ.Component that renders source through md.
func Component(md goldmark.Markdown, source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return md.Convert([]byte(source), w)
	})
}
