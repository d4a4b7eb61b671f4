package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"

	siteconf "github.com/TomAugspurger/TomAugspurger.github.io"
)

func options(format string, exts ...string) siteconf.MarkdownOptions {
	m := siteconf.MarkdownOptions{
		Extensions:   map[string]map[string]any{},
		OutputFormat: format,
	}
	for _, e := range exts {
		m.Extensions[e] = map[string]any{}
	}
	return m
}

func render(t *testing.T, opts siteconf.MarkdownOptions, src string) (string, map[string]any) {
	t.Helper()
	md, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	html, metadata, err := Render(md, src)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return html, metadata
}

const table = "| a | b |\n|---|---|\n| 1 | 2 |\n"

func TestExtraEnablesTables(t *testing.T) {
	got, _ := render(t, options("html5", "markdown.extensions.extra"), table)
	if !strings.Contains(got, "<table>") {
		t.Errorf("expected table markup, got %q", got)
	}

	got, _ = render(t, options("html5"), table)
	if strings.Contains(got, "<table>") {
		t.Errorf("expected no table without extra, got %q", got)
	}
}

func TestExtraEnablesFootnotes(t *testing.T) {
	got, _ := render(t, options("html5", "extra"), "text[^1]\n\n[^1]: the note\n")
	if !strings.Contains(got, "footnote") {
		t.Errorf("expected footnote markup, got %q", got)
	}
}

func TestTOCAddsHeadingIDs(t *testing.T) {
	got, _ := render(t, options("html5", "toc"), "# Method Chaining\n")
	if !strings.Contains(got, `<h1 id="method-chaining">`) {
		t.Errorf("expected heading id, got %q", got)
	}

	got, _ = render(t, options("html5"), "# Method Chaining\n")
	if strings.Contains(got, "id=") {
		t.Errorf("expected no heading id without toc, got %q", got)
	}
}

func TestMetaReadsMetadataBlock(t *testing.T) {
	src := "---\ntitle: Modern Pandas\ntags: [pandas]\n---\nBody text\n"
	got, metadata := render(t, options("html5", "meta"), src)
	if metadata["title"] != "Modern Pandas" {
		t.Errorf("title = %v, want %q", metadata["title"], "Modern Pandas")
	}
	if strings.Contains(got, "Modern Pandas") {
		t.Errorf("metadata leaked into body: %q", got)
	}
	if !strings.Contains(got, "<p>Body text</p>") {
		t.Errorf("expected body paragraph, got %q", got)
	}
}

func TestOutputFormat(t *testing.T) {
	got, _ := render(t, options("html5"), "***\n")
	if !strings.Contains(got, "<hr>") {
		t.Errorf("html5: expected <hr>, got %q", got)
	}
	got, _ = render(t, options("xhtml"), "***\n")
	if !strings.Contains(got, "<hr />") {
		t.Errorf("xhtml: expected <hr />, got %q", got)
	}
}

func TestNewRejectsUnknownInput(t *testing.T) {
	if _, err := New(options("html5", "codehilite")); err == nil {
		t.Error("expected error for unknown extension")
	}
	if _, err := New(options("html4")); err == nil {
		t.Error("expected error for unknown output format")
	}
}

func TestDefaultConfigurationEngine(t *testing.T) {
	md, err := New(siteconf.Default().Markdown)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	html, _, err := Render(md, "# Tidy Data\n\n"+table)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(html, `id="tidy-data"`) || !strings.Contains(html, "<table>") {
		t.Errorf("unexpected output %q", html)
	}
}

func TestComponentRenders(t *testing.T) {
	md, err := New(options("html5", "extra"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Component(md, "**bold**").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := buf.String(); !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("Component output = %q", got)
	}
}

func TestExtraEnablesDefinitionListsAndAttributes(t *testing.T) {
	got, _ := render(t, options("html5", "extra"), "Term\n: definition\n")
	if !strings.Contains(got, "<dl>") {
		t.Errorf("expected definition list, got %q", got)
	}

	got, _ = render(t, options("html5", "extra"), "# Heading {#custom-id}\n")
	if !strings.Contains(got, `id="custom-id"`) {
		t.Errorf("expected heading attribute id, got %q", got)
	}

	got, _ = render(t, options("html5"), "Term\n: definition\n")
	if strings.Contains(got, "<dl>") {
		t.Errorf("expected no definition list without extra, got %q", got)
	}
}

func TestMetaIgnoresUnfencedHeaderLines(t *testing.T) {
	got, metadata := render(t, options("html5", "meta"), "Title: Modern Pandas\n\nBody text\n")
	if metadata["Title"] != nil || metadata["title"] != nil {
		t.Errorf("unfenced header read as metadata: %v", metadata)
	}
	if !strings.Contains(got, "Title: Modern Pandas") {
		t.Errorf("unfenced header should stay in the body, got %q", got)
	}
}
