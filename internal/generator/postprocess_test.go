package generator

import (
	"strings"
	"testing"
)

func TestPrefixProcessorRewritesRootRelativeLinks(t *testing.T) {
	process := PrefixProcessor("/garden")
	if process == nil {
		t.Fatalf("expected processor for non-empty base path")
	}

	page := &RenderedPage{HTML: `<a href="/blog">B</a><img src="/images/x.png"><a href="https://other.example/page">E</a>`}
	if err := process(page); err != nil {
		t.Fatalf("processor returned error: %v", err)
	}
	if !strings.Contains(page.HTML, `href="/garden/blog"`) {
		t.Fatalf("expected href rewrite, got %s", page.HTML)
	}
	if !strings.Contains(page.HTML, `src="/garden/images/x.png"`) {
		t.Fatalf("expected src rewrite, got %s", page.HTML)
	}
	if !strings.Contains(page.HTML, `href="https://other.example/page"`) {
		t.Fatalf("absolute links must pass through, got %s", page.HTML)
	}
}

func TestPrefixProcessorIsIdempotent(t *testing.T) {
	process := PrefixProcessor("garden")
	page := &RenderedPage{HTML: `<a href="/garden/blog">B</a>`}
	if err := process(page); err != nil {
		t.Fatalf("processor returned error: %v", err)
	}
	if strings.Contains(page.HTML, "/garden/garden") {
		t.Fatalf("prefix applied twice: %s", page.HTML)
	}
}

func TestPrefixProcessorEmptyBasePath(t *testing.T) {
	if PrefixProcessor("") != nil {
		t.Fatalf("expected nil processor for empty base path")
	}
	if PrefixProcessor("/") != nil {
		t.Fatalf("expected nil processor for root base path")
	}
}

func TestSnippetProcessorInjectsBeforeBodyClose(t *testing.T) {
	process := SnippetProcessor(`<script src="/a.js"></script>`)
	page := &RenderedPage{HTML: `<html><body><p>hi</p></body></html>`}
	if err := process(page); err != nil {
		t.Fatalf("processor returned error: %v", err)
	}
	idx := strings.Index(page.HTML, `<script src="/a.js"></script>`)
	end := strings.Index(page.HTML, "</body>")
	if idx < 0 || end < 0 || idx > end {
		t.Fatalf("expected snippet before </body>, got %s", page.HTML)
	}
}

func TestSnippetProcessorAppendsWithoutBody(t *testing.T) {
	process := SnippetProcessor("<!-- deployed -->")
	page := &RenderedPage{HTML: `<p>fragment</p>`}
	if err := process(page); err != nil {
		t.Fatalf("processor returned error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(page.HTML), "<!-- deployed -->") {
		t.Fatalf("expected snippet appended, got %s", page.HTML)
	}
}

func TestMinifyHTML(t *testing.T) {
	out, err := minifyHTML("<html>  <body>\n  <p>hello</p>\n  </body>  </html>")
	if err != nil {
		t.Fatalf("minify returned error: %v", err)
	}
	if strings.Contains(out, "\n  ") {
		t.Fatalf("expected collapsed whitespace, got %q", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("content lost during minify: %q", out)
	}
}
