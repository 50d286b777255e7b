package render

import (
	"strings"
	"testing"
	"testing/fstest"
)

func templateFixture() fstest.MapFS {
	return fstest.MapFS{
		"home.html": &fstest.MapFile{Data: []byte(`<h1>{{.Title}}</h1>{{safeHTML .Body}}`)},
		"post.tmpl": &fstest.MapFile{Data: []byte(`<article>{{.Title}}</article>`)},
		"notes.txt": &fstest.MapFile{Data: []byte(`ignored`)},
	}
}

func TestRenderTemplateByName(t *testing.T) {
	renderer := NewRendererFS(templateFixture())

	out, err := renderer.RenderTemplate("home.html", map[string]any{
		"Title": "Garden",
		"Body":  "<p>welcome</p>",
	})
	if err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if !strings.Contains(out, "<h1>Garden</h1>") {
		t.Fatalf("unexpected output %q", out)
	}
	if !strings.Contains(out, "<p>welcome</p>") {
		t.Fatalf("expected safeHTML to pass markup through, got %q", out)
	}
}

func TestRenderTemplateWithoutExtension(t *testing.T) {
	renderer := NewRendererFS(templateFixture())

	if _, err := renderer.RenderTemplate("home", map[string]any{"Title": "x"}); err != nil {
		t.Fatalf("expected extension fallback, got %v", err)
	}
	if _, err := renderer.RenderTemplate("post", map[string]any{"Title": "x"}); err != nil {
		t.Fatalf("expected .tmpl fallback, got %v", err)
	}
}

func TestRenderTemplateUnknownName(t *testing.T) {
	renderer := NewRendererFS(templateFixture())
	if _, err := renderer.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}

func TestRenderTemplateEscapesByDefault(t *testing.T) {
	renderer := NewRendererFS(fstest.MapFS{
		"page.html": &fstest.MapFile{Data: []byte(`{{.Value}}`)},
	})
	out, err := renderer.RenderTemplate("page", map[string]any{"Value": "<script>x</script>"})
	if err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected escaped output, got %q", out)
	}
}

func TestRenderString(t *testing.T) {
	renderer := NewRendererFS(templateFixture())
	out, err := renderer.RenderString(`hello {{.Name}}`, map[string]any{"Name": "world"})
	if err != nil {
		t.Fatalf("RenderString returned error: %v", err)
	}
	if out != "hello world" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	renderer := NewRendererFS(fstest.MapFS{
		"page.html": &fstest.MapFile{Data: []byte(`{{upper .Value}}`)},
	})
	if err := renderer.RegisterFilter("upper", func(input any, _ any) (any, error) {
		return strings.ToUpper(input.(string)), nil
	}); err != nil {
		t.Fatalf("RegisterFilter returned error: %v", err)
	}

	out, err := renderer.RenderTemplate("page", map[string]any{"Value": "loud"})
	if err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if out != "LOUD" {
		t.Fatalf("unexpected output %q", out)
	}

	if err := renderer.RegisterFilter("late", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected registration after parse to fail")
	}
}

func TestGlobalContext(t *testing.T) {
	renderer := NewRendererFS(fstest.MapFS{
		"page.html": &fstest.MapFile{Data: []byte(`{{(global).Site}}`)},
	})
	if err := renderer.GlobalContext(map[string]any{"Site": "Garden"}); err != nil {
		t.Fatalf("GlobalContext returned error: %v", err)
	}
	out, err := renderer.RenderTemplate("page", nil)
	if err != nil {
		t.Fatalf("RenderTemplate returned error: %v", err)
	}
	if out != "Garden" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNoTemplatesFound(t *testing.T) {
	renderer := NewRendererFS(fstest.MapFS{
		"notes.txt": &fstest.MapFile{Data: []byte(`ignored`)},
	})
	if _, err := renderer.RenderTemplate("page", nil); err == nil {
		t.Fatalf("expected error when no templates exist")
	}
}
