package garden

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-garden/internal/di"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/pkg/storage"
)

type moduleRenderer struct{}

func (moduleRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return "<html><body></body></html>", nil
}

func (r moduleRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return r.Render(name, data, out...)
}

func (moduleRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return templateContent, nil
}

func (moduleRenderer) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (moduleRenderer) GlobalContext(any) error { return nil }

func moduleContentFS() fstest.MapFS {
	return fstest.MapFS{
		"experience/acme.md": &fstest.MapFile{Data: []byte(`---
title: Acme Corp
logo: /assets/img/acme.svg
description: Platform engineering.
startDate: 2022-01-10
current: true
---
Platform work.
`)},
		"posts/first.md": &fstest.MapFile{Data: []byte(`---
title: First Post
description: The first note in the garden.
publishedAt: 2025-02-14
tags: [go]
---
Hello.
`)},
		"projects/garden.md": &fstest.MapFile{Data: []byte(`---
title: Garden
description: A digital garden generator.
url: https://example.com/garden
featured: true
---
A digital garden.
`)},
	}
}

func newTestModule(t *testing.T, cfg Config, opts ...di.Option) (*Module, *storage.MemoryProvider) {
	t.Helper()
	store := storage.NewMemory()
	base := []di.Option{
		di.WithContentFS(moduleContentFS()),
		di.WithTemplate(moduleRenderer{}),
		di.WithStorage(store),
	}
	module, err := New(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return module, store
}

func TestModuleLoadsLibrary(t *testing.T) {
	module, _ := newTestModule(t, DefaultConfig())

	library, err := module.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(library.Experiences) != 1 || len(library.Posts) != 1 || len(library.Projects) != 1 {
		t.Fatalf("unexpected library sizes: %d/%d/%d",
			len(library.Experiences), len(library.Posts), len(library.Projects))
	}
	if !library.Experiences[0].Ongoing() {
		t.Fatal("expected ongoing experience")
	}
}

func TestModuleBuildWritesSite(t *testing.T) {
	module, store := newTestModule(t, DefaultConfig())

	result, err := module.Build(context.Background(), BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.PagesBuilt == 0 {
		t.Fatal("expected pages built")
	}
	if store.Contents("dist/index.html") == nil {
		t.Fatal("expected home page in output")
	}
	if store.Contents("dist/blog/first-post/index.html") == nil {
		t.Fatalf("expected post page in output, wrote %v", store.Written())
	}
}

func TestModuleBuildWithPagesTarget(t *testing.T) {
	cfg := PagesConfig("portfolio")
	module, store := newTestModule(t, cfg)

	if _, err := module.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if store.Contents("dist/.nojekyll") == nil {
		t.Fatal("expected .nojekyll marker for pages target")
	}
}

func TestModuleBuildWithEdgeTarget(t *testing.T) {
	// The edge preset carries analytics by default; only the site id is
	// deployment specific.
	cfg := EdgeConfig()
	cfg.Deploy.Analytics.SiteID = "garden-1"
	module, store := newTestModule(t, cfg)

	if _, err := module.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}
	manifest := store.Contents("dist/deploy.json")
	if manifest == nil {
		t.Fatal("expected deploy.json for edge target")
	}
	if !strings.Contains(string(manifest), "analytics") {
		t.Fatal("expected analytics block in deploy config")
	}
	home := string(store.Contents("dist/index.html"))
	if !strings.Contains(home, "/_garden/insights.js") {
		t.Fatalf("expected analytics snippet injected into pages, got %s", home)
	}
}

func TestModuleCleanRemovesOutput(t *testing.T) {
	module, store := newTestModule(t, DefaultConfig())

	if _, err := module.Build(context.Background(), BuildOptions{}); err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := module.Clean(context.Background()); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if store.Contents("dist/index.html") != nil {
		t.Fatal("expected output removed after clean")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := New(cfg); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestModuleGeneratorDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Generator = false
	module, _ := newTestModule(t, cfg)

	if _, err := module.Build(context.Background(), BuildOptions{}); !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}
