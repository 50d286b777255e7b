package di

import (
	"context"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-garden/internal/deploy"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/internal/logging/gologger"
	"github.com/goliatone/go-garden/internal/runtimeconfig"
	"github.com/goliatone/go-garden/pkg/storage"
)

type containerRenderer struct{}

func (containerRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return "<html></html>", nil
}

func (r containerRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return r.Render(name, data, out...)
}

func (containerRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return templateContent, nil
}

func (containerRenderer) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (containerRenderer) GlobalContext(any) error { return nil }

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/hello.md": &fstest.MapFile{Data: []byte(`---
title: Hello
description: A first note.
publishedAt: 2025-01-05
---
Body.
`)},
	}
}

func testContainer(t *testing.T, mutate func(*runtimeconfig.Config), opts ...Option) *Container {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	base := []Option{
		WithContentFS(contentFS()),
		WithTemplate(containerRenderer{}),
		WithStorage(storage.NewMemory()),
	}
	container, err := NewContainer(cfg, append(base, opts...)...)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	return container
}

func TestNewContainerResolvesServices(t *testing.T) {
	container := testContainer(t, nil)

	if container.LibraryService() == nil {
		t.Fatal("expected library service")
	}
	if container.GeneratorService() == nil {
		t.Fatal("expected generator service")
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected logger provider")
	}

	library, err := container.LibraryService().Load(context.Background())
	if err != nil {
		t.Fatalf("load library: %v", err)
	}
	if len(library.Posts) != 1 {
		t.Fatalf("expected one post, got %d", len(library.Posts))
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = ""
	if _, err := NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrContentDirRequired) {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestNewContainerDisablesGeneratorByFeatureGate(t *testing.T) {
	container := testContainer(t, func(cfg *runtimeconfig.Config) {
		cfg.Features.Generator = false
	})

	_, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
}

func TestNewContainerResolvesDeployTarget(t *testing.T) {
	container := testContainer(t, func(cfg *runtimeconfig.Config) {
		cfg.Deploy.Target = deploy.TargetPages
		cfg.Deploy.BasePath = "/portfolio"
	})

	target := container.DeployTarget()
	if target == nil {
		t.Fatal("expected deploy target")
	}
	if target.Name() != deploy.TargetPages {
		t.Fatalf("expected pages target, got %q", target.Name())
	}
	if target.BasePath() != "/portfolio" {
		t.Fatalf("expected base path mapped, got %q", target.BasePath())
	}
}

func TestNewContainerWithoutDeployTarget(t *testing.T) {
	container := testContainer(t, nil)
	if container.DeployTarget() != nil {
		t.Fatal("expected nil deploy target when none configured")
	}
}

func TestNewContainerUsesGoLoggerProvider(t *testing.T) {
	container := testContainer(t, func(cfg *runtimeconfig.Config) {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Format = "json"
	})

	provider, ok := container.LoggerProvider().(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.LoggerProvider())
	}
	if provider.GetLogger("garden.test") == nil {
		t.Fatal("expected logger from provider")
	}
}

func TestNewContainerPerformsBuild(t *testing.T) {
	store := storage.NewMemory()
	container := testContainer(t, nil, WithStorage(store))

	result, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.PagesBuilt == 0 {
		t.Fatal("expected pages to be built")
	}
	if store.Contents("dist/index.html") == nil {
		t.Fatal("expected home page written to storage")
	}
}
