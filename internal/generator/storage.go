package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-garden/pkg/storage"
)

// artifactWriter abstracts storage provider specifics for generator outputs.
type artifactWriter interface {
	EnsureDir(ctx context.Context, path string) error
	WriteFile(ctx context.Context, req storage.WriteRequest) error
}

func newArtifactWriter(provider storage.Provider) artifactWriter {
	if provider == nil {
		return noopWriter{}
	}
	return &storageWriter{provider: provider}
}

type storageWriter struct {
	provider storage.Provider
}

func (w *storageWriter) EnsureDir(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" || path == "." {
		return nil
	}
	return w.provider.EnsureDir(ctx, path)
}

func (w *storageWriter) WriteFile(ctx context.Context, req storage.WriteRequest) error {
	if req.Content == nil {
		return errors.New("generator: write requires content reader")
	}
	if strings.TrimSpace(req.Path) == "" {
		return errors.New("generator: write requires path")
	}
	if req.Metadata == nil {
		req.Metadata = map[string]string{}
	}
	return w.provider.Write(ctx, req)
}

type noopWriter struct{}

func (noopWriter) EnsureDir(context.Context, string) error { return nil }

func (noopWriter) WriteFile(context.Context, storage.WriteRequest) error { return nil }
