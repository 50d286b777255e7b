package storage

import (
	"context"
	"io"
	"time"
)

// Category labels the kind of artifact routed through a provider so
// implementations can apply per-category behaviour (metrics, retention).
type Category string

const (
	CategoryPage     Category = "page"
	CategoryAsset    Category = "asset"
	CategorySitemap  Category = "sitemap"
	CategoryRobots   Category = "robots"
	CategoryFeed     Category = "feed"
	CategoryManifest Category = "manifest"
	CategoryDeploy   Category = "deploy"
)

// WriteRequest describes a single artifact write. Paths are slash-separated
// and relative to the provider root.
type WriteRequest struct {
	Path        string
	Content     io.Reader
	Size        int64
	Category    Category
	ContentType string
	Checksum    string
	Metadata    map[string]string
}

// ArtifactInfo describes a stored artifact for listing operations.
type ArtifactInfo struct {
	Path     string
	Size     int64
	Modified time.Time
}

// Provider encapsulates the artifact tree operations required by the
// generator and deploy adapters. Implementations must tolerate repeated
// EnsureDir calls and missing paths on Read/Remove.
type Provider interface {
	EnsureDir(ctx context.Context, path string) error
	Write(ctx context.Context, req WriteRequest) error
	Read(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
	List(ctx context.Context, prefix string) ([]ArtifactInfo, error)
}

// Reloadable providers can point at a new root at runtime. Implementations
// that do not support reloads may omit this interface.
type Reloadable interface {
	Reload(ctx context.Context, root string) error
}
