package garden

import (
	"context"

	"github.com/goliatone/go-garden/internal/collections"
	"github.com/goliatone/go-garden/internal/di"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/pkg/interfaces"
)

// LibraryService exports the content model loader contract for consumers of the garden package.
type LibraryService = *collections.Service

// Library exports the validated content library.
type Library = collections.Library

// Experience exports the experience entry record.
type Experience = collections.Experience

// Post exports the blog post record.
type Post = collections.Post

// Project exports the project entry record.
type Project = collections.Project

// GeneratorService exports the static site generator contract.
type GeneratorService = generator.Service

// BuildOptions exports the generator build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the generator build report.
type BuildResult = generator.BuildResult

// PageKind exports the generator page taxonomy.
type PageKind = generator.PageKind

// Module represents the top level garden runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a garden module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Library returns the configured content model loader.
func (m *Module) Library() LibraryService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LibraryService()
}

// Generator returns the configured generator service.
func (m *Module) Generator() GeneratorService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.GeneratorService()
}

// Logger returns a named logger from the module's provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return m.container.LoggerProvider().GetLogger(name)
}

// Load reads and validates the content tree, returning the assembled library.
func (m *Module) Load(ctx context.Context) (*Library, error) {
	return m.Library().Load(ctx)
}

// Build runs a full site build with the module's generator.
func (m *Module) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	return m.Generator().Build(ctx, opts)
}

// Clean removes generated artifacts from the configured output directory.
func (m *Module) Clean(ctx context.Context) error {
	return m.Generator().Clean(ctx)
}
