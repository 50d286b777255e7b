package di

import (
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-garden/internal/collections"
	"github.com/goliatone/go-garden/internal/deploy"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/internal/logging"
	"github.com/goliatone/go-garden/internal/logging/gologger"
	"github.com/goliatone/go-garden/internal/markdown"
	"github.com/goliatone/go-garden/internal/render"
	"github.com/goliatone/go-garden/internal/runtimeconfig"
	"github.com/goliatone/go-garden/pkg/interfaces"
	"github.com/goliatone/go-garden/pkg/storage"
)

// Container wires module dependencies. Services are resolved eagerly so a
// misconfigured module fails at construction instead of mid-build.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	storage        storage.Provider
	renderer       interfaces.TemplateRenderer
	parser         interfaces.MarkdownParser
	contentFS      fs.FS
	assetsFS       fs.FS
	deployTarget   generator.DeployTarget

	librarySvc   *collections.Service
	generatorSvc generator.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider resolved from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithStorage overrides the artifact storage provider. Defaults to the
// filesystem provider rooted at the working directory.
func WithStorage(provider storage.Provider) Option {
	return func(c *Container) {
		c.storage = provider
	}
}

// WithTemplate overrides the template renderer. Defaults to the html/template
// renderer over the configured templates directory.
func WithTemplate(renderer interfaces.TemplateRenderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithParser overrides the Markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithContentFS overrides the content filesystem (tests, embedded content).
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// WithAssetsFS overrides the static asset filesystem.
func WithAssetsFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.assetsFS = fsys
	}
}

// WithDeployTarget overrides the deploy adapter resolved from configuration.
func WithDeployTarget(target generator.DeployTarget) Option {
	return func(c *Container) {
		c.deployTarget = target
	}
}

// NewContainer validates the configuration and resolves every service the
// module exposes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureDeployTarget(); err != nil {
		return nil, err
	}
	if err := c.configureLibrary(); err != nil {
		return nil, err
	}
	if err := c.configureGenerator(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoggerProvider returns the resolved logger provider (never nil).
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// StorageProvider returns the artifact storage backend.
func (c *Container) StorageProvider() storage.Provider {
	return c.storage
}

// TemplateRenderer returns the configured renderer, nil when the generator is disabled
// and none was injected.
func (c *Container) TemplateRenderer() interfaces.TemplateRenderer {
	return c.renderer
}

// DeployTarget returns the hosting adapter, nil when no target is configured.
func (c *Container) DeployTarget() generator.DeployTarget {
	return c.deployTarget
}

// LibraryService returns the content model loader.
func (c *Container) LibraryService() *collections.Service {
	return c.librarySvc
}

// GeneratorService returns the static site generator.
func (c *Container) GeneratorService() generator.Service {
	return c.generatorSvc
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		c.loggerProvider = noopProvider{}
		return nil
	}

	// The provider treats an empty format as console output, which suits
	// both the "console" and "gologger" provider names.
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureDeployTarget() error {
	if c.deployTarget != nil {
		return nil
	}
	target, err := deploy.ForTarget(c.Config.DeployConfigFor())
	if err != nil {
		return err
	}
	c.deployTarget = target
	return nil
}

func (c *Container) configureLibrary() error {
	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(c.Config.ParseOptionsFor())
	}

	libOpts := []collections.Option{
		collections.WithParser(c.parser),
		collections.WithLogger(logging.CollectionsLogger(c.loggerProvider)),
	}
	if c.contentFS != nil {
		libOpts = append(libOpts, collections.WithFilesystem(c.contentFS))
	}

	svc, err := collections.NewService(collections.Config{
		ContentDir:    c.Config.Content.Dir,
		Pattern:       c.Config.Content.Pattern,
		IncludeDrafts: c.Config.Content.IncludeDrafts,
		Parser:        c.Config.ParseOptionsFor(),
	}, libOpts...)
	if err != nil {
		return err
	}
	c.librarySvc = svc
	return nil
}

func (c *Container) configureGenerator() error {
	enabled := c.Config.Enabled && c.Config.Features.Generator && c.Config.Generator.Enabled
	if !enabled {
		c.generatorSvc = generator.NewDisabledService()
		return nil
	}

	if c.storage == nil {
		c.storage = storage.NewFilesystem(".")
	}
	if c.renderer == nil {
		renderer, err := render.NewRenderer(c.Config.Generator.TemplatesDir)
		if err != nil {
			return err
		}
		c.renderer = renderer
	}
	if c.assetsFS == nil {
		if dir := strings.TrimSpace(c.Config.Content.AssetsDir); dir != "" {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				c.assetsFS = os.DirFS(dir)
			}
		}
	}

	c.generatorSvc = generator.NewService(c.Config.GeneratorConfigFor(), generator.Dependencies{
		Library:  c.librarySvc,
		Renderer: c.renderer,
		Storage:  c.storage,
		Assets:   c.assetsFS,
		Deploy:   c.deployTarget,
		Logger:   logging.GeneratorLogger(c.loggerProvider),
	})
	return nil
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
