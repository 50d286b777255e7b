package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-garden/internal/deploy"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/pkg/interfaces"
)

var ErrContentDirRequired = errors.New("garden config: content directory is required")
var ErrGeneratorOutputDirRequired = errors.New("garden config: generator output directory is required when generator is enabled")
var ErrBaseURLRequired = errors.New("garden config: site base URL is required when generator is enabled")
var ErrDeployTargetUnknown = errors.New("garden config: deploy target is invalid")
var ErrAnalyticsSiteIDRequired = errors.New("garden config: analytics site id is required when analytics is enabled")
var ErrWatcherDebounceInvalid = errors.New("garden config: watcher debounce must be zero or positive")
var ErrHomeRecentPostsInvalid = errors.New("garden config: home recent posts must be zero or positive")
var ErrWorkersInvalid = errors.New("garden config: generator workers must be zero or positive")
var ErrLoggingProviderRequired = errors.New("garden config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("garden config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("garden config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("garden config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the garden module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Site      SiteConfig
	Content   ContentConfig
	Markdown  MarkdownConfig
	Generator GeneratorConfig
	Theming   ThemingConfig
	Deploy    DeployConfig
	Watcher   WatcherConfig
	Features  Features
	Logging   LoggingConfig
}

// SiteConfig carries site-wide presentation metadata.
type SiteConfig struct {
	Title       string
	Description string
	Author      string
	BaseURL     string
	BasePath    string
	// OngoingLabel replaces the end date for experience entries still in
	// progress. Defaults to "Present".
	OngoingLabel string
}

// ContentConfig captures filesystem behaviour for content ingestion.
type ContentConfig struct {
	Dir           string
	Pattern       string
	IncludeDrafts bool
	AssetsDir     string
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// GeneratorConfig captures behaviour for the static site generator.
type GeneratorConfig struct {
	Enabled          bool
	OutputDir        string
	TemplatesDir     string
	CleanBuild       bool
	Incremental      bool
	MinifyHTML       bool
	GenerateSitemap  bool
	GenerateRobots   bool
	GenerateFeeds    bool
	GenerateTagPages bool
	HomeRecentPosts  int
	Workers          int
	Templates        map[string]string
}

// ThemingConfig configures manifest-driven theme selection.
type ThemingConfig struct {
	ThemePath         string
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
	// PartialFallbacks maps partial slots to the template used when the
	// selected theme does not provide one.
	PartialFallbacks map[string]string
}

// DeployConfig selects and configures the hosting target adapter.
type DeployConfig struct {
	Target        string
	BasePath      string
	CleanURLs     bool
	TrailingSlash bool
	Analytics     AnalyticsConfig
}

// AnalyticsConfig controls the analytics snippet injected by edge deploys.
type AnalyticsConfig struct {
	Enabled  bool
	Script   string
	SiteID   string
	Endpoint string
}

// WatcherConfig controls the preview filesystem watcher.
type WatcherConfig struct {
	Enabled  bool
	Debounce time.Duration
}

// Features toggles module functionality.
type Features struct {
	Generator bool
	Watcher   bool
	Logger    bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local portfolio build.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Site: SiteConfig{
			Title:        "Digital Garden",
			BaseURL:      "http://localhost:8080",
			OngoingLabel: "Present",
		},
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			AssetsDir: "static",
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"tables", "strikethrough", "linkify", "task_list"},
		},
		Generator: GeneratorConfig{
			Enabled:          true,
			OutputDir:        "dist",
			TemplatesDir:     "templates",
			CleanBuild:       true,
			GenerateSitemap:  true,
			GenerateRobots:   true,
			GenerateFeeds:    true,
			GenerateTagPages: true,
			HomeRecentPosts:  5,
			Templates:        map[string]string{},
		},
		Deploy: DeployConfig{
			CleanURLs: true,
		},
		Watcher: WatcherConfig{
			Debounce: 300 * time.Millisecond,
		},
		Features: Features{
			Generator: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// PagesConfig returns defaults tuned for project-pages hosting where the site
// lives under a repository-name path prefix.
func PagesConfig(repo string) Config {
	cfg := DefaultConfig()
	cfg.Deploy.Target = deploy.TargetPages
	if trimmed := strings.Trim(strings.TrimSpace(repo), "/"); trimmed != "" {
		cfg.Deploy.BasePath = "/" + trimmed
	}
	return cfg
}

// EdgeConfig returns defaults tuned for edge-platform hosting with clean URLs
// and a deploy manifest emitted alongside the export.
func EdgeConfig() Config {
	cfg := DefaultConfig()
	cfg.Deploy.Target = deploy.TargetEdge
	cfg.Deploy.Analytics.Enabled = true
	cfg.Deploy.Analytics.Endpoint = "/_garden/insights.js"
	return cfg
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if cfg.Generator.Enabled {
		if strings.TrimSpace(cfg.Generator.OutputDir) == "" {
			return ErrGeneratorOutputDirRequired
		}
		if strings.TrimSpace(cfg.Site.BaseURL) == "" {
			return ErrBaseURLRequired
		}
	}
	if cfg.Generator.HomeRecentPosts < 0 {
		return ErrHomeRecentPostsInvalid
	}
	if cfg.Generator.Workers < 0 {
		return ErrWorkersInvalid
	}
	if target := strings.ToLower(strings.TrimSpace(cfg.Deploy.Target)); target != "" {
		switch target {
		case deploy.TargetPages, deploy.TargetEdge:
		default:
			return fmt.Errorf("%w: %s", ErrDeployTargetUnknown, cfg.Deploy.Target)
		}
	}
	if cfg.Deploy.Analytics.Enabled &&
		strings.TrimSpace(cfg.Deploy.Analytics.Script) == "" &&
		strings.TrimSpace(cfg.Deploy.Analytics.Endpoint) == "" &&
		strings.TrimSpace(cfg.Deploy.Analytics.SiteID) == "" {
		return ErrAnalyticsSiteIDRequired
	}
	if cfg.Watcher.Debounce < 0 {
		return ErrWatcherDebounceInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// GeneratorConfigFor maps the runtime configuration onto the generator's
// service configuration, folding in site metadata and theming.
func (cfg Config) GeneratorConfigFor() generator.Config {
	templates := map[generator.PageKind]string{}
	for kind, name := range cfg.Generator.Templates {
		templates[generator.PageKind(kind)] = name
	}
	return generator.Config{
		OutputDir:        cfg.Generator.OutputDir,
		BaseURL:          cfg.Site.BaseURL,
		BasePath:         cfg.Site.BasePath,
		CleanBuild:       cfg.Generator.CleanBuild,
		Incremental:      cfg.Generator.Incremental,
		MinifyHTML:       cfg.Generator.MinifyHTML,
		GenerateSitemap:  cfg.Generator.GenerateSitemap,
		GenerateRobots:   cfg.Generator.GenerateRobots,
		GenerateFeeds:    cfg.Generator.GenerateFeeds,
		GenerateTagPages: cfg.Generator.GenerateTagPages,
		HomeRecentPosts:  cfg.Generator.HomeRecentPosts,
		Workers:          cfg.Generator.Workers,
		Site: generator.SiteInfo{
			Title:        cfg.Site.Title,
			Description:  cfg.Site.Description,
			Author:       cfg.Site.Author,
			OngoingLabel: cfg.Site.OngoingLabel,
		},
		Templates: templates,
		Theming: generator.ThemingConfig{
			ThemePath:         cfg.Theming.ThemePath,
			DefaultTheme:      cfg.Theming.DefaultTheme,
			DefaultVariant:    cfg.Theming.DefaultVariant,
			CSSVariablePrefix: cfg.Theming.CSSVariablePrefix,
			PartialFallbacks:  cfg.Theming.PartialFallbacks,
		},
	}
}

// DeployConfigFor maps the runtime configuration onto the deploy adapter configuration.
func (cfg Config) DeployConfigFor() deploy.Config {
	return deploy.Config{
		Target:        strings.ToLower(strings.TrimSpace(cfg.Deploy.Target)),
		BasePath:      cfg.Deploy.BasePath,
		CleanURLs:     cfg.Deploy.CleanURLs,
		TrailingSlash: cfg.Deploy.TrailingSlash,
		Analytics: deploy.AnalyticsConfig{
			Enabled:  cfg.Deploy.Analytics.Enabled,
			Script:   cfg.Deploy.Analytics.Script,
			SiteID:   cfg.Deploy.Analytics.SiteID,
			Endpoint: cfg.Deploy.Analytics.Endpoint,
		},
	}
}

// ParseOptionsFor maps markdown settings onto the parser contract.
func (cfg Config) ParseOptionsFor() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), cfg.Markdown.Extensions...),
		Sanitize:   cfg.Markdown.Sanitize,
		HardWraps:  cfg.Markdown.HardWraps,
		SafeMode:   cfg.Markdown.SafeMode,
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
