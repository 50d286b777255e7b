package runtimeconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-garden/internal/deploy"
	"github.com/goliatone/go-garden/internal/generator"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}
	if !cfg.Generator.Enabled {
		t.Fatal("expected generator enabled by default")
	}
	if cfg.Content.Dir != "content" {
		t.Fatalf("expected content dir default, got %q", cfg.Content.Dir)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Dir = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRequiresOutputDirWhenGeneratorEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.OutputDir = ""
	if err := cfg.Validate(); !errors.Is(err, ErrGeneratorOutputDirRequired) {
		t.Fatalf("expected ErrGeneratorOutputDirRequired, got %v", err)
	}

	cfg.Generator.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled generator to skip output dir check, got %v", err)
	}
}

func TestValidateRequiresBaseURLWhenGeneratorEnabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.BaseURL = ""
	if err := cfg.Validate(); !errors.Is(err, ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
}

func TestValidateRejectsUnknownDeployTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deploy.Target = "ftp"
	if err := cfg.Validate(); !errors.Is(err, ErrDeployTargetUnknown) {
		t.Fatalf("expected ErrDeployTargetUnknown, got %v", err)
	}

	cfg.Deploy.Target = "Pages"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected case-insensitive target match, got %v", err)
	}
}

func TestValidateRequiresAnalyticsSiteID(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deploy.Analytics.Enabled = true
	if err := cfg.Validate(); !errors.Is(err, ErrAnalyticsSiteIDRequired) {
		t.Fatalf("expected ErrAnalyticsSiteIDRequired, got %v", err)
	}

	cfg.Deploy.Analytics.Script = "<script src=\"/custom.js\"></script>"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected custom script to satisfy analytics, got %v", err)
	}

	cfg.Deploy.Analytics.Script = ""
	cfg.Deploy.Analytics.Endpoint = "/stats.js"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected endpoint to satisfy analytics, got %v", err)
	}
}

func TestValidateRejectsNegativeValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Generator.HomeRecentPosts = -1
	if err := cfg.Validate(); !errors.Is(err, ErrHomeRecentPostsInvalid) {
		t.Fatalf("expected ErrHomeRecentPostsInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Generator.Workers = -2
	if err := cfg.Validate(); !errors.Is(err, ErrWorkersInvalid) {
		t.Fatalf("expected ErrWorkersInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Watcher.Debounce = -time.Second
	if err := cfg.Validate(); !errors.Is(err, ErrWatcherDebounceInvalid) {
		t.Fatalf("expected ErrWatcherDebounceInvalid, got %v", err)
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid logging config, got %v", err)
	}
}

func TestPagesConfigSetsBasePath(t *testing.T) {
	cfg := PagesConfig("my-portfolio")
	if cfg.Deploy.Target != deploy.TargetPages {
		t.Fatalf("expected pages target, got %q", cfg.Deploy.Target)
	}
	if cfg.Deploy.BasePath != "/my-portfolio" {
		t.Fatalf("expected base path /my-portfolio, got %q", cfg.Deploy.BasePath)
	}

	cfg = PagesConfig(" /slashed/ ")
	if cfg.Deploy.BasePath != "/slashed" {
		t.Fatalf("expected trimmed base path, got %q", cfg.Deploy.BasePath)
	}
}

func TestEdgeConfigSelectsEdgeTarget(t *testing.T) {
	cfg := EdgeConfig()
	if cfg.Deploy.Target != deploy.TargetEdge {
		t.Fatalf("expected edge target, got %q", cfg.Deploy.Target)
	}
	if !cfg.Deploy.Analytics.Enabled {
		t.Fatal("edge preset should enable analytics")
	}
	if cfg.Deploy.Analytics.Endpoint == "" {
		t.Fatal("edge preset should carry a default analytics endpoint")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected edge config to validate, got %v", err)
	}
}

func TestGeneratorConfigForMapsSiteMetadata(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Site.Title = "Jardin"
	cfg.Site.BasePath = "/garden"
	cfg.Generator.Templates = map[string]string{"post": "article"}
	cfg.Theming.DefaultTheme = "moss"
	cfg.Theming.PartialFallbacks = map[string]string{"footer": "partials/footer.html"}

	genCfg := cfg.GeneratorConfigFor()
	if genCfg.Site.Title != "Jardin" {
		t.Fatalf("expected site title mapped, got %q", genCfg.Site.Title)
	}
	if genCfg.BasePath != "/garden" {
		t.Fatalf("expected base path mapped, got %q", genCfg.BasePath)
	}
	if genCfg.Templates[generator.KindPost] != "article" {
		t.Fatalf("expected template override mapped, got %q", genCfg.Templates[generator.KindPost])
	}
	if genCfg.Theming.DefaultTheme != "moss" {
		t.Fatalf("expected theming mapped, got %q", genCfg.Theming.DefaultTheme)
	}
	if genCfg.Theming.PartialFallbacks["footer"] != "partials/footer.html" {
		t.Fatalf("expected partial fallbacks mapped, got %v", genCfg.Theming.PartialFallbacks)
	}
}

func TestDeployConfigForNormalizesTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Deploy.Target = " Edge "
	cfg.Deploy.Analytics.SiteID = "garden-1"

	deployCfg := cfg.DeployConfigFor()
	if deployCfg.Target != deploy.TargetEdge {
		t.Fatalf("expected normalized target, got %q", deployCfg.Target)
	}
	if deployCfg.Analytics.SiteID != "garden-1" {
		t.Fatalf("expected analytics mapped, got %q", deployCfg.Analytics.SiteID)
	}
}

func TestParseOptionsForCopiesExtensions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.ParseOptionsFor()
	if len(opts.Extensions) != len(cfg.Markdown.Extensions) {
		t.Fatalf("expected extensions copied, got %d", len(opts.Extensions))
	}
	opts.Extensions[0] = "mutated"
	if cfg.Markdown.Extensions[0] == "mutated" {
		t.Fatal("expected defensive copy of extensions")
	}
}
