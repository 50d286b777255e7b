package garden

import "github.com/goliatone/go-garden/internal/runtimeconfig"

var (
	ErrContentDirRequired         = runtimeconfig.ErrContentDirRequired
	ErrGeneratorOutputDirRequired = runtimeconfig.ErrGeneratorOutputDirRequired
	ErrBaseURLRequired            = runtimeconfig.ErrBaseURLRequired
	ErrDeployTargetUnknown        = runtimeconfig.ErrDeployTargetUnknown
	ErrAnalyticsSiteIDRequired    = runtimeconfig.ErrAnalyticsSiteIDRequired
	ErrWatcherDebounceInvalid     = runtimeconfig.ErrWatcherDebounceInvalid
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	SiteConfig      = runtimeconfig.SiteConfig
	ContentConfig   = runtimeconfig.ContentConfig
	MarkdownConfig  = runtimeconfig.MarkdownConfig
	GeneratorConfig = runtimeconfig.GeneratorConfig
	ThemingConfig   = runtimeconfig.ThemingConfig
	DeployConfig    = runtimeconfig.DeployConfig
	AnalyticsConfig = runtimeconfig.AnalyticsConfig
	WatcherConfig   = runtimeconfig.WatcherConfig
	Features        = runtimeconfig.Features
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// DefaultConfig returns opinionated defaults for a local portfolio build.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// PagesConfig returns defaults tuned for project-pages hosting.
func PagesConfig(repo string) Config {
	return runtimeconfig.PagesConfig(repo)
}

// EdgeConfig returns defaults tuned for edge-platform hosting.
func EdgeConfig() Config {
	return runtimeconfig.EdgeConfig()
}
