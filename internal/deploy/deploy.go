// Package deploy shapes static exports for specific hosting targets. Each
// adapter contributes HTML post-processors and extra artifacts so the same
// build output can be published to different platforms.
package deploy

import (
	"errors"
	"strings"

	"github.com/goliatone/go-garden/internal/generator"
)

// Target names understood by ForTarget.
const (
	TargetPages = "pages"
	TargetEdge  = "edge"
)

// ErrUnknownTarget indicates an unrecognised deploy target name.
var ErrUnknownTarget = errors.New("deploy: unknown target")

// Config carries the adapter settings shared by all targets.
type Config struct {
	// Target selects the adapter: "pages" or "edge". Empty disables deploy
	// shaping entirely.
	Target string
	// BasePath is the path prefix the site is hosted under (pages target).
	BasePath string
	// Analytics configures the injected analytics snippet (edge target).
	Analytics AnalyticsConfig
	// CleanURLs toggles extension-less routing in the edge platform config.
	CleanURLs bool
	// TrailingSlash controls the edge platform redirect behaviour.
	TrailingSlash bool
}

// AnalyticsConfig describes the analytics snippet injected into every page.
type AnalyticsConfig struct {
	Enabled  bool
	Script   string
	SiteID   string
	Endpoint string
}

// ForTarget returns the adapter for the configured target, nil when no
// target is configured.
func ForTarget(cfg Config) (generator.DeployTarget, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Target)) {
	case "":
		return nil, nil
	case TargetPages:
		return NewPagesTarget(cfg), nil
	case TargetEdge:
		return NewEdgeTarget(cfg), nil
	default:
		return nil, ErrUnknownTarget
	}
}
