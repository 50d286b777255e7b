package deploy

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-garden/internal/generator"
)

// edgeTarget exports the site for adapter-based edge platforms: a platform
// config file describes routing behaviour and an analytics snippet is
// injected into every page.
type edgeTarget struct {
	cfg Config
}

// NewEdgeTarget returns the edge platform export adapter.
func NewEdgeTarget(cfg Config) generator.DeployTarget {
	return &edgeTarget{cfg: cfg}
}

func (t *edgeTarget) Name() string { return TargetEdge }

func (t *edgeTarget) BasePath() string { return "" }

func (t *edgeTarget) Processors() []generator.PostProcessor {
	snippet := t.analyticsSnippet()
	if snippet == "" {
		return nil
	}
	return []generator.PostProcessor{generator.SnippetProcessor(snippet)}
}

func (t *edgeTarget) analyticsSnippet() string {
	analytics := t.cfg.Analytics
	if !analytics.Enabled {
		return ""
	}
	if custom := strings.TrimSpace(analytics.Script); custom != "" {
		return custom
	}
	src := strings.TrimSpace(analytics.Endpoint)
	if src == "" {
		src = "/_garden/insights.js"
	}
	if siteID := strings.TrimSpace(analytics.SiteID); siteID != "" {
		return fmt.Sprintf(`<script defer src=%q data-site-id=%q></script>`, src, siteID)
	}
	return fmt.Sprintf(`<script defer src=%q></script>`, src)
}

// platformConfig is the deploy.json document consumed by the edge platform.
type platformConfig struct {
	Version       int               `json:"version"`
	GeneratedAt   time.Time         `json:"generated_at"`
	CleanURLs     bool              `json:"cleanUrls"`
	TrailingSlash bool              `json:"trailingSlash"`
	Analytics     map[string]string `json:"analytics,omitempty"`
	Routes        []platformRoute   `json:"routes,omitempty"`
}

type platformRoute struct {
	Source      string `json:"src"`
	Destination string `json:"dest"`
}

func (t *edgeTarget) Artifacts(ctx context.Context, summary generator.DeploySummary) ([]generator.DeployArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := platformConfig{
		Version:       1,
		GeneratedAt:   summary.GeneratedAt.UTC(),
		CleanURLs:     t.cfg.CleanURLs,
		TrailingSlash: t.cfg.TrailingSlash,
	}
	if t.cfg.Analytics.Enabled {
		doc.Analytics = map[string]string{}
		if siteID := strings.TrimSpace(t.cfg.Analytics.SiteID); siteID != "" {
			doc.Analytics["site_id"] = siteID
		}
		if endpoint := strings.TrimSpace(t.cfg.Analytics.Endpoint); endpoint != "" {
			doc.Analytics["endpoint"] = endpoint
		}
	}
	for _, route := range summary.Routes {
		if route == "/" {
			continue
		}
		doc.Routes = append(doc.Routes, platformRoute{
			Source:      route,
			Destination: strings.TrimPrefix(route, "/") + "/index.html",
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("deploy: marshal platform config: %w", err)
	}
	return []generator.DeployArtifact{
		{
			Path:        "deploy.json",
			Content:     data,
			ContentType: "application/json",
		},
	}, nil
}
