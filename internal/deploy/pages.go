package deploy

import (
	"context"
	"strings"

	"github.com/goliatone/go-garden/internal/generator"
)

// pagesTarget exports the site for static page hosts that serve a repository
// under a path prefix. Root-relative links are rewritten to include the
// prefix and a .nojekyll marker disables server-side preprocessing.
type pagesTarget struct {
	basePath string
}

// NewPagesTarget returns the path-prefixed static export adapter.
func NewPagesTarget(cfg Config) generator.DeployTarget {
	return &pagesTarget{basePath: strings.TrimSpace(cfg.BasePath)}
}

func (t *pagesTarget) Name() string { return TargetPages }

func (t *pagesTarget) BasePath() string { return t.basePath }

func (t *pagesTarget) Processors() []generator.PostProcessor {
	// Prefixing runs through the generator's own PrefixProcessor once it
	// resolves the effective base path, so no extra processors here.
	return nil
}

func (t *pagesTarget) Artifacts(ctx context.Context, _ generator.DeploySummary) ([]generator.DeployArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []generator.DeployArtifact{
		{
			Path:        ".nojekyll",
			Content:     []byte{},
			ContentType: "text/plain; charset=utf-8",
		},
	}, nil
}
