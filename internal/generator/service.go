package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-garden/internal/collections"
	"github.com/goliatone/go-garden/internal/logging"
	"github.com/goliatone/go-garden/pkg/interfaces"
	"github.com/goliatone/go-garden/pkg/storage"
)

var (
	// ErrServiceDisabled indicates the generator feature is disabled.
	ErrServiceDisabled  = errors.New("generator: service disabled")
	errRendererRequired = errors.New("generator: template renderer is required")
	errLibraryRequired  = errors.New("generator: content library loader is required")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// SiteInfo carries site-wide presentation metadata for templates and feeds.
type SiteInfo struct {
	Title        string
	Description  string
	Author       string
	OngoingLabel string
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir        string
	BaseURL          string
	BasePath         string
	CleanBuild       bool
	Incremental      bool
	MinifyHTML       bool
	GenerateSitemap  bool
	GenerateRobots   bool
	GenerateFeeds    bool
	GenerateTagPages bool
	HomeRecentPosts  int
	Workers          int
	Site             SiteInfo
	Templates        map[PageKind]string
	Theming          ThemingConfig
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	Kinds  []PageKind
	DryRun bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	PagesBuilt    int
	PagesSkipped  int
	AssetsBuilt   int
	AssetsSkipped int
	Duration      time.Duration
	Rendered      []RenderedPage
	Diagnostics   []RenderDiagnostic
	Errors        []error
	DryRun        bool
}

// LibraryLoader supplies the validated content library for a build.
type LibraryLoader interface {
	Load(ctx context.Context) (*collections.Library, error)
}

// DeployArtifact is an extra file a deploy target contributes to the export.
type DeployArtifact struct {
	Path        string
	Content     []byte
	ContentType string
}

// DeploySummary describes a completed build for deploy target finalisation.
type DeploySummary struct {
	GeneratedAt time.Time
	BaseURL     string
	BasePath    string
	Routes      []string
}

// DeployTarget shapes the export for a specific hosting platform.
type DeployTarget interface {
	Name() string
	BasePath() string
	Processors() []PostProcessor
	Artifacts(ctx context.Context, summary DeploySummary) ([]DeployArtifact, error)
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Library  LibraryLoader
	Renderer interfaces.TemplateRenderer
	Storage  storage.Provider
	Assets   fs.FS
	Deploy   DeployTarget
	Logger   interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	if deps.Logger == nil {
		deps.Logger = logging.NoOp()
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		themes: newThemeSelector(cfg.Theming, nil),
		now:    time.Now,
	}
}

// NewDisabledService returns a Service that fails all operations with ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg    Config
	deps   Dependencies
	themes *themeSelector
	now    func() time.Time
}

type disabledService struct{}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Renderer == nil {
		return nil, errRendererRequired
	}

	start := time.Now()
	buildCtx, err := s.loadContext(ctx, opts)
	if err != nil {
		return nil, err
	}
	buildCtx.Pages = filterPagesByKind(buildCtx.Pages, opts.Kinds)

	basePath := s.effectiveBasePath()
	helpers := newTemplateHelpers(s.cfg.BaseURL, basePath, s.cfg.Site.OngoingLabel)
	siteMeta := SiteMetadata{
		Title:        strings.TrimSpace(s.cfg.Site.Title),
		Description:  strings.TrimSpace(s.cfg.Site.Description),
		Author:       strings.TrimSpace(s.cfg.Site.Author),
		BaseURL:      strings.TrimRight(strings.TrimSpace(s.cfg.BaseURL), "/"),
		BasePath:     basePath,
		OngoingLabel: helpers.OngoingLabel(),
		Metadata:     map[string]any{},
	}

	selection, err := s.themes.Selection()
	if err != nil {
		return nil, err
	}
	themeCtx := buildThemeContext(selection, s.cfg.Theming)

	result := &BuildResult{
		DryRun:      opts.DryRun,
		Diagnostics: make([]RenderDiagnostic, 0, len(buildCtx.Pages)),
	}

	var (
		mu          sync.Mutex
		rendered    = make([]RenderedPage, 0, len(buildCtx.Pages))
		errorsSlice []error
		baseDir     = strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	)

	if s.cfg.CleanBuild && !opts.DryRun {
		if err := s.Clean(ctx); err != nil {
			return nil, err
		}
	}

	manifest, manifestErr := s.loadManifest(ctx)
	if manifestErr != nil {
		errorsSlice = append(errorsSlice, manifestErr)
	}
	if manifest == nil {
		manifest = newBuildManifest()
	}

	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		result.Diagnostics = append(result.Diagnostics, outcome.diagnostic)
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			return
		}
		if outcome.skipped {
			result.PagesSkipped++
			return
		}
		result.PagesBuilt++
		rendered = append(rendered, outcome.page)
	}

	workerCount := s.effectiveWorkerCount(len(buildCtx.Pages))
	if workerCount <= 1 || len(buildCtx.Pages) <= 1 {
		for _, page := range buildCtx.Pages {
			select {
			case <-ctx.Done():
				collect(renderOutcome{
					diagnostic: RenderDiagnostic{PageID: page.ID, Kind: page.Kind, Route: page.Route, Err: ctx.Err()},
					err:        ctx.Err(),
				})
				return result, ctx.Err()
			default:
				collect(s.renderPage(ctx, siteMeta, themeCtx, helpers, buildCtx, page, manifest, baseDir))
			}
		}
	} else {
		if err := s.renderConcurrently(ctx, siteMeta, themeCtx, helpers, buildCtx, workerCount, manifest, baseDir, collect); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	processors := s.buildProcessors(basePath)
	for i := range rendered {
		if err := s.postProcess(&rendered[i], processors); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if opts.DryRun {
		result.Rendered = rendered
		result.Duration = time.Since(start)
		if len(errorsSlice) > 0 {
			result.Errors = append(result.Errors, errorsSlice...)
			return result, errors.Join(errorsSlice...)
		}
		return result, nil
	}

	writer := newArtifactWriter(s.deps.Storage)
	if err := s.persistPages(ctx, writer, rendered, baseDir); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	assetSummary, err := s.copyAssets(ctx, writer, manifest, baseDir)
	if err != nil {
		errorsSlice = append(errorsSlice, err)
	} else {
		result.AssetsBuilt += assetSummary.Built
		result.AssetsSkipped += assetSummary.Skipped
	}

	siteRoot := siteMeta.BaseURL + siteMeta.BasePath
	if s.cfg.GenerateSitemap {
		sitemapPages := s.mergeRenderedForSitemap(buildCtx, rendered, manifest)
		if err := s.writeSitemap(ctx, writer, siteRoot, buildCtx, sitemapPages, baseDir); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateRobots {
		if err := s.writeRobots(ctx, writer, siteRoot, baseDir); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateFeeds {
		items := s.buildFeedItems(buildCtx, helpers)
		if err := s.writeFeeds(ctx, writer, siteMeta, buildCtx, items, baseDir); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if err := s.writeDeployArtifacts(ctx, writer, buildCtx, baseDir, siteMeta); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	if len(errorsSlice) == 0 {
		manifest.GeneratedAt = buildCtx.GeneratedAt
		for _, page := range rendered {
			if strings.TrimSpace(page.Checksum) == "" {
				continue
			}
			manifest.setPage(manifestPage{
				Route:        page.Route,
				Kind:         string(page.Kind),
				Output:       page.Output,
				Template:     page.Template,
				Hash:         page.Metadata.Hash,
				Checksum:     page.Checksum,
				LastModified: page.Metadata.LastModified,
				RenderedAt:   buildCtx.GeneratedAt,
			})
		}
		if err := s.persistManifest(ctx, writer, manifest, baseDir); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	result.Rendered = rendered
	result.Duration = time.Since(start)
	s.deps.Logger.Info("build finished",
		"pages_built", result.PagesBuilt,
		"pages_skipped", result.PagesSkipped,
		"assets_built", result.AssetsBuilt,
		"duration", result.Duration.String(),
	)
	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
		return result, errors.Join(errorsSlice...)
	}
	return result, nil
}

// Clean removes the previous export and recreates the output directory.
func (s *service) Clean(ctx context.Context) error {
	if s.deps.Storage == nil {
		return nil
	}
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	target := baseDir
	if target == "" {
		target = "."
	}
	if err := s.deps.Storage.Remove(ctx, target); err != nil {
		return err
	}
	return s.deps.Storage.EnsureDir(ctx, target)
}

func (s *service) renderConcurrently(
	ctx context.Context,
	siteMeta SiteMetadata,
	themeCtx ThemeContext,
	helpers TemplateHelpers,
	buildCtx *BuildContext,
	workers int,
	manifest *buildManifest,
	baseDir string,
	collect func(renderOutcome),
) error {
	grouped := groupPagesByKind(buildCtx.Pages)
	if len(grouped) == 0 {
		return nil
	}

	jobs := make(chan []*PageData)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				for _, page := range batch {
					select {
					case <-ctx.Done():
						collect(renderOutcome{
							diagnostic: RenderDiagnostic{PageID: page.ID, Kind: page.Kind, Route: page.Route, Err: ctx.Err()},
							err:        ctx.Err(),
						})
						return
					default:
						collect(s.renderPage(ctx, siteMeta, themeCtx, helpers, buildCtx, page, manifest, baseDir))
					}
				}
			}
		}()
	}

	for _, batch := range grouped {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- batch:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (s *service) renderPage(
	ctx context.Context,
	siteMeta SiteMetadata,
	themeCtx ThemeContext,
	helpers TemplateHelpers,
	buildCtx *BuildContext,
	data *PageData,
	manifest *buildManifest,
	baseDir string,
) renderOutcome {
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			PageID: data.ID,
			Kind:   data.Kind,
			Route:  data.Route,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	templateName := data.Template
	if themeCtx.Template != nil {
		templateName = themeCtx.Template(string(data.Kind), data.Template)
	}
	outcome.diagnostic.Template = templateName

	if s.cfg.Incremental && manifest != nil {
		expectedOutput := joinOutputPath(baseDir, buildOutputPath(data.Route))
		if manifest.shouldSkipPage(data.Route, data.Metadata.Hash, expectedOutput) {
			outcome.skipped = true
			outcome.diagnostic.Skipped = true
			return outcome
		}
	}

	templateCtx := TemplateContext{
		Site: siteMeta,
		Page: data,
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   themeCtx,
		Helpers: helpers,
	}

	start := time.Now()
	rendered, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render template %q for %s: %w", templateName, data.Route, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.page = RenderedPage{
		PageID:   data.ID,
		Kind:     data.Kind,
		Route:    data.Route,
		Template: templateName,
		HTML:     rendered,
		Metadata: data.Metadata,
		Duration: duration,
	}
	return outcome
}

func (s *service) persistPages(
	ctx context.Context,
	writer artifactWriter,
	pages []RenderedPage,
	baseDir string,
) error {
	if len(pages) == 0 {
		return nil
	}
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return err
		}
	}
	for i := range pages {
		fullPath := joinOutputPath(baseDir, buildOutputPath(pages[i].Route))
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		checksum := computeHashFromString(pages[i].HTML)
		pages[i].Output = fullPath
		pages[i].Checksum = checksum

		metadata := map[string]string{
			"route": pages[i].Route,
			"kind":  string(pages[i].Kind),
		}
		if s.cfg.Incremental {
			metadata["incremental"] = "true"
		}
		if err := writer.WriteFile(ctx, storage.WriteRequest{
			Path:        fullPath,
			Content:     strings.NewReader(pages[i].HTML),
			Size:        int64(len(pages[i].HTML)),
			Category:    storage.CategoryPage,
			ContentType: "text/html; charset=utf-8",
			Checksum:    checksum,
			Metadata:    metadata,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) mergeRenderedForSitemap(
	buildCtx *BuildContext,
	rendered []RenderedPage,
	manifest *buildManifest,
) []RenderedPage {
	if buildCtx == nil || manifest == nil {
		return append([]RenderedPage(nil), rendered...)
	}

	renderedByRoute := make(map[string]RenderedPage, len(rendered))
	for _, page := range rendered {
		renderedByRoute[manifest.pageKey(page.Route)] = page
	}

	sitemap := make([]RenderedPage, 0, len(buildCtx.Pages))
	for _, data := range buildCtx.Pages {
		key := manifest.pageKey(data.Route)
		if page, ok := renderedByRoute[key]; ok {
			sitemap = append(sitemap, page)
			continue
		}
		if entry, ok := manifest.lookupPage(data.Route); ok {
			sitemap = append(sitemap, RenderedPage{
				PageID:   data.ID,
				Kind:     data.Kind,
				Route:    entry.Route,
				Output:   entry.Output,
				Template: entry.Template,
				Metadata: DependencyMetadata{
					Hash:         entry.Hash,
					LastModified: entry.LastModified,
				},
				Checksum: entry.Checksum,
			})
			continue
		}
		sitemap = append(sitemap, RenderedPage{
			PageID:   data.ID,
			Kind:     data.Kind,
			Route:    data.Route,
			Template: data.Template,
			Metadata: data.Metadata,
		})
	}
	return sitemap
}

func (s *service) writeSitemap(
	ctx context.Context,
	writer artifactWriter,
	siteRoot string,
	buildCtx *BuildContext,
	pages []RenderedPage,
	baseDir string,
) error {
	content := buildSitemap(siteRoot, pages, buildCtx.GeneratedAt)
	fullPath := joinOutputPath(baseDir, "sitemap.xml")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	return writer.WriteFile(ctx, storage.WriteRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    storage.CategorySitemap,
		ContentType: "application/xml",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": buildCtx.GeneratedAt.UTC().Format(time.RFC3339),
		},
	})
}

func (s *service) writeRobots(
	ctx context.Context,
	writer artifactWriter,
	siteRoot string,
	baseDir string,
) error {
	content := buildRobots(siteRoot, s.cfg.GenerateSitemap)
	fullPath := joinOutputPath(baseDir, "robots.txt")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	return writer.WriteFile(ctx, storage.WriteRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    storage.CategoryRobots,
		ContentType: "text/plain; charset=utf-8",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": s.now().UTC().Format(time.RFC3339),
		},
	})
}

func (s *service) writeFeeds(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	items []feedItem,
	baseDir string,
) error {
	if len(items) == 0 {
		return nil
	}
	feeds := []struct {
		name        string
		content     string
		contentType string
	}{
		{"feed.xml", buildRSSFeed(siteMeta, items, buildCtx.GeneratedAt), "application/rss+xml"},
		{"feed.atom.xml", buildAtomFeed(siteMeta, items, buildCtx.GeneratedAt), "application/atom+xml"},
	}
	dirCache := map[string]struct{}{}
	for _, feed := range feeds {
		fullPath := joinOutputPath(baseDir, feed.name)
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		if err := writer.WriteFile(ctx, storage.WriteRequest{
			Path:        fullPath,
			Content:     strings.NewReader(feed.content),
			Size:        int64(len(feed.content)),
			Category:    storage.CategoryFeed,
			ContentType: feed.contentType,
			Checksum:    computeHashFromString(feed.content),
			Metadata: map[string]string{
				"generated_at": buildCtx.GeneratedAt.UTC().Format(time.RFC3339),
			},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) writeDeployArtifacts(
	ctx context.Context,
	writer artifactWriter,
	buildCtx *BuildContext,
	baseDir string,
	siteMeta SiteMetadata,
) error {
	if s.deps.Deploy == nil {
		return nil
	}
	routes := make([]string, 0, len(buildCtx.Pages))
	for _, page := range buildCtx.Pages {
		routes = append(routes, page.Route)
	}
	artifacts, err := s.deps.Deploy.Artifacts(ctx, DeploySummary{
		GeneratedAt: buildCtx.GeneratedAt,
		BaseURL:     siteMeta.BaseURL,
		BasePath:    siteMeta.BasePath,
		Routes:      routes,
	})
	if err != nil {
		return fmt.Errorf("generator: deploy artifacts for %s: %w", s.deps.Deploy.Name(), err)
	}
	dirCache := map[string]struct{}{}
	for _, artifact := range artifacts {
		fullPath := joinOutputPath(baseDir, artifact.Path)
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		contentType := artifact.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := writer.WriteFile(ctx, storage.WriteRequest{
			Path:        fullPath,
			Content:     bytes.NewReader(artifact.Content),
			Size:        int64(len(artifact.Content)),
			Category:    storage.CategoryDeploy,
			ContentType: contentType,
			Checksum:    computeHash(artifact.Content),
			Metadata:    map[string]string{"target": s.deps.Deploy.Name()},
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) loadManifest(ctx context.Context) (*buildManifest, error) {
	if s.deps.Storage == nil {
		return newBuildManifest(), nil
	}
	target := s.manifestTargetPath()
	data, err := s.deps.Storage.Read(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("generator: read manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *service) manifestTargetPath() string {
	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	return joinOutputPath(base, manifestFileName)
}

func (s *service) persistManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest, baseDir string) error {
	if manifest == nil {
		return nil
	}
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	target := s.manifestTargetPath()
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(target)); err != nil {
		return err
	}
	metadata := map[string]string{
		"version": strconv.Itoa(manifest.Version),
	}
	if !manifest.GeneratedAt.IsZero() {
		metadata["generated_at"] = manifest.GeneratedAt.UTC().Format(time.RFC3339)
	}
	return writer.WriteFile(ctx, storage.WriteRequest{
		Path:        target,
		Content:     bytes.NewReader(data),
		Size:        int64(len(data)),
		Category:    storage.CategoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
		Metadata:    metadata,
	})
}

func (s *service) buildProcessors(basePath string) []PostProcessor {
	var processors []PostProcessor
	if s.deps.Deploy != nil {
		processors = append(processors, s.deps.Deploy.Processors()...)
	}
	if prefix := PrefixProcessor(basePath); prefix != nil {
		processors = append(processors, prefix)
	}
	return processors
}

func (s *service) effectiveBasePath() string {
	basePath := strings.TrimSpace(s.cfg.BasePath)
	if basePath == "" && s.deps.Deploy != nil {
		basePath = s.deps.Deploy.BasePath()
	}
	return normalizeBasePath(basePath)
}

func (s *service) effectiveWorkerCount(pageCount int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if pageCount > 0 && workers > pageCount {
		return pageCount
	}
	return workers
}

func filterPagesByKind(pages []*PageData, kinds []PageKind) []*PageData {
	if len(kinds) == 0 {
		return pages
	}
	allowed := make(map[PageKind]struct{}, len(kinds))
	for _, kind := range kinds {
		allowed[kind] = struct{}{}
	}
	filtered := make([]*PageData, 0, len(pages))
	for _, page := range pages {
		if _, ok := allowed[page.Kind]; ok {
			filtered = append(filtered, page)
		}
	}
	return filtered
}

func groupPagesByKind(pages []*PageData) map[PageKind][]*PageData {
	grouped := make(map[PageKind][]*PageData, len(pages))
	for _, page := range pages {
		if page == nil {
			continue
		}
		grouped[page.Kind] = append(grouped[page.Kind], page)
	}
	return grouped
}

func templateForKind(overrides map[PageKind]string, kind PageKind) string {
	if name, ok := overrides[kind]; ok && strings.TrimSpace(name) != "" {
		return strings.TrimSpace(name)
	}
	return string(kind)
}

func ensureDir(ctx context.Context, writer artifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.Trim(dir, " ")
	if dir == "" || dir == "." {
		return nil
	}
	if cache != nil {
		if _, ok := cache[dir]; ok {
			return nil
		}
		cache[dir] = struct{}{}
	}
	return writer.EnsureDir(ctx, dir)
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(content string) string {
	return computeHash([]byte(content))
}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error {
	return ErrServiceDisabled
}
