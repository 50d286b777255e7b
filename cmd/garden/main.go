package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	garden "github.com/goliatone/go-garden"
	"github.com/goliatone/go-garden/internal/commands/staticcmd"
	"github.com/goliatone/go-garden/internal/generator"
	"github.com/goliatone/go-garden/internal/watcher"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "build":
		err = runBuild(args, false)
	case "diff":
		err = runBuild(args, true)
	case "clean":
		err = runClean(args)
	case "preview":
		err = runPreview(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("garden %s: %v", command, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: garden <command> [flags]

Commands:
  build    render the site into the output directory
  diff     dry-run build reporting what would change
  clean    remove generated artifacts
  preview  build, serve locally, and rebuild on change`)
}

func commonFlags(fs *flag.FlagSet) (*string, *string, *string, *string, *bool) {
	contentDir := fs.String("content-dir", "content", "Path to the content root")
	templatesDir := fs.String("templates-dir", "templates", "Path to the template directory")
	outputDir := fs.String("output-dir", "dist", "Directory receiving the generated site")
	target := fs.String("target", "", "Deploy target: pages or edge (empty for plain export)")
	drafts := fs.Bool("drafts", false, "Include entries flagged as drafts")
	return contentDir, templatesDir, outputDir, target, drafts
}

func buildModule(contentDir, templatesDir, outputDir, target, baseURL, basePath, repo string, drafts bool) (*garden.Module, error) {
	var cfg garden.Config
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "pages":
		cfg = garden.PagesConfig(repo)
	case "edge":
		cfg = garden.EdgeConfig()
	default:
		cfg = garden.DefaultConfig()
	}

	cfg.Content.Dir = contentDir
	cfg.Content.IncludeDrafts = drafts
	cfg.Generator.TemplatesDir = templatesDir
	cfg.Generator.OutputDir = outputDir
	cfg.Features.Logger = true
	if baseURL != "" {
		cfg.Site.BaseURL = baseURL
	}
	if basePath != "" {
		cfg.Site.BasePath = basePath
	}

	return garden.New(cfg)
}

func runBuild(args []string, dryRun bool) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	contentDir, templatesDir, outputDir, target, drafts := commonFlags(fs)
	baseURL := fs.String("base-url", "", "Absolute site URL used in links, sitemap, and feeds")
	basePath := fs.String("base-path", "", "Path prefix the site is hosted under")
	repo := fs.String("repo", "", "Repository name used as the pages path prefix")
	kinds := fs.String("kinds", "", "Comma separated page kinds to build (default all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := buildModule(*contentDir, *templatesDir, *outputDir, *target, *baseURL, *basePath, *repo, *drafts)
	if err != nil {
		return err
	}

	cmd := staticcmd.BuildSiteCommand{
		Kinds:  parseKinds(*kinds),
		DryRun: dryRun,
		ResultCallback: func(env staticcmd.ResultEnvelope) {
			reportResult(env.Result)
		},
	}

	handler := staticcmd.NewBuildSiteHandler(
		module.Generator(),
		module.Logger("garden.cli"),
		staticcmd.FeatureGates{GeneratorEnabled: func() bool { return true }},
	)
	return handler.Execute(context.Background(), cmd)
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	contentDir, templatesDir, outputDir, target, drafts := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := buildModule(*contentDir, *templatesDir, *outputDir, *target, "", "", "", *drafts)
	if err != nil {
		return err
	}

	handler := staticcmd.NewCleanSiteHandler(
		module.Generator(),
		module.Logger("garden.cli"),
		staticcmd.FeatureGates{GeneratorEnabled: func() bool { return true }},
	)
	return handler.Execute(context.Background(), staticcmd.CleanSiteCommand{})
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	contentDir, templatesDir, outputDir, target, drafts := commonFlags(fs)
	addr := fs.String("addr", "127.0.0.1:8080", "Address the preview server listens on")
	debounce := fs.Duration("debounce", 300*time.Millisecond, "Delay before rebuilding after a change")
	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := buildModule(*contentDir, *templatesDir, *outputDir, *target, "http://"+*addr, "", "", *drafts)
	if err != nil {
		return err
	}

	ctx := context.Background()

	rebuild := func(ctx context.Context, paths []string) error {
		result, err := module.Build(ctx, garden.BuildOptions{})
		if err != nil {
			log.Printf("rebuild failed: %v", err)
			return nil
		}
		log.Printf("rebuilt %d pages (%d changed files)", result.PagesBuilt, len(paths))
		return nil
	}

	if _, err := module.Build(ctx, garden.BuildOptions{}); err != nil {
		return err
	}

	w, err := watcher.New(watcher.Config{
		Dirs:       []string{*contentDir, *templatesDir},
		Extensions: []string{".md", ".html", ".tmpl", ".css", ".js"},
		Debounce:   *debounce,
	}, rebuild, watcher.WithLogger(module.Logger("garden.watcher")))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	log.Printf("serving %s on http://%s", *outputDir, *addr)
	return http.ListenAndServe(*addr, http.FileServer(http.Dir(*outputDir)))
}

func parseKinds(raw string) []generator.PageKind {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	var kinds []generator.PageKind
	for _, part := range strings.Split(trimmed, ",") {
		if kind := strings.TrimSpace(part); kind != "" {
			kinds = append(kinds, generator.PageKind(kind))
		}
	}
	return kinds
}

func reportResult(result *generator.BuildResult) {
	if result == nil {
		return
	}
	mode := "built"
	if result.DryRun {
		mode = "would build"
	}
	fmt.Fprintf(os.Stdout, "%s %d pages (%d skipped), %d assets (%d skipped) in %s\n",
		mode, result.PagesBuilt, result.PagesSkipped, result.AssetsBuilt, result.AssetsSkipped, result.Duration)
	for _, diag := range result.Diagnostics {
		if diag.Err != nil {
			fmt.Fprintf(os.Stderr, "warn: %s: %v\n", diag.Route, diag.Err)
		}
	}
}
