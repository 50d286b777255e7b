package collections

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	goslug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-garden/internal/identity"
	"github.com/goliatone/go-garden/internal/logging"
	"github.com/goliatone/go-garden/internal/markdown"
	"github.com/goliatone/go-garden/internal/schema"
	"github.com/goliatone/go-garden/pkg/interfaces"
)

// Config controls how the content model loader discovers and validates entries.
type Config struct {
	// ContentDir is the root directory holding one sub-directory per collection.
	ContentDir string
	// Pattern limits discovered files (defaults to "*.md").
	Pattern string
	// IncludeDrafts keeps entries flagged draft: true in the library.
	IncludeDrafts bool
	// Parser carries default Markdown parse options.
	Parser interfaces.ParseOptions
}

// Service loads the typed content collections from disk. Loaded libraries are
// immutable; every build re-reads the content tree.
type Service struct {
	cfg    Config
	fsys   fs.FS
	parser interfaces.MarkdownParser
	logger interfaces.Logger
	now    func() time.Time
}

// Option customises service construction.
type Option func(*Service)

// WithFilesystem overrides the content filesystem (tests, embedded content).
func WithFilesystem(fsys fs.FS) Option {
	return func(s *Service) {
		s.fsys = fsys
	}
}

// WithParser overrides the Markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(s *Service) {
		s.parser = parser
	}
}

// WithLogger attaches a module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the content model loader.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	svc := &Service{
		cfg:    cfg,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.fsys == nil {
		dir := strings.TrimSpace(cfg.ContentDir)
		if dir == "" {
			return nil, ErrContentDirRequired
		}
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("collections: inspect content dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("collections: content path %q is not a directory", dir)
		}
		svc.fsys = os.DirFS(filepath.Clean(dir))
	}

	if svc.parser == nil {
		svc.parser = markdown.NewGoldmarkParser(cfg.Parser)
	}

	return svc, nil
}

// Load reads every collection, validates each entry against its schema, and
// returns the assembled library. Any invalid entry fails the whole load; the
// returned error aggregates every violation so authors can fix them in one
// pass.
func (s *Service) Load(ctx context.Context) (*Library, error) {
	loader := markdown.NewLoader(s.fsys, markdown.LoaderConfig{
		BasePath:    s.cfg.ContentDir,
		Collections: schema.Collections(),
		Pattern:     s.cfg.Pattern,
		Recursive:   true,
	})

	library := &Library{LoadedAt: s.now().UTC()}
	failure := &LoadError{}
	slugs := map[string]string{}

	for _, collection := range schema.Collections() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, err := fs.Stat(s.fsys, collection); err != nil {
			// Missing collection directories are allowed; the site simply
			// has no entries of that kind.
			s.logger.Debug("collection directory absent", "collection", collection)
			continue
		}

		results, err := loader.LoadDirectory(ctx, collection, markdown.LoadParams{Collection: collection})
		if err != nil {
			return nil, fmt.Errorf("collections: load %s: %w", collection, err)
		}

		for _, result := range results {
			doc := result.Document
			entryLogger := logging.WithContentContext(s.logger, doc.FilePath, collection)

			if err := s.validateDocument(collection, doc); err != nil {
				failure.Entries = append(failure.Entries, &EntryError{
					Path:       doc.FilePath,
					Collection: collection,
					Err:        err,
				})
				continue
			}

			if doc.FrontMatter.Draft && !s.cfg.IncludeDrafts {
				entryLogger.Debug("skipping draft entry")
				continue
			}

			if err := s.appendEntry(ctx, library, collection, doc, slugs); err != nil {
				failure.Entries = append(failure.Entries, &EntryError{
					Path:       doc.FilePath,
					Collection: collection,
					Err:        err,
				})
				continue
			}
			entryLogger.Debug("loaded entry")
		}
	}

	if len(failure.Entries) > 0 {
		return nil, failure
	}

	sortLibrary(library)
	s.logger.Info("content library loaded",
		"experiences", len(library.Experiences),
		"posts", len(library.Posts),
		"projects", len(library.Projects),
	)
	return library, nil
}

func (s *Service) validateDocument(collection string, doc *interfaces.Document) error {
	spec, err := schema.ForCollection(collection)
	if err != nil {
		return err
	}
	return schema.ValidatePayload(spec, doc.FrontMatter.Raw)
}

func (s *Service) appendEntry(ctx context.Context, library *Library, collection string, doc *interfaces.Document, slugs map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	html, err := s.parser.ParseWithOptions(doc.Body, s.cfg.Parser)
	if err != nil {
		return err
	}
	doc.BodyHTML = html

	switch collection {
	case schema.CollectionExperience:
		entry, err := experienceFromDocument(doc)
		if err != nil {
			return err
		}
		library.Experiences = append(library.Experiences, entry)
		return nil
	case schema.CollectionPosts:
		post, err := postFromDocument(doc)
		if err != nil {
			return err
		}
		if err := claimSlug(slugs, collection, post.Slug, doc.FilePath); err != nil {
			return err
		}
		library.Posts = append(library.Posts, post)
		return nil
	case schema.CollectionProjects:
		project, err := projectFromDocument(doc)
		if err != nil {
			return err
		}
		if err := claimSlug(slugs, collection, project.Slug, doc.FilePath); err != nil {
			return err
		}
		library.Projects = append(library.Projects, project)
		return nil
	default:
		return fmt.Errorf("%w: %q", schema.ErrSchemaUnknown, collection)
	}
}

func experienceFromDocument(doc *interfaces.Document) (*Experience, error) {
	meta := doc.FrontMatter
	entry := &Experience{
		Title:       strings.TrimSpace(meta.Title),
		Logo:        strings.TrimSpace(meta.Logo),
		Description: strings.TrimSpace(meta.Description),
		StartDate:   meta.StartDate,
		EndDate:     meta.EndDate,
		Current:     meta.Current,
		Weight:      meta.Weight,
		FilePath:    doc.FilePath,
		Body:        doc.Body,
		BodyHTML:    doc.BodyHTML,
	}

	// Sentinel checks stay outside ozzo so errors.Is still matches; ozzo's
	// validation.Errors map does not unwrap.
	if entry.EndDate != nil {
		if entry.Current {
			return nil, ErrOngoingConflict
		}
		if entry.EndDate.Before(entry.StartDate) {
			return nil, ErrDateOrderInvalid
		}
	}

	if err := validation.ValidateStruct(entry,
		validation.Field(&entry.Title, validation.Required),
		validation.Field(&entry.StartDate, validation.Required),
	); err != nil {
		return nil, err
	}

	entry.ID = identity.EntryUUID(schema.CollectionExperience, entry.Title+":"+entry.StartDate.Format("2006-01-02"))
	return entry, nil
}

func postFromDocument(doc *interfaces.Document) (*Post, error) {
	meta := doc.FrontMatter
	slugValue, err := resolveSlug(meta.Slug, meta.Title, doc.FilePath)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Title:       strings.TrimSpace(meta.Title),
		Slug:        slugValue,
		Description: strings.TrimSpace(meta.Description),
		PublishedAt: meta.PublishedAt,
		Tags:        normalizeLabels(meta.Tags),
		Draft:       meta.Draft,
		FilePath:    doc.FilePath,
		Body:        doc.Body,
		BodyHTML:    doc.BodyHTML,
	}

	if post.PublishedAt.IsZero() {
		return nil, ErrPublishedAtZero
	}

	if err := validation.ValidateStruct(post,
		validation.Field(&post.Title, validation.Required),
	); err != nil {
		return nil, err
	}

	post.ID = identity.EntryUUID(schema.CollectionPosts, post.Slug)
	return post, nil
}

func projectFromDocument(doc *interfaces.Document) (*Project, error) {
	meta := doc.FrontMatter
	slugValue, err := resolveSlug(meta.Slug, meta.Title, doc.FilePath)
	if err != nil {
		return nil, err
	}

	project := &Project{
		Title:       strings.TrimSpace(meta.Title),
		Slug:        slugValue,
		Description: strings.TrimSpace(meta.Description),
		URL:         strings.TrimSpace(meta.URL),
		Repo:        strings.TrimSpace(meta.Repo),
		Featured:    meta.Featured,
		Techs:       normalizeLabels(meta.Techs),
		Weight:      meta.Weight,
		FilePath:    doc.FilePath,
		Body:        doc.Body,
		BodyHTML:    doc.BodyHTML,
	}

	if err := validation.ValidateStruct(project,
		validation.Field(&project.Title, validation.Required),
		validation.Field(&project.URL, validation.Required, is.URL),
	); err != nil {
		return nil, err
	}

	project.ID = identity.EntryUUID(schema.CollectionProjects, project.Slug)
	return project, nil
}

// resolveSlug prefers the authored slug, falling back to the title and then
// the file name. Whatever the source, the result must survive normalization.
func resolveSlug(authored, title, path string) (string, error) {
	candidate := strings.TrimSpace(authored)
	if candidate == "" {
		candidate = strings.TrimSpace(title)
	}
	if candidate == "" {
		base := filepath.Base(path)
		candidate = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if candidate == "" {
		return "", ErrSlugRequired
	}

	normalized, err := goslug.Normalize(candidate)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}
	if !goslug.IsValid(normalized) {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func claimSlug(slugs map[string]string, collection, slugValue, path string) error {
	key := collection + "/" + slugValue
	if existing, ok := slugs[key]; ok {
		return fmt.Errorf("%w: %q already used by %s", ErrSlugExists, slugValue, existing)
	}
	slugs[key] = path
	return nil
}

func normalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if trimmed := strings.TrimSpace(label); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
