package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-garden/internal/collections"
	"github.com/goliatone/go-garden/internal/identity"
)

// PageKind identifies the template family a page renders with.
type PageKind string

const (
	KindHome            PageKind = "home"
	KindExperienceIndex PageKind = "experience-index"
	KindBlogIndex       PageKind = "blog-index"
	KindPost            PageKind = "post"
	KindProjectIndex    PageKind = "project-index"
	KindProject         PageKind = "project"
	KindTag             PageKind = "tag"
)

// BuildContext aggregates the resolved page data required to execute a build.
type BuildContext struct {
	GeneratedAt time.Time
	Library     *collections.Library
	Pages       []*PageData
	Options     BuildOptions
}

// PageData encapsulates the resolved dependencies for a single output page.
type PageData struct {
	ID          uuid.UUID
	Kind        PageKind
	Route       string
	Template    string
	Title       string
	Description string

	Experiences []*collections.Experience
	Posts       []*collections.Post
	Projects    []*collections.Project
	Post        *collections.Post
	Project     *collections.Project
	Tag         string

	Metadata DependencyMetadata
}

// DependencyMetadata tracks hashes and timestamps for incremental builds.
type DependencyMetadata struct {
	Sources      map[string]string
	Hash         string
	LastModified time.Time
}

func (s *service) loadContext(ctx context.Context, opts BuildOptions) (*BuildContext, error) {
	if s.deps.Library == nil {
		return nil, errLibraryRequired
	}

	library, err := s.deps.Library.Load(ctx)
	if err != nil {
		return nil, err
	}

	routes, err := newRouteSet(s.cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	buildCtx := &BuildContext{
		GeneratedAt: s.now().UTC(),
		Library:     library,
		Options:     opts,
	}
	buildCtx.Pages = s.assemblePages(library, routes)
	return buildCtx, nil
}

func (s *service) assemblePages(library *collections.Library, routes *routeSet) []*PageData {
	siteTitle := strings.TrimSpace(s.cfg.Site.Title)
	pages := make([]*PageData, 0, len(library.Posts)+len(library.Projects)+8)

	home := &PageData{
		Kind:        KindHome,
		Route:       routes.Home(),
		Template:    templateForKind(s.cfg.Templates, KindHome),
		Title:       siteTitle,
		Description: strings.TrimSpace(s.cfg.Site.Description),
		Experiences: library.Experiences,
		Projects:    library.FeaturedProjects(),
		Posts:       recentPosts(library.Posts, s.cfg.HomeRecentPosts),
	}
	home.Metadata = homeMetadata(library)
	pages = append(pages, home)

	experience := &PageData{
		Kind:        KindExperienceIndex,
		Route:       routes.Experience(),
		Template:    templateForKind(s.cfg.Templates, KindExperienceIndex),
		Title:       joinTitle("Experience", siteTitle),
		Description: "Work history",
		Experiences: library.Experiences,
	}
	experience.Metadata = experiencesMetadata(library.Experiences)
	pages = append(pages, experience)

	blog := &PageData{
		Kind:        KindBlogIndex,
		Route:       routes.Blog(),
		Template:    templateForKind(s.cfg.Templates, KindBlogIndex),
		Title:       joinTitle("Blog", siteTitle),
		Description: "All posts",
		Posts:       library.Posts,
	}
	blog.Metadata = postsMetadata(library.Posts)
	pages = append(pages, blog)

	for _, post := range library.Posts {
		page := &PageData{
			Kind:        KindPost,
			Route:       routes.Post(post.Slug),
			Template:    templateForKind(s.cfg.Templates, KindPost),
			Title:       joinTitle(post.Title, siteTitle),
			Description: post.Description,
			Post:        post,
		}
		page.Metadata = entryMetadata(map[string]string{
			"post:" + post.Slug: postFingerprint(post),
		}, post.PublishedAt)
		pages = append(pages, page)
	}

	projects := &PageData{
		Kind:        KindProjectIndex,
		Route:       routes.Projects(),
		Template:    templateForKind(s.cfg.Templates, KindProjectIndex),
		Title:       joinTitle("Projects", siteTitle),
		Description: "All projects",
		Projects:    library.Projects,
	}
	projects.Metadata = projectsMetadata(library.Projects)
	pages = append(pages, projects)

	for _, project := range library.Projects {
		page := &PageData{
			Kind:        KindProject,
			Route:       routes.Project(project.Slug),
			Template:    templateForKind(s.cfg.Templates, KindProject),
			Title:       joinTitle(project.Title, siteTitle),
			Description: project.Description,
			Project:     project,
		}
		page.Metadata = entryMetadata(map[string]string{
			"project:" + project.Slug: projectFingerprint(project),
		}, time.Time{})
		pages = append(pages, page)
	}

	if s.cfg.GenerateTagPages {
		for _, tag := range library.Tags() {
			tagged := library.PostsByTag(tag)
			page := &PageData{
				Kind:        KindTag,
				Route:       routes.Tag(tag),
				Template:    templateForKind(s.cfg.Templates, KindTag),
				Title:       joinTitle("#"+tag, siteTitle),
				Description: fmt.Sprintf("Posts tagged %s", tag),
				Tag:         tag,
				Posts:       tagged,
			}
			page.Metadata = postsMetadata(tagged)
			pages = append(pages, page)
		}
	}

	for _, page := range pages {
		page.ID = identity.RouteUUID(page.Route)
	}
	return pages
}

func recentPosts(posts []*collections.Post, limit int) []*collections.Post {
	if limit <= 0 || len(posts) <= limit {
		return posts
	}
	return posts[:limit]
}

func joinTitle(section, site string) string {
	section = strings.TrimSpace(section)
	site = strings.TrimSpace(site)
	switch {
	case section == "":
		return site
	case site == "":
		return section
	default:
		return section + " | " + site
	}
}

func homeMetadata(library *collections.Library) DependencyMetadata {
	sources := map[string]string{}
	var last time.Time
	for _, entry := range library.Experiences {
		sources["experience:"+entry.Title] = experienceFingerprint(entry)
	}
	for _, project := range library.FeaturedProjects() {
		sources["project:"+project.Slug] = projectFingerprint(project)
	}
	for _, post := range library.Posts {
		sources["post:"+post.Slug] = postFingerprint(post)
		if post.PublishedAt.After(last) {
			last = post.PublishedAt
		}
	}
	return entryMetadata(sources, last)
}

func postsMetadata(posts []*collections.Post) DependencyMetadata {
	sources := map[string]string{}
	var last time.Time
	for _, post := range posts {
		sources["post:"+post.Slug] = postFingerprint(post)
		if post.PublishedAt.After(last) {
			last = post.PublishedAt
		}
	}
	return entryMetadata(sources, last)
}

func experiencesMetadata(entries []*collections.Experience) DependencyMetadata {
	sources := map[string]string{}
	var last time.Time
	for _, entry := range entries {
		sources["experience:"+entry.Title] = experienceFingerprint(entry)
		if entry.StartDate.After(last) {
			last = entry.StartDate
		}
	}
	return entryMetadata(sources, last)
}

func projectsMetadata(projects []*collections.Project) DependencyMetadata {
	sources := map[string]string{}
	for _, project := range projects {
		sources["project:"+project.Slug] = projectFingerprint(project)
	}
	return entryMetadata(sources, time.Time{})
}

// entryMetadata folds the per-source fingerprints into a stable dependency
// hash so unchanged pages can be skipped on incremental builds.
func entryMetadata(sources map[string]string, lastModified time.Time) DependencyMetadata {
	keys := make([]string, 0, len(sources))
	for key := range sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hasher := sha256.New()
	for _, key := range keys {
		hasher.Write([]byte(key))
		hasher.Write([]byte{0})
		hasher.Write([]byte(sources[key]))
		hasher.Write([]byte{0})
	}
	return DependencyMetadata{
		Sources:      sources,
		Hash:         hex.EncodeToString(hasher.Sum(nil)),
		LastModified: lastModified,
	}
}

func experienceFingerprint(entry *collections.Experience) string {
	return fingerprint(
		entry.Title,
		entry.Logo,
		entry.Description,
		entry.StartDate.UTC().Format(time.RFC3339),
		formatOptionalTime(entry.EndDate),
		fmt.Sprintf("%t", entry.Current),
		string(entry.Body),
	)
}

func postFingerprint(post *collections.Post) string {
	return fingerprint(
		post.Title,
		post.Slug,
		post.Description,
		post.PublishedAt.UTC().Format(time.RFC3339),
		strings.Join(post.Tags, ","),
		string(post.Body),
	)
}

func projectFingerprint(project *collections.Project) string {
	return fingerprint(
		project.Title,
		project.Slug,
		project.Description,
		project.URL,
		project.Repo,
		fmt.Sprintf("%t", project.Featured),
		strings.Join(project.Techs, ","),
		string(project.Body),
	)
}

func fingerprint(parts ...string) string {
	hasher := sha256.New()
	for _, part := range parts {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func formatOptionalTime(ts *time.Time) string {
	if ts == nil {
		return ""
	}
	return ts.UTC().Format(time.RFC3339)
}
