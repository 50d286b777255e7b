package generator

import (
	"strings"
	"testing"
	"time"
)

func TestRouteSetBuildsRootRelativeRoutes(t *testing.T) {
	routes, err := newRouteSet("https://example.com")
	if err != nil {
		t.Fatalf("newRouteSet returned error: %v", err)
	}

	cases := []struct {
		got  string
		want string
	}{
		{routes.Home(), "/"},
		{routes.Experience(), "/experience"},
		{routes.Blog(), "/blog"},
		{routes.Post("hello-world"), "/blog/hello-world"},
		{routes.Projects(), "/projects"},
		{routes.Project("garden"), "/projects/garden"},
		{routes.Tag("go"), "/tags/go"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("expected route %q, got %q", tc.want, tc.got)
		}
	}
}

func TestBuildOutputPath(t *testing.T) {
	cases := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/blog", "blog/index.html"},
		{"/blog/hello-world", "blog/hello-world/index.html"},
		{"tags/go", "tags/go/index.html"},
	}
	for _, tc := range cases {
		if got := buildOutputPath(tc.route); got != tc.want {
			t.Fatalf("buildOutputPath(%q) = %q, want %q", tc.route, got, tc.want)
		}
	}
}

func TestAssemblePagesCoversLibrary(t *testing.T) {
	cfg := testConfig()
	svc := NewService(cfg, Dependencies{}).(*service)
	routes, err := newRouteSet(cfg.BaseURL)
	if err != nil {
		t.Fatalf("newRouteSet returned error: %v", err)
	}

	pages := svc.assemblePages(fixtureLibrary(), routes)

	kinds := map[PageKind]int{}
	for _, page := range pages {
		kinds[page.Kind]++
		if page.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatalf("expected page %s to carry an ID", page.Route)
		}
		if page.Metadata.Hash == "" {
			t.Fatalf("expected page %s to carry a dependency hash", page.Route)
		}
	}
	if kinds[KindHome] != 1 || kinds[KindExperienceIndex] != 1 || kinds[KindBlogIndex] != 1 || kinds[KindProjectIndex] != 1 {
		t.Fatalf("expected one of each index page, got %v", kinds)
	}
	if kinds[KindPost] != 1 || kinds[KindProject] != 1 || kinds[KindTag] != 1 {
		t.Fatalf("expected entry pages for every record, got %v", kinds)
	}
}

func TestHomePageCarriesFeaturedProjectsOnly(t *testing.T) {
	library := fixtureLibrary()
	library.Projects = append(library.Projects, library.Projects[0])
	unfeatured := *library.Projects[0]
	unfeatured.Slug = "sidecar"
	unfeatured.Featured = false
	library.Projects[1] = &unfeatured

	cfg := testConfig()
	svc := NewService(cfg, Dependencies{}).(*service)
	routes, _ := newRouteSet(cfg.BaseURL)

	for _, page := range svc.assemblePages(library, routes) {
		if page.Kind != KindHome {
			continue
		}
		if len(page.Projects) != 1 || !page.Projects[0].Featured {
			t.Fatalf("expected home page to list featured projects only, got %+v", page.Projects)
		}
		return
	}
	t.Fatalf("home page missing")
}

func TestEntryMetadataIsStable(t *testing.T) {
	sources := map[string]string{"post:a": "h1", "post:b": "h2"}
	first := entryMetadata(sources, time.Time{})
	second := entryMetadata(map[string]string{"post:b": "h2", "post:a": "h1"}, time.Time{})
	if first.Hash != second.Hash {
		t.Fatalf("expected order-independent hash, got %s vs %s", first.Hash, second.Hash)
	}

	changed := entryMetadata(map[string]string{"post:a": "h1", "post:b": "changed"}, time.Time{})
	if changed.Hash == first.Hash {
		t.Fatalf("expected hash to change with sources")
	}
}

func TestJoinTitle(t *testing.T) {
	if got := joinTitle("Blog", "Garden"); got != "Blog | Garden" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := joinTitle("", "Garden"); got != "Garden" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := joinTitle("Blog", ""); got != "Blog" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestTemplateHelpersHref(t *testing.T) {
	helpers := newTemplateHelpers("https://example.com", "garden", "")
	if got := helpers.Href("/blog"); got != "/garden/blog" {
		t.Fatalf("unexpected href %q", got)
	}
	if got := helpers.Href("/"); got != "/garden/" {
		t.Fatalf("unexpected root href %q", got)
	}
	if got := helpers.Href("https://external.example"); got != "https://external.example" {
		t.Fatalf("absolute URLs must pass through, got %q", got)
	}
	if got := helpers.AbsoluteURL("/blog"); got != "https://example.com/garden/blog" {
		t.Fatalf("unexpected absolute URL %q", got)
	}

	rooted := newTemplateHelpers("https://example.com", "", "")
	if got := rooted.Href("/blog"); got != "/blog" {
		t.Fatalf("unexpected rooted href %q", got)
	}
}

func TestTemplateHelpersFormatDate(t *testing.T) {
	helpers := newTemplateHelpers("", "", "")
	ts := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := helpers.FormatDate(ts); got != "Mar 2021" {
		t.Fatalf("unexpected formatted date %q", got)
	}
	if got := helpers.FormatDateISO(ts); got != "2021-03-01" {
		t.Fatalf("unexpected ISO date %q", got)
	}
	if got := helpers.FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero time should format empty, got %q", got)
	}
}

func TestTemplateHelpersOngoingLabel(t *testing.T) {
	helpers := newTemplateHelpers("", "", "")
	if got := helpers.OngoingLabel(); got != "Present" {
		t.Fatalf("expected default label, got %q", got)
	}
	custom := newTemplateHelpers("", "", "Now")
	if got := custom.OngoingLabel(); got != "Now" {
		t.Fatalf("expected custom label, got %q", got)
	}
}

func TestRecentPosts(t *testing.T) {
	library := fixtureLibrary()
	if got := recentPosts(library.Posts, 0); len(got) != len(library.Posts) {
		t.Fatalf("limit 0 should keep all posts")
	}
	if got := recentPosts(library.Posts, 1); len(got) != 1 {
		t.Fatalf("expected a single post, got %d", len(got))
	}
}

func TestRelativeRoute(t *testing.T) {
	if got := relativeRoute("https://example.com/blog/", "https://example.com"); got != "/blog" {
		t.Fatalf("unexpected route %q", got)
	}
	if got := relativeRoute("https://example.com", "https://example.com"); got != "/" {
		t.Fatalf("unexpected root route %q", got)
	}
	if got := relativeRoute("/projects", ""); got != "/projects" {
		t.Fatalf("unexpected route %q", got)
	}
}

func TestSitemapDeduplicatesRoutes(t *testing.T) {
	pages := []RenderedPage{
		{Route: "/blog"},
		{Route: "/blog"},
		{Route: "/"},
	}
	content := buildSitemap("https://example.com", pages, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if strings.Count(content, "<loc>https://example.com/blog</loc>") != 1 {
		t.Fatalf("expected deduplicated sitemap entries, got %s", content)
	}
	if !strings.Contains(content, "<loc>https://example.com/</loc>") {
		t.Fatalf("expected root entry, got %s", content)
	}
}
