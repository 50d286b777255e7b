package generator

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

const siteRouteGroup = "site"

// routeSet builds root-relative routes for every page family through a
// go-urlkit route manager, keeping the route table in one place.
type routeSet struct {
	group *urlkit.Group
	base  string
}

func newRouteSet(baseURL string) (*routeSet, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    siteRouteGroup,
				BaseURL: base,
				Paths: map[string]string{
					"home":       "/",
					"experience": "/experience",
					"blog":       "/blog",
					"post":       "/blog/:slug",
					"projects":   "/projects",
					"project":    "/projects/:slug",
					"tag":        "/tags/:tag",
				},
			},
		},
	})

	group, err := siteGroup(manager)
	if err != nil {
		return nil, err
	}
	return &routeSet{group: group, base: base}, nil
}

func (r *routeSet) Home() string { return r.build("home", nil) }

func (r *routeSet) Experience() string { return r.build("experience", nil) }

func (r *routeSet) Blog() string { return r.build("blog", nil) }

func (r *routeSet) Post(slug string) string {
	return r.build("post", map[string]any{"slug": slug})
}

func (r *routeSet) Projects() string { return r.build("projects", nil) }

func (r *routeSet) Project(slug string) string {
	return r.build("project", map[string]any{"slug": slug})
}

func (r *routeSet) Tag(tag string) string {
	return r.build("tag", map[string]any{"tag": tag})
}

func (r *routeSet) build(route string, params map[string]any) string {
	builder := r.group.Builder(route)
	for key, value := range params {
		builder = builder.WithParam(key, value)
	}
	url, err := builder.Build()
	if err != nil {
		// Route table is static; a failed build means a programming error.
		panic(fmt.Sprintf("generator: build route %q: %v", route, err))
	}
	return relativeRoute(url, r.base)
}

// relativeRoute strips the configured base URL so routes stay root relative
// regardless of the deployment host.
func relativeRoute(url, base string) string {
	if base != "" {
		url = strings.TrimPrefix(url, base)
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return "/"
	}
	if !strings.HasPrefix(url, "/") {
		url = "/" + url
	}
	if url != "/" {
		url = strings.TrimRight(url, "/")
	}
	return url
}

func siteGroup(manager *urlkit.RouteManager) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("generator: route group %q not found", siteRouteGroup)
		}
	}()
	group = manager.Group(siteRouteGroup)
	return group, err
}
