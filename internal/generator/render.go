package generator

import (
	"strings"
	"time"

	gotheme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
)

// TemplateContext captures the data contract passed to TemplateRenderer implementations.
type TemplateContext struct {
	Site    SiteMetadata
	Page    *PageData
	Build   BuildMetadata
	Theme   ThemeContext
	Helpers TemplateHelpers
}

// SiteMetadata exposes site-wide information required by templates.
type SiteMetadata struct {
	Title        string
	Description  string
	Author       string
	BaseURL      string
	BasePath     string
	OngoingLabel string
	Metadata     map[string]any
}

// BuildMetadata surfaces high level build information to templates.
type BuildMetadata struct {
	GeneratedAt time.Time
	Options     BuildOptions
}

// ThemeContext surfaces go-theme selection data to templates.
type ThemeContext struct {
	Name      string
	Variant   string
	Tokens    map[string]string
	CSSVars   map[string]string
	Partials  map[string]string
	AssetURL  func(string) string
	Template  func(string, string) string
	Selection *gotheme.Selection
}

// TemplateHelpers exposes convenience helpers for template authors.
type TemplateHelpers struct {
	baseURL      string
	basePath     string
	ongoingLabel string
}

func newTemplateHelpers(baseURL, basePath, ongoingLabel string) TemplateHelpers {
	return TemplateHelpers{
		baseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		basePath:     normalizeBasePath(basePath),
		ongoingLabel: strings.TrimSpace(ongoingLabel),
	}
}

// BaseURL returns the configured site base URL.
func (h TemplateHelpers) BaseURL() string {
	return h.baseURL
}

// BasePath returns the path prefix the site is hosted under, "" when rooted.
func (h TemplateHelpers) BasePath() string {
	return h.basePath
}

// Href prefixes a root-relative route with the configured base path. Absolute
// URLs pass through untouched.
func (h TemplateHelpers) Href(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		route = "/"
	}
	if strings.HasPrefix(route, "http://") || strings.HasPrefix(route, "https://") {
		return route
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if h.basePath == "" {
		return route
	}
	if route == "/" {
		return h.basePath + "/"
	}
	return h.basePath + route
}

// AbsoluteURL joins the base URL, base path, and route into a full URL.
func (h TemplateHelpers) AbsoluteURL(route string) string {
	href := h.Href(route)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if h.baseURL == "" {
		return href
	}
	return h.baseURL + href
}

// OngoingLabel returns the label shown in place of an end date for
// experience entries still in progress.
func (h TemplateHelpers) OngoingLabel() string {
	if h.ongoingLabel == "" {
		return "Present"
	}
	return h.ongoingLabel
}

// FormatDate renders a timestamp for display, "" for the zero value.
func (h TemplateHelpers) FormatDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("Jan 2006")
}

// FormatDateISO renders a timestamp as an ISO-8601 date, "" for the zero value.
func (h TemplateHelpers) FormatDateISO(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format("2006-01-02")
}

func normalizeBasePath(basePath string) string {
	trimmed := strings.Trim(strings.TrimSpace(basePath), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

func buildThemeContext(selection *gotheme.Selection, cfg ThemingConfig) ThemeContext {
	empty := ThemeContext{
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
		Partials: map[string]string{},
		AssetURL: func(string) string { return "" },
		Template: func(_ string, fallback string) string { return fallback },
	}
	if selection == nil {
		return empty
	}

	return ThemeContext{
		Name:      selection.Theme,
		Variant:   selection.Variant,
		Tokens:    selection.Tokens(),
		CSSVars:   selection.CSSVariables(cfg.CSSVariablePrefix),
		Partials:  selection.Partials(cfg.PartialFallbacks),
		AssetURL:  func(key string) string { url, _ := selection.Asset(key); return url },
		Template:  selection.Template,
		Selection: selection,
	}
}

// RenderedPage captures the rendered HTML output for a page.
type RenderedPage struct {
	PageID   uuid.UUID
	Kind     PageKind
	Route    string
	Output   string
	Template string
	HTML     string
	Metadata DependencyMetadata
	Duration time.Duration
	Checksum string
}

// RenderDiagnostic records rendering timing and errors for individual pages.
type RenderDiagnostic struct {
	PageID   uuid.UUID
	Kind     PageKind
	Route    string
	Template string
	Duration time.Duration
	Skipped  bool
	Err      error
}

type renderOutcome struct {
	page       RenderedPage
	diagnostic RenderDiagnostic
	err        error
	skipped    bool
}
