package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// ThemingConfig selects the theme manifest used to resolve templates,
// partials, and design tokens.
type ThemingConfig struct {
	ThemePath         string
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
	PartialFallbacks  map[string]string
}

type themeManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsThemeManifestLoader struct{}

func (fsThemeManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}
	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

type themeSelector struct {
	registry       *gotheme.MemoryRegistry
	loader         themeManifestLoader
	themePath      string
	defaultTheme   string
	defaultVariant string

	mu       sync.Mutex
	manifest *gotheme.Manifest
}

func newThemeSelector(cfg ThemingConfig, loader themeManifestLoader) *themeSelector {
	if loader == nil {
		loader = fsThemeManifestLoader{}
	}
	return &themeSelector{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		themePath:      strings.TrimSpace(cfg.ThemePath),
		defaultTheme:   strings.TrimSpace(cfg.DefaultTheme),
		defaultVariant: strings.TrimSpace(cfg.DefaultVariant),
	}
}

// Selection resolves the active theme selection, nil when no theme path is
// configured so builds work with plain template directories.
func (s *themeSelector) Selection() (*gotheme.Selection, error) {
	if s == nil || s.themePath == "" {
		return nil, nil
	}

	manifest, err := s.ensureManifest()
	if err != nil {
		return nil, err
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}

	name := s.defaultTheme
	if name == "" {
		name = manifest.Name
	}
	selection, err := selector.Select(name, s.defaultVariant)
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", name, err)
	}
	return selection, nil
}

func (s *themeSelector) ensureManifest() (*gotheme.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.manifest != nil {
		return s.manifest, nil
	}

	manifest, err := s.loader.Load(s.themePath)
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", s.themePath, err)
	}
	if strings.TrimSpace(manifest.Name) == "" {
		return nil, fmt.Errorf("theme name required for manifest registration")
	}
	if err := s.registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.manifest = manifest
	return manifest, nil
}
