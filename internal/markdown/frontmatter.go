package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-garden/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// collection, raw content, and modification time. BodyHTML is intentionally
// left empty so callers can render lazily.
func BuildDocument(path string, collection string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		Collection:   collection,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	Slug        string         `yaml:"slug"`
	Description string         `yaml:"description"`
	Logo        string         `yaml:"logo"`
	URL         string         `yaml:"url"`
	Repo        string         `yaml:"repo"`
	Tags        []string       `yaml:"tags"`
	Techs       []string       `yaml:"techs"`
	PublishedAt time.Time      `yaml:"publishedAt"`
	StartDate   time.Time      `yaml:"startDate"`
	EndDate     *time.Time     `yaml:"endDate"`
	Current     bool           `yaml:"current"`
	Featured    bool           `yaml:"featured"`
	Draft       bool           `yaml:"draft"`
	Weight      int            `yaml:"weight"`
	Custom      map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+12)
	for key, value := range env.Custom {
		raw[key] = value
	}

	if env.Title != "" {
		raw["title"] = env.Title
	}
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Description != "" {
		raw["description"] = env.Description
	}
	if env.Logo != "" {
		raw["logo"] = env.Logo
	}
	if env.URL != "" {
		raw["url"] = env.URL
	}
	if env.Repo != "" {
		raw["repo"] = env.Repo
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if len(env.Techs) > 0 {
		raw["techs"] = append([]string(nil), env.Techs...)
	}
	if !env.PublishedAt.IsZero() {
		raw["publishedAt"] = env.PublishedAt
	}
	if !env.StartDate.IsZero() {
		raw["startDate"] = env.StartDate
	}
	if env.EndDate != nil && !env.EndDate.IsZero() {
		raw["endDate"] = *env.EndDate
	}
	if env.Current {
		raw["current"] = true
	}
	if env.Featured {
		raw["featured"] = true
	}
	if env.Weight != 0 {
		raw["weight"] = env.Weight
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:       env.Title,
		Slug:        env.Slug,
		Description: env.Description,
		Logo:        env.Logo,
		URL:         env.URL,
		Repo:        env.Repo,
		Tags:        append([]string(nil), env.Tags...),
		Techs:       append([]string(nil), env.Techs...),
		PublishedAt: env.PublishedAt,
		StartDate:   env.StartDate,
		EndDate:     env.EndDate,
		Current:     env.Current,
		Featured:    env.Featured,
		Draft:       env.Draft,
		Weight:      env.Weight,
		Custom:      cloneMap(env.Custom),
		Raw:         raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
