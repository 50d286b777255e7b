package schema

import (
	"fmt"
	"strings"
)

// Collection names recognised by the content model loader.
const (
	CollectionExperience = "experience"
	CollectionPosts      = "posts"
	CollectionProjects   = "projects"
)

// ForCollection returns the frontmatter schema for a collection name.
func ForCollection(name string) (map[string]any, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CollectionExperience:
		return experienceSchema(), nil
	case CollectionPosts:
		return postSchema(), nil
	case CollectionProjects:
		return projectSchema(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrSchemaUnknown, name)
	}
}

// Collections lists every known collection in load order.
func Collections() []string {
	return []string{CollectionExperience, CollectionPosts, CollectionProjects}
}

// The collection schemas are fixed: entries either satisfy them or the build
// fails. additionalProperties stays open so themes can attach custom keys.

func experienceSchema() map[string]any {
	return map[string]any{
		"$id":  "garden://schemas/experience",
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"logo":        map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"startDate":   map[string]any{"type": "string", "format": "date-time"},
			"endDate":     map[string]any{"type": "string", "format": "date-time"},
			"current":     map[string]any{"type": "boolean"},
			"draft":       map[string]any{"type": "boolean"},
			"weight":      map[string]any{"type": "integer"},
		},
		"required": []any{"title", "logo", "description", "startDate"},
	}
}

func postSchema() map[string]any {
	return map[string]any{
		"$id":  "garden://schemas/post",
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"slug":        map[string]any{"type": "string"},
			"publishedAt": map[string]any{"type": "string", "format": "date-time"},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"draft": map[string]any{"type": "boolean"},
		},
		"required": []any{"title", "description", "publishedAt"},
	}
}

func projectSchema() map[string]any {
	return map[string]any{
		"$id":  "garden://schemas/project",
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"slug":        map[string]any{"type": "string"},
			"url":         map[string]any{"type": "string", "minLength": 1},
			"repo":        map[string]any{"type": "string"},
			"featured":    map[string]any{"type": "boolean"},
			"techs": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"draft":  map[string]any{"type": "boolean"},
			"weight": map[string]any{"type": "integer"},
		},
		"required": []any{"title", "description", "url"},
	}
}
